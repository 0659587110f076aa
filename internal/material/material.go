// Package material реализует правило корректировки характеристик автомата по материалу корпуса.
package material

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/arcade-system/internal/model"
)

// ErrInvalidMaterial возвращается при материале вне допустимого набора.
var ErrInvalidMaterial = errors.New("invalid material")

// delta описывает процентные поправки к весу, цене и энергопотреблению.
type delta struct {
	weight decimal.Decimal
	price  decimal.Decimal
	power  decimal.Decimal
}

// Фиксированная таблица поправок: вес / цена / потребление.
var deltas = map[model.Material]delta{
	model.MaterialWood: {
		weight: decimal.NewFromFloat(0.10),
		price:  decimal.NewFromFloat(-0.05),
		power:  decimal.NewFromFloat(0.15),
	},
	model.MaterialAluminum: {
		weight: decimal.NewFromFloat(-0.05),
		price:  decimal.NewFromFloat(0.10),
		power:  decimal.Zero,
	},
	model.MaterialCarbonFiber: {
		weight: decimal.NewFromFloat(-0.15),
		price:  decimal.NewFromFloat(0.20),
		power:  decimal.NewFromFloat(-0.10),
	},
}

var one = decimal.NewFromInt(1)

// Adjust вычисляет характеристики автомата для указанного материала.
// Функция чистая: исходные значения не изменяются, повторный вызов от тех же
// исходных данных всегда даёт тот же результат.
func Adjust(base model.Attributes, m model.Material) (model.Attributes, error) {
	d, ok := deltas[m]
	if !ok {
		return model.Attributes{}, ErrInvalidMaterial
	}

	return model.Attributes{
		Weight:           base.Weight.Mul(one.Add(d.weight)),
		Price:            base.Price.Mul(one.Add(d.price)),
		PowerConsumption: base.PowerConsumption.Mul(one.Add(d.power)),
	}, nil
}
