// Package model содержит доменные сущности магазина аркадных автоматов.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material описывает материал корпуса автомата.
type Material string

const (
	MaterialWood        Material = "wood"
	MaterialAluminum    Material = "aluminum"
	MaterialCarbonFiber Material = "carbonFiber"
)

// Game представляет видеоигру из каталога. После загрузки каталога не изменяется.
type Game struct {
	Code                string          `json:"code"`
	Title               string          `json:"title"`
	Category            string          `json:"category"`
	Price               decimal.Decimal `json:"price"`
	Year                int             `json:"year"`
	StorytellingCreator string          `json:"storytelling_creator"`
	GraphicsCreator     string          `json:"graphics_creator"`
	HD                  bool            `json:"hd,omitempty"`
}

// User — зарегистрированный покупатель.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Customer содержит контактные данные покупателя для оформления заказа.
type Customer struct {
	Name    string `json:"name" validate:"required,alphaspace"`
	Phone   string `json:"phone" validate:"required,digitsonly,max=15"`
	Address string `json:"address" validate:"required"`
}

// Attributes — характеристики автомата, зависящие от материала корпуса.
type Attributes struct {
	Weight           decimal.Decimal `json:"weight"`
	Price            decimal.Decimal `json:"price"`
	PowerConsumption decimal.Decimal `json:"power_consumption"`
}

// Dimensions — габариты автомата в метрах.
type Dimensions struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

// PurchaseMachine — зафиксированное на момент покупки описание собранного автомата.
type PurchaseMachine struct {
	Kind             MachineKind     `json:"kind"`
	Material         Material        `json:"material"`
	Weight           decimal.Decimal `json:"weight"`
	Price            decimal.Decimal `json:"price"`
	PowerConsumption decimal.Decimal `json:"power_consumption"`
	MemoryGB         int             `json:"memory_gb"`
	Processors       int             `json:"processors"`
	PeripheralPrice  decimal.Decimal `json:"peripheral_price"`
	Games            []string        `json:"games"`
}

// Purchase — завершённая покупка. Создаётся только при оформлении заказа и после этого не изменяется.
type Purchase struct {
	ID         string          `json:"id"`
	UserID     int64           `json:"user_id"`
	Customer   Customer        `json:"customer"`
	Machine    PurchaseMachine `json:"machine"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}
