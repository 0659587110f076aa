package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnknownMachineKind возвращается фабрикой при неизвестном варианте автомата.
var ErrUnknownMachineKind = errors.New("unknown machine kind")

// MachineKind определяет вариант аркадного автомата.
type MachineKind string

const (
	KindDanceRevolution MachineKind = "danceRevolution"
	KindClassicalArcade MachineKind = "classicalArcade"
	KindShootingMachine MachineKind = "shootingMachine"
	KindRacingMachine   MachineKind = "racingMachine"
	KindVirtualReality  MachineKind = "virtualReality"
)

// Machine — собираемый к покупке автомат одного из закрытого набора вариантов.
type Machine interface {
	Kind() MachineKind
	Base() *MachineBase
	PeripheralPrice() decimal.Decimal
}

// MachineBase содержит общие характеристики всех вариантов автомата.
// Weight, PowerConsumption и BasePrice хранят исходные заводские значения и никогда
// не перезаписываются: скорректированные материалом значения лежат в Adjusted и
// пересчитываются заново от исходных при каждом выборе материала.
type MachineBase struct {
	Dimensions       Dimensions
	Weight           decimal.Decimal
	PowerConsumption decimal.Decimal
	BasePrice        decimal.Decimal
	MemoryGB         int
	Processors       int
	Material         Material
	Adjusted         *Attributes
	Games            []Game
}

// Base возвращает общие характеристики автомата.
func (b *MachineBase) Base() *MachineBase { return b }

// BaseAttributes возвращает исходные характеристики для пересчёта под материал.
func (b *MachineBase) BaseAttributes() Attributes {
	return Attributes{
		Weight:           b.Weight,
		Price:            b.BasePrice,
		PowerConsumption: b.PowerConsumption,
	}
}

// HasGame сообщает, добавлена ли на автомат игра с указанным кодом.
func (b *MachineBase) HasGame(code string) bool {
	for _, g := range b.Games {
		if g.Code == code {
			return true
		}
	}
	return false
}

// Configured сообщает, выбран ли уже материал корпуса.
func (b *MachineBase) Configured() bool {
	return b.Material != "" && b.Adjusted != nil
}

func defaultDimensions() Dimensions {
	return Dimensions{
		Length: decimal.NewFromFloat(1.5),
		Width:  decimal.NewFromInt(1),
		Height: decimal.NewFromInt(2),
	}
}

// Difficulty — уровень сложности танцевального автомата.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// DanceRevolution — танцевальный автомат с платформой и стрелками.
type DanceRevolution struct {
	MachineBase
	Difficulties       []Difficulty
	ArrowCardinalities int
	ControlsPrice      decimal.Decimal
}

// NewDanceRevolution создаёт танцевальный автомат с заводскими характеристиками.
func NewDanceRevolution() *DanceRevolution {
	return &DanceRevolution{
		MachineBase: MachineBase{
			Dimensions:       defaultDimensions(),
			Weight:           decimal.NewFromInt(120),
			PowerConsumption: decimal.NewFromInt(250),
			BasePrice:        decimal.NewFromInt(700),
			MemoryGB:         8,
			Processors:       4,
		},
		Difficulties:       []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert},
		ArrowCardinalities: 4,
		ControlsPrice:      decimal.NewFromInt(50),
	}
}

// Kind возвращает вариант автомата.
func (m *DanceRevolution) Kind() MachineKind { return KindDanceRevolution }

// PeripheralPrice возвращает стоимость танцевальной платформы.
func (m *DanceRevolution) PeripheralPrice() decimal.Decimal { return m.ControlsPrice }

// ClassicalArcade — классический аркадный корпус с джойстиком и кнопками.
type ClassicalArcade struct {
	MachineBase
	VibrationEnabled  bool
	SoundAlertEnabled bool
}

// NewClassicalArcade создаёт классический автомат с заводскими характеристиками.
func NewClassicalArcade() *ClassicalArcade {
	return &ClassicalArcade{
		MachineBase: MachineBase{
			Dimensions:       defaultDimensions(),
			Weight:           decimal.NewFromInt(110),
			PowerConsumption: decimal.NewFromInt(220),
			BasePrice:        decimal.NewFromInt(600),
			MemoryGB:         4,
			Processors:       2,
		},
		VibrationEnabled:  true,
		SoundAlertEnabled: true,
	}
}

// Kind возвращает вариант автомата.
func (m *ClassicalArcade) Kind() MachineKind { return KindClassicalArcade }

// PeripheralPrice у классического автомата всегда нулевая: дополнительной периферии нет.
func (m *ClassicalArcade) PeripheralPrice() decimal.Decimal { return decimal.Zero }

// SimulateVibration сообщает, умеет ли автомат имитировать вибрацию корпуса.
func (m *ClassicalArcade) SimulateVibration() bool { return m.VibrationEnabled }

// SoundAlert сообщает, умеет ли автомат проигрывать звуковое оповещение.
func (m *ClassicalArcade) SoundAlert() bool { return m.SoundAlertEnabled }

// ShootingMachine — тировый автомат со световым пистолетом.
// Набор дополнительных атрибутов намеренно минимален и расширяется по мере уточнения требований.
type ShootingMachine struct {
	MachineBase
	GunType  string
	GunPrice decimal.Decimal
}

// NewShootingMachine создаёт тировый автомат с заводскими характеристиками.
func NewShootingMachine() *ShootingMachine {
	return &ShootingMachine{
		MachineBase: MachineBase{
			Dimensions:       defaultDimensions(),
			Weight:           decimal.NewFromInt(130),
			PowerConsumption: decimal.NewFromInt(240),
			BasePrice:        decimal.NewFromInt(650),
			MemoryGB:         8,
			Processors:       4,
		},
		GunType:  "light gun",
		GunPrice: decimal.NewFromInt(40),
	}
}

// Kind возвращает вариант автомата.
func (m *ShootingMachine) Kind() MachineKind { return KindShootingMachine }

// PeripheralPrice возвращает стоимость пистолета.
func (m *ShootingMachine) PeripheralPrice() decimal.Decimal { return m.GunPrice }

// RacingMachine — гоночный автомат с рулём и педалями.
// Набор дополнительных атрибутов намеренно минимален и расширяется по мере уточнения требований.
type RacingMachine struct {
	MachineBase
	SteeringType string
	WheelPrice   decimal.Decimal
}

// NewRacingMachine создаёт гоночный автомат с заводскими характеристиками.
func NewRacingMachine() *RacingMachine {
	return &RacingMachine{
		MachineBase: MachineBase{
			Dimensions:       defaultDimensions(),
			Weight:           decimal.NewFromInt(125),
			PowerConsumption: decimal.NewFromInt(230),
			BasePrice:        decimal.NewFromInt(700),
			MemoryGB:         16,
			Processors:       6,
		},
		SteeringType: "force feedback",
		WheelPrice:   decimal.NewFromInt(60),
	}
}

// Kind возвращает вариант автомата.
func (m *RacingMachine) Kind() MachineKind { return KindRacingMachine }

// PeripheralPrice возвращает стоимость руля.
func (m *RacingMachine) PeripheralPrice() decimal.Decimal { return m.WheelPrice }

// VirtualReality — автомат виртуальной реальности с гарнитурой.
type VirtualReality struct {
	MachineBase
	GlassesType       string
	GlassesResolution string
	GlassesPrice      decimal.Decimal
}

// NewVirtualReality создаёт VR-автомат с заводскими характеристиками.
func NewVirtualReality() *VirtualReality {
	return &VirtualReality{
		MachineBase: MachineBase{
			Dimensions:       defaultDimensions(),
			Weight:           decimal.NewFromInt(140),
			PowerConsumption: decimal.NewFromInt(300),
			BasePrice:        decimal.NewFromInt(800),
			MemoryGB:         16,
			Processors:       8,
		},
		GlassesType:       "OLED headset",
		GlassesResolution: "2160x2160",
		GlassesPrice:      decimal.NewFromInt(150),
	}
}

// Kind возвращает вариант автомата.
func (m *VirtualReality) Kind() MachineKind { return KindVirtualReality }

// PeripheralPrice возвращает стоимость VR-гарнитуры.
func (m *VirtualReality) PeripheralPrice() decimal.Decimal { return m.GlassesPrice }

// NewMachine — фабрика вариантов автомата.
func NewMachine(kind MachineKind) (Machine, error) {
	switch kind {
	case KindDanceRevolution:
		return NewDanceRevolution(), nil
	case KindClassicalArcade:
		return NewClassicalArcade(), nil
	case KindShootingMachine:
		return NewShootingMachine(), nil
	case KindRacingMachine:
		return NewRacingMachine(), nil
	case KindVirtualReality:
		return NewVirtualReality(), nil
	default:
		return nil, ErrUnknownMachineKind
	}
}
