// Package service реализует бизнес-логику магазина аркадных автоматов.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmeshcher/arcade-system/internal/material"
	"github.com/mmeshcher/arcade-system/internal/model"
	"github.com/mmeshcher/arcade-system/internal/validation"
)

// ErrDuplicateGame возвращается при попытке добавить на автомат уже добавленную игру.
var (
	ErrDuplicateGame = errors.New("game already added")
	// ErrEmptyMachine возвращается, если автомат не выбран или материал ещё не применён.
	ErrEmptyMachine = errors.New("machine is not configured")
	// ErrIncompleteCustomerInfo возвращается при неполных или некорректных данных покупателя.
	ErrIncompleteCustomerInfo = errors.New("incomplete customer info")
)

// Catalog описывает контракт каталога игр, используемый сервисом.
type Catalog interface {
	Lookup(code string) (model.Game, error)
	List() []model.Game
	Search(query string) []model.Game
}

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	CreateUser(ctx context.Context, name, phone string) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	SavePurchase(ctx context.Context, p *model.Purchase) error
	PurchasesByUser(ctx context.Context, userID int64) ([]model.Purchase, error)
}

// Service собирает автомат к покупке и оформляет заказы.
type Service struct {
	catalog Catalog
	repo    Repository
}

// NewService создаёт новый сервис с указанным каталогом и репозиторием.
func NewService(catalog Catalog, repo Repository) *Service {
	return &Service{
		catalog: catalog,
		repo:    repo,
	}
}

// RegisterUser регистрирует нового покупателя.
func (s *Service) RegisterUser(ctx context.Context, name, phone string) (*model.User, error) {
	if err := validation.ValidateUser(name, phone); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteCustomerInfo, err)
	}
	return s.repo.CreateUser(ctx, name, phone)
}

// Games возвращает все игры каталога.
func (s *Service) Games() []model.Game {
	return s.catalog.List()
}

// SearchGames ищет игры каталога по названию.
func (s *Service) SearchGames(query string) []model.Game {
	return s.catalog.Search(query)
}

// NewMachine создаёт автомат выбранного варианта с заводскими характеристиками.
func (s *Service) NewMachine(kind model.MachineKind) (model.Machine, error) {
	return model.NewMachine(kind)
}

// ChooseMaterial применяет материал корпуса. Производные характеристики всегда
// пересчитываются от исходных заводских значений: повторный выбор материала не накапливается.
func (s *Service) ChooseMaterial(m model.Machine, mat model.Material) error {
	if m == nil {
		return ErrEmptyMachine
	}

	adjusted, err := material.Adjust(m.Base().BaseAttributes(), mat)
	if err != nil {
		return err
	}

	base := m.Base()
	base.Material = mat
	base.Adjusted = &adjusted
	return nil
}

// AddGame добавляет игру из каталога на автомат с сохранением порядка добавления.
// На автомат попадает то же неизменяемое значение игры, что хранится в каталоге.
func (s *Service) AddGame(m model.Machine, code string) error {
	if m == nil {
		return ErrEmptyMachine
	}

	game, err := s.catalog.Lookup(code)
	if err != nil {
		return err
	}

	base := m.Base()
	if base.HasGame(code) {
		return fmt.Errorf("%w: %s", ErrDuplicateGame, code)
	}

	base.Games = append(base.Games, game)
	return nil
}

// Finalize оформляет покупку: проверяет данные покупателя, считает итоговую цену
// и передаёт готовую запись в хранилище. Возвращённая покупка больше не изменяется.
func (s *Service) Finalize(ctx context.Context, m model.Machine, userID int64, customer model.Customer) (*model.Purchase, error) {
	if m == nil || !m.Base().Configured() {
		return nil, ErrEmptyMachine
	}

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	if err := validation.ValidateCustomer(customer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteCustomerInfo, err)
	}

	base := m.Base()

	total := base.Adjusted.Price.Add(m.PeripheralPrice())
	titles := make([]string, 0, len(base.Games))
	for _, g := range base.Games {
		total = total.Add(g.Price)
		titles = append(titles, g.Title)
	}

	purchase := &model.Purchase{
		ID:       uuid.NewString(),
		UserID:   userID,
		Customer: customer,
		Machine: model.PurchaseMachine{
			Kind:             m.Kind(),
			Material:         base.Material,
			Weight:           base.Adjusted.Weight,
			Price:            base.Adjusted.Price,
			PowerConsumption: base.Adjusted.PowerConsumption,
			MemoryGB:         base.MemoryGB,
			Processors:       base.Processors,
			PeripheralPrice:  m.PeripheralPrice(),
			Games:            titles,
		},
		TotalPrice: total,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.SavePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

// PurchasesByUser возвращает покупки пользователя.
func (s *Service) PurchasesByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.PurchasesByUser(ctx, userID)
}
