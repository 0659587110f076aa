package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/arcade-system/internal/catalog"
	"github.com/mmeshcher/arcade-system/internal/material"
	"github.com/mmeshcher/arcade-system/internal/model"
	"github.com/mmeshcher/arcade-system/internal/storage"
)

type stubCatalog struct {
	games []model.Game
}

func (c *stubCatalog) Lookup(code string) (model.Game, error) {
	for _, g := range c.games {
		if g.Code == code {
			return g, nil
		}
	}
	return model.Game{}, fmt.Errorf("%w: %s", catalog.ErrGameNotFound, code)
}

func (c *stubCatalog) List() []model.Game { return c.games }

func (c *stubCatalog) Search(query string) []model.Game { return nil }

type stubRepo struct {
	createdUser *model.User
	createErr   error

	getUser    *model.User
	getUserErr error

	saved   []*model.Purchase
	saveErr error

	purchases    []model.Purchase
	purchasesErr error
}

func (r *stubRepo) CreateUser(ctx context.Context, name, phone string) (*model.User, error) {
	return r.createdUser, r.createErr
}

func (r *stubRepo) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return r.getUser, r.getUserErr
}

func (r *stubRepo) SavePurchase(ctx context.Context, p *model.Purchase) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, p)
	return nil
}

func (r *stubRepo) PurchasesByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	return r.purchases, r.purchasesErr
}

func newTestService(games ...model.Game) (*Service, *stubRepo) {
	repo := &stubRepo{
		createdUser: &model.User{ID: 1, Name: "Ivan Petrov", Phone: "79990001122"},
		getUser:     &model.User{ID: 1, Name: "Ivan Petrov", Phone: "79990001122"},
	}
	return NewService(&stubCatalog{games: games}, repo), repo
}

func validCustomer() model.Customer {
	return model.Customer{
		Name:    "Ivan Petrov",
		Phone:   "79990001122",
		Address: "Moscow, Tverskaya 1",
	}
}

func TestRegisterUser_InvalidPhone(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RegisterUser(context.Background(), "Ivan Petrov", "not-a-phone")
	if !errors.Is(err, ErrIncompleteCustomerInfo) {
		t.Fatalf("expected ErrIncompleteCustomerInfo, got %v", err)
	}
}

func TestChooseMaterial(t *testing.T) {
	svc, _ := newTestService()

	m := model.NewDanceRevolution()
	if err := svc.ChooseMaterial(m, model.MaterialWood); err != nil {
		t.Fatalf("ChooseMaterial error: %v", err)
	}

	// Исходные значения остаются нетронутыми.
	if !m.Base().BasePrice.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("BasePrice mutated: %s", m.Base().BasePrice)
	}
	if !m.Base().Adjusted.Price.Equal(decimal.NewFromInt(665)) {
		t.Fatalf("adjusted price = %s, want 665", m.Base().Adjusted.Price)
	}
}

func TestChooseMaterial_ReselectionDoesNotCompound(t *testing.T) {
	svc, _ := newTestService()

	m := model.NewDanceRevolution()
	for _, mat := range []model.Material{model.MaterialWood, model.MaterialCarbonFiber, model.MaterialWood} {
		if err := svc.ChooseMaterial(m, mat); err != nil {
			t.Fatalf("ChooseMaterial error: %v", err)
		}
	}

	once, err := material.Adjust(m.Base().BaseAttributes(), model.MaterialWood)
	if err != nil {
		t.Fatalf("Adjust error: %v", err)
	}

	if !m.Base().Adjusted.Price.Equal(once.Price) || !m.Base().Adjusted.Weight.Equal(once.Weight) {
		t.Fatalf("reselection compounded: %+v, want %+v", *m.Base().Adjusted, once)
	}
}

func TestChooseMaterial_Invalid(t *testing.T) {
	svc, _ := newTestService()

	m := model.NewClassicalArcade()
	err := svc.ChooseMaterial(m, model.Material("plastic"))
	if !errors.Is(err, material.ErrInvalidMaterial) {
		t.Fatalf("expected ErrInvalidMaterial, got %v", err)
	}
	if m.Base().Adjusted != nil {
		t.Fatalf("failed material choice must not set adjusted attributes")
	}
}

func TestAddGame(t *testing.T) {
	game := model.Game{Code: "G01", Title: "Street Brawler", Price: decimal.NewFromInt(20)}
	svc, _ := newTestService(game)

	m := model.NewClassicalArcade()
	if err := svc.AddGame(m, "G01"); err != nil {
		t.Fatalf("AddGame error: %v", err)
	}

	if err := svc.AddGame(m, "G01"); !errors.Is(err, ErrDuplicateGame) {
		t.Fatalf("expected ErrDuplicateGame, got %v", err)
	}
	if len(m.Base().Games) != 1 {
		t.Fatalf("game count after duplicate = %d, want 1", len(m.Base().Games))
	}

	if err := svc.AddGame(m, "UNKNOWN"); !errors.Is(err, catalog.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if len(m.Base().Games) != 1 {
		t.Fatalf("game count after not-found = %d, want 1", len(m.Base().Games))
	}
}

func TestAddGame_PreservesOrder(t *testing.T) {
	games := []model.Game{
		{Code: "G01", Title: "Street Brawler", Price: decimal.NewFromInt(20)},
		{Code: "G02", Title: "Rhythm Stars", Price: decimal.NewFromInt(25)},
		{Code: "G03", Title: "Night Racer", Price: decimal.NewFromInt(30)},
	}
	svc, _ := newTestService(games...)

	m := model.NewClassicalArcade()
	for _, code := range []string{"G03", "G01", "G02"} {
		if err := svc.AddGame(m, code); err != nil {
			t.Fatalf("AddGame(%s) error: %v", code, err)
		}
	}

	got := m.Base().Games
	if got[0].Code != "G03" || got[1].Code != "G01" || got[2].Code != "G02" {
		t.Fatalf("insertion order not preserved: %+v", got)
	}
}

func TestFinalize_EmptyMachine(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Finalize(ctx, nil, 1, validCustomer()); !errors.Is(err, ErrEmptyMachine) {
		t.Fatalf("expected ErrEmptyMachine for nil machine, got %v", err)
	}

	// Автомат без выбранного материала тоже считается не сконфигурированным.
	m := model.NewClassicalArcade()
	if _, err := svc.Finalize(ctx, m, 1, validCustomer()); !errors.Is(err, ErrEmptyMachine) {
		t.Fatalf("expected ErrEmptyMachine for machine without material, got %v", err)
	}
}

func TestFinalize_IncompleteCustomer(t *testing.T) {
	svc, repo := newTestService()

	m := model.NewClassicalArcade()
	if err := svc.ChooseMaterial(m, model.MaterialWood); err != nil {
		t.Fatalf("ChooseMaterial error: %v", err)
	}

	customer := validCustomer()
	customer.Phone = "7999abc"

	_, err := svc.Finalize(context.Background(), m, 1, customer)
	if !errors.Is(err, ErrIncompleteCustomerInfo) {
		t.Fatalf("expected ErrIncompleteCustomerInfo, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("failed finalize must not persist a purchase")
	}
}

func TestFinalize_UserNotFound(t *testing.T) {
	svc, repo := newTestService()
	repo.getUser = nil
	repo.getUserErr = storage.ErrUserNotFound

	m := model.NewClassicalArcade()
	if err := svc.ChooseMaterial(m, model.MaterialWood); err != nil {
		t.Fatalf("ChooseMaterial error: %v", err)
	}

	_, err := svc.Finalize(context.Background(), m, 42, validCustomer())
	if !errors.Is(err, storage.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFinalize_ZeroGames(t *testing.T) {
	svc, repo := newTestService()

	// Классический автомат без периферии и без игр: итог равен скорректированной базовой цене.
	m := model.NewClassicalArcade()
	m.Material = model.MaterialWood
	m.Adjusted = &model.Attributes{
		Weight:           decimal.NewFromInt(121),
		Price:            decimal.NewFromInt(100),
		PowerConsumption: decimal.NewFromInt(253),
	}

	p, err := svc.Finalize(context.Background(), m, 1, validCustomer())
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if !p.TotalPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("TotalPrice = %s, want 100", p.TotalPrice)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("purchase was not persisted")
	}
}

func TestFinalize_DanceRevolutionExample(t *testing.T) {
	game := model.Game{Code: "G01", Title: "Street Brawler", Price: decimal.NewFromInt(20)}
	svc, _ := newTestService(game)

	m := model.NewDanceRevolution()
	m.BasePrice = decimal.NewFromInt(500)
	m.ControlsPrice = decimal.Zero

	if err := svc.ChooseMaterial(m, model.MaterialWood); err != nil {
		t.Fatalf("ChooseMaterial error: %v", err)
	}
	if !m.Base().Adjusted.Price.Equal(decimal.NewFromInt(475)) {
		t.Fatalf("adjusted price = %s, want 475", m.Base().Adjusted.Price)
	}

	if err := svc.AddGame(m, "G01"); err != nil {
		t.Fatalf("AddGame error: %v", err)
	}

	p, err := svc.Finalize(context.Background(), m, 1, validCustomer())
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if !p.TotalPrice.Equal(decimal.NewFromInt(495)) {
		t.Fatalf("TotalPrice = %s, want 495", p.TotalPrice)
	}
	if p.Machine.Games[0] != "Street Brawler" {
		t.Fatalf("unexpected purchase games: %+v", p.Machine.Games)
	}
}

func TestFinalize_IncludesPeripheralPrice(t *testing.T) {
	svc, _ := newTestService()

	m := model.NewVirtualReality()
	if err := svc.ChooseMaterial(m, model.MaterialAluminum); err != nil {
		t.Fatalf("ChooseMaterial error: %v", err)
	}

	p, err := svc.Finalize(context.Background(), m, 1, validCustomer())
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	// 800 * 1.10 + 150 за гарнитуру.
	want := decimal.NewFromInt(1030)
	if !p.TotalPrice.Equal(want) {
		t.Fatalf("TotalPrice = %s, want %s", p.TotalPrice, want)
	}
}

func TestPurchasesByUser_UserNotFound(t *testing.T) {
	svc, repo := newTestService()
	repo.getUser = nil
	repo.getUserErr = storage.ErrUserNotFound

	_, err := svc.PurchasesByUser(context.Background(), 42)
	if !errors.Is(err, storage.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
