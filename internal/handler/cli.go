// Package handler реализует консольный интерфейс магазина аркадных автоматов.
package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mmeshcher/arcade-system/internal/catalog"
	"github.com/mmeshcher/arcade-system/internal/material"
	"github.com/mmeshcher/arcade-system/internal/model"
	"github.com/mmeshcher/arcade-system/internal/service"
	"github.com/mmeshcher/arcade-system/internal/storage"
)

// Service определяет контракт бизнес-логики, используемой консольным интерфейсом.
type Service interface {
	RegisterUser(ctx context.Context, name, phone string) (*model.User, error)
	Games() []model.Game
	SearchGames(query string) []model.Game
	NewMachine(kind model.MachineKind) (model.Machine, error)
	ChooseMaterial(m model.Machine, mat model.Material) error
	AddGame(m model.Machine, code string) error
	Finalize(ctx context.Context, m model.Machine, userID int64, customer model.Customer) (*model.Purchase, error)
	PurchasesByUser(ctx context.Context, userID int64) ([]model.Purchase, error)
}

// CLI реализует меню магазина поверх блокирующего чтения ввода.
type CLI struct {
	service Service
	logger  *zap.Logger
	in      *bufio.Scanner
	out     io.Writer
}

// NewCLI создаёт новый консольный интерфейс с указанными потоками ввода и вывода.
func NewCLI(s Service, logger *zap.Logger, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		service: s,
		logger:  logger,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

const menu = `
1. Register user
2. Show games
3. Search games
4. Buy machine
5. View purchases
6. Exit
`

// Порядок пунктов меню выбора варианта автомата.
var machineKinds = []model.MachineKind{
	model.KindDanceRevolution,
	model.KindClassicalArcade,
	model.KindShootingMachine,
	model.KindRacingMachine,
	model.KindVirtualReality,
}

// Run выполняет цикл меню до выбора выхода, конца ввода или отмены контекста.
// Ошибки доменного уровня показываются пользователю и не прерывают цикл.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(c.out, menu)

		choice, ok := c.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.registerUser(ctx)
		case "2":
			c.showGames(c.service.Games())
		case "3":
			c.searchGames()
		case "4":
			c.buyMachine(ctx)
		case "5":
			c.viewPurchases(ctx)
		case "6":
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option. Please try again.")
		}
	}
}

// prompt выводит приглашение и читает одну строку; второй результат false при конце ввода.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) promptUserID() (int64, bool) {
	raw, ok := c.prompt("Enter your user ID: ")
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(c.out, "User ID must be a number.")
		return 0, false
	}
	return id, true
}

func (c *CLI) registerUser(ctx context.Context) {
	name, ok := c.prompt("Enter your name: ")
	if !ok {
		return
	}
	phone, ok := c.prompt("Enter your phone number: ")
	if !ok {
		return
	}

	user, err := c.service.RegisterUser(ctx, name, phone)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "User created with ID: %d\n", user.ID)
}

func (c *CLI) showGames(games []model.Game) {
	if len(games) == 0 {
		fmt.Fprintln(c.out, "No games available.")
		return
	}

	for _, g := range games {
		fmt.Fprintf(c.out, "Code: %s, Title: %s, Category: %s, Year: %d, Price: $%s\n",
			g.Code, g.Title, g.Category, g.Year, g.Price.StringFixed(2))
	}
}

func (c *CLI) searchGames() {
	query, ok := c.prompt("Enter a title to search for: ")
	if !ok || query == "" {
		return
	}

	games := c.service.SearchGames(query)
	if len(games) == 0 {
		fmt.Fprintln(c.out, "No games matched your search.")
		return
	}
	c.showGames(games)
}

func (c *CLI) buyMachine(ctx context.Context) {
	userID, ok := c.promptUserID()
	if !ok {
		return
	}

	m, ok := c.chooseMachine()
	if !ok {
		return
	}

	if !c.chooseMaterial(m) {
		return
	}

	c.addGames(m)

	customer, ok := c.promptCustomer()
	if !ok {
		return
	}

	purchase, err := c.service.Finalize(ctx, m, userID, customer)
	if err != nil {
		c.printError(err)
		return
	}

	c.printPurchase(purchase)
}

func (c *CLI) chooseMachine() (model.Machine, bool) {
	fmt.Fprintln(c.out, "Available machines:")
	for i, kind := range machineKinds {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, kind)
	}

	raw, ok := c.prompt("Choose a machine: ")
	if !ok {
		return nil, false
	}

	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 1 || idx > len(machineKinds) {
		fmt.Fprintln(c.out, "Invalid machine choice.")
		return nil, false
	}

	m, err := c.service.NewMachine(machineKinds[idx-1])
	if err != nil {
		c.printError(err)
		return nil, false
	}

	b := m.Base()
	fmt.Fprintf(c.out, "Selected %s: base price $%s, weight %s kg, power %s W, memory %d GB, processors %d\n",
		m.Kind(), b.BasePrice.StringFixed(2), b.Weight.String(), b.PowerConsumption.String(), b.MemoryGB, b.Processors)

	return m, true
}

func (c *CLI) chooseMaterial(m model.Machine) bool {
	for {
		raw, ok := c.prompt("Enter material (wood/aluminum/carbonFiber): ")
		if !ok {
			return false
		}

		err := c.service.ChooseMaterial(m, model.Material(raw))
		if err == nil {
			adj := m.Base().Adjusted
			fmt.Fprintf(c.out, "Material applied: price $%s, weight %s kg, power %s W\n",
				adj.Price.StringFixed(2), adj.Weight.String(), adj.PowerConsumption.String())
			return true
		}

		if errors.Is(err, material.ErrInvalidMaterial) {
			fmt.Fprintln(c.out, "Unknown material. Please choose wood, aluminum or carbonFiber.")
			continue
		}

		c.printError(err)
		return false
	}
}

func (c *CLI) addGames(m model.Machine) {
	for {
		code, ok := c.prompt("Enter game code to add (or type 'done' to finish): ")
		if !ok || strings.EqualFold(code, "done") {
			return
		}
		if code == "" {
			continue
		}

		if err := c.service.AddGame(m, code); err != nil {
			c.printError(err)
			continue
		}

		fmt.Fprintf(c.out, "Added game: %s\n", code)
	}
}

func (c *CLI) promptCustomer() (model.Customer, bool) {
	name, ok := c.prompt("Enter customer name: ")
	if !ok {
		return model.Customer{}, false
	}
	phone, ok := c.prompt("Enter customer phone: ")
	if !ok {
		return model.Customer{}, false
	}
	address, ok := c.prompt("Enter delivery address: ")
	if !ok {
		return model.Customer{}, false
	}

	return model.Customer{Name: name, Phone: phone, Address: address}, true
}

func (c *CLI) printPurchase(p *model.Purchase) {
	fmt.Fprintf(c.out, "Purchase %s completed: %s (%s), total $%s\n",
		p.ID, p.Machine.Kind, p.Machine.Material, p.TotalPrice.StringFixed(2))
	if len(p.Machine.Games) > 0 {
		fmt.Fprintf(c.out, "Games: %s\n", strings.Join(p.Machine.Games, ", "))
	}
}

func (c *CLI) viewPurchases(ctx context.Context) {
	userID, ok := c.promptUserID()
	if !ok {
		return
	}

	purchases, err := c.service.PurchasesByUser(ctx, userID)
	if err != nil {
		c.printError(err)
		return
	}

	if len(purchases) == 0 {
		fmt.Fprintln(c.out, "No purchases found for this ID.")
		return
	}

	for _, p := range purchases {
		c.printPurchase(&p)
	}
}

// printError переводит доменные ошибки в сообщения пользователю; ни одна из них не фатальна.
func (c *CLI) printError(err error) {
	switch {
	case errors.Is(err, catalog.ErrGameNotFound):
		fmt.Fprintln(c.out, "Game code not found.")
	case errors.Is(err, service.ErrDuplicateGame):
		fmt.Fprintln(c.out, "This game is already added to the machine.")
	case errors.Is(err, service.ErrEmptyMachine):
		fmt.Fprintln(c.out, "Select a machine and apply a material first.")
	case errors.Is(err, service.ErrIncompleteCustomerInfo):
		fmt.Fprintln(c.out, "Customer info is incomplete or invalid. Please try again.")
	case errors.Is(err, material.ErrInvalidMaterial):
		fmt.Fprintln(c.out, "Unknown material. Please choose wood, aluminum or carbonFiber.")
	case errors.Is(err, storage.ErrUserNotFound):
		fmt.Fprintln(c.out, "User ID not found.")
	case errors.Is(err, model.ErrUnknownMachineKind):
		fmt.Fprintln(c.out, "Unknown machine kind.")
	default:
		c.logger.Error("unexpected error", zap.Error(err))
		fmt.Fprintln(c.out, "Something went wrong. Please try again.")
	}
}
