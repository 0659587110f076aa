// Package storage содержит реализацию хранения данных в плоских JSON-файлах.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmeshcher/arcade-system/internal/model"
)

// ErrUserNotFound возвращается, если пользователь не найден.
var ErrUserNotFound = errors.New("user not found")

const (
	usersFile     = "users.json"
	purchasesFile = "purchases.json"
)

// Storage предоставляет доступ к файлам users.json и purchases.json в каталоге данных.
// Записи только добавляются; конкурентный доступ не поддерживается.
type Storage struct {
	usersPath     string
	purchasesPath string
}

// New создаёт хранилище в указанном каталоге, при необходимости создавая сам каталог.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &Storage{
		usersPath:     filepath.Join(dir, usersFile),
		purchasesPath: filepath.Join(dir, purchasesFile),
	}, nil
}

// readList читает JSON-список из файла. Отсутствующий или пустой файл равнозначен пустому списку.
func readList[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

func writeList[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// CreateUser создаёт нового пользователя со следующим по порядку идентификатором.
func (s *Storage) CreateUser(ctx context.Context, name, phone string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	users, err := readList[model.User](s.usersPath)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	user := model.User{
		ID:    maxID + 1,
		Name:  name,
		Phone: phone,
	}

	users = append(users, user)
	if err := writeList(s.usersPath, users); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	users, err := readList[model.User](s.usersPath)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrUserNotFound, id)
}

// SavePurchase дописывает завершённую покупку в purchases.json.
func (s *Storage) SavePurchase(ctx context.Context, p *model.Purchase) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	purchases, err := readList[model.Purchase](s.purchasesPath)
	if err != nil {
		return err
	}

	purchases = append(purchases, *p)
	return writeList(s.purchasesPath, purchases)
}

// PurchasesByUser возвращает покупки пользователя в порядке оформления.
func (s *Storage) PurchasesByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	purchases, err := readList[model.Purchase](s.purchasesPath)
	if err != nil {
		return nil, err
	}

	var res []model.Purchase
	for _, p := range purchases {
		if p.UserID == userID {
			res = append(res, p)
		}
	}
	return res, nil
}
