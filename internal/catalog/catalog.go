// Package catalog реализует статический каталог видеоигр, загружаемый один раз при старте.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sahilm/fuzzy"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/arcade-system/internal/model"
)

// ErrGameNotFound возвращается, если игра с указанным кодом отсутствует в каталоге.
var ErrGameNotFound = errors.New("game not found")

// Наценка на игры высокой чёткости применяется один раз при загрузке каталога.
var hdMarkup = decimal.NewFromFloat(1.10)

// Store — каталог игр, доступный только для чтения. Изменение каталога после загрузки не предусмотрено.
type Store struct {
	games  []model.Game
	byCode map[string]model.Game
}

// gameSource реализует fuzzy.Source для поиска по названиям игр.
type gameSource []model.Game

func (s gameSource) Len() int            { return len(s) }
func (s gameSource) String(i int) string { return s[i].Title }

// New загружает каталог из JSON-файла и проверяет корректность записей.
func New(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var games []model.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	return build(games)
}

func build(games []model.Game) (*Store, error) {
	s := &Store{
		games:  make([]model.Game, 0, len(games)),
		byCode: make(map[string]model.Game, len(games)),
	}

	for _, g := range games {
		if g.Code == "" {
			return nil, fmt.Errorf("game %q: empty code", g.Title)
		}
		if !g.Price.IsPositive() {
			return nil, fmt.Errorf("game %q: price must be positive", g.Code)
		}
		if _, exists := s.byCode[g.Code]; exists {
			return nil, fmt.Errorf("game %q: duplicate code", g.Code)
		}

		if g.HD {
			g.Price = g.Price.Mul(hdMarkup)
		}

		s.games = append(s.games, g)
		s.byCode[g.Code] = g
	}

	return s, nil
}

// Lookup возвращает игру по коду. Частично заполненных значений не бывает:
// либо игра целиком, либо ErrGameNotFound.
func (s *Store) Lookup(code string) (model.Game, error) {
	g, ok := s.byCode[code]
	if !ok {
		return model.Game{}, fmt.Errorf("%w: %s", ErrGameNotFound, code)
	}
	return g, nil
}

// List возвращает все игры каталога в порядке загрузки.
// Каждый вызов отдаёт свежую копию среза, порядок всегда одинаковый.
func (s *Store) List() []model.Game {
	res := make([]model.Game, len(s.games))
	copy(res, s.games)
	return res
}

// Search ищет игры по названию с нечётким соответствием, результаты отсортированы по релевантности.
func (s *Store) Search(query string) []model.Game {
	matches := fuzzy.FindFrom(query, gameSource(s.games))

	res := make([]model.Game, 0, len(matches))
	for _, m := range matches {
		res = append(res, s.games[m.Index])
	}
	return res
}

// Len возвращает количество игр в каталоге.
func (s *Store) Len() int {
	return len(s.games)
}
