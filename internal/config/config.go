// Package config содержит логику чтения конфигурации магазина аркадных автоматов.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит параметры конфигурации приложения.
type Config struct {
	CatalogPath string `env:"CATALOG_PATH"`
	StoragePath string `env:"STORAGE_PATH"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами; файл .env подхватывается, если существует.
func Parse() (*Config, error) {
	// Отсутствие .env не является ошибкой.
	_ = godotenv.Load()

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envCatalogPath := cfg.CatalogPath
	envStoragePath := cfg.StoragePath

	flag.StringVar(&cfg.CatalogPath, "c", "games.json", "path to the game catalog file")
	flag.StringVar(&cfg.StoragePath, "s", ".", "directory for users and purchases files")

	flag.Parse()

	if envCatalogPath != "" {
		cfg.CatalogPath = envCatalogPath
	}
	if envStoragePath != "" {
		cfg.StoragePath = envStoragePath
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = "games.json"
	}
	if cfg.StoragePath == "" {
		cfg.StoragePath = "."
	}

	return cfg, nil
}
