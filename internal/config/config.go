// Package config содержит логику чтения конфигурации сервиса мотомастерской.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации сервиса мотомастерской.
type Config struct {
	RunAddress      string `env:"RUN_ADDRESS"`
	DatabaseURI     string `env:"DATABASE_URI"`
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	AIAddress       string `env:"AI_ADDRESS"`
	AIAPIKey        string `env:"AI_API_KEY"`
}

// DefaultAIAddress — адрес чат-API провайдера текстовой генерации по умолчанию.
const DefaultAIAddress = "https://api.groq.com/openai/v1/chat/completions"

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envFileStorage := cfg.FileStoragePath
	envAIAddress := cfg.AIAddress
	envAIAPIKey := cfg.AIAPIKey

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.FileStoragePath, "f", "motoshop-data.json", "path to file storage (used when database URI is empty)")
	flag.StringVar(&cfg.AIAddress, "r", DefaultAIAddress, "chat completion endpoint of the AI provider")
	flag.StringVar(&cfg.AIAPIKey, "k", "", "API key of the AI provider")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envFileStorage != "" {
		cfg.FileStoragePath = envFileStorage
	}
	if envAIAddress != "" {
		cfg.AIAddress = envAIAddress
	}
	if envAIAPIKey != "" {
		cfg.AIAPIKey = envAIAPIKey
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.AIAddress == "" {
		cfg.AIAddress = DefaultAIAddress
	}

	return cfg, nil
}
