package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName           string   `env:"APP_NAME" env-default:"taskapi"`
	AppPort           string   `env:"APP_PORT" env-default:"8080"`
	LogLevel          string   `env:"LOG_LEVEL" env-default:"info"`
	DbDriver          string   `env:"DB_DRIVER" env-default:"mysql"`
	DbHost            string   `env:"DB_HOST" env-default:"db"`
	DbPort            string   `env:"DB_PORT" env-default:"3306"`
	DbUser            string   `env:"DB_USER" env-default:"taskapi"`
	DbPassword        string   `env:"DB_PASSWORD" env-default:"taskapi"`
	DbName            string   `env:"DB_NAME" env-default:"taskapi"`
	DbParams          string   `env:"DB_PARAMS"`
	DbPath            string   `env:"DB_PATH" env-default:"taskapi.db"`
	DbMigrateOnStart  bool     `env:"DB_MIGRATE_ON_START" env-default:"true"`
	TrustedProxies    []string `env:"TRUSTED_PROXIES" env-separator:","`
	TranslationFolder string   `env:"TRANSLATION_FOLDER"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.DbDriver = strings.ToLower(strings.TrimSpace(cfg.DbDriver))
	cfg.TrustedProxies = normalizeTrustedProxies(cfg.TrustedProxies)

	return &cfg, nil
}

func normalizeTrustedProxies(values []string) []string {
	proxies := make([]string, 0, len(values))
	for _, value := range values {
		proxy := strings.TrimSpace(value)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
