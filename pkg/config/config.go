package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryURL string `env:"SENTRY_URL"`
	}
	Discord struct {
		Token   string `env:"DISCORD_TOKEN"`
		AppID   string `env:"DISCORD_APP_ID"`
		GuildID string `env:"DISCORD_GUILD_ID"`
	}
	HTTP struct {
		Timeout time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"1"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"5s"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"3"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
