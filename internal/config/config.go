package config

import (
	"fmt"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SlackBotToken      string        `envconfig:"SLACK_BOT_TOKEN" required:"true"`
	SlackSigningSecret string        `envconfig:"SLACK_SIGNING_SECRET" required:"true"`
	DatabasePath       string        `envconfig:"DATABASE_PATH" default:"./cornbot.db"`
	Port               string        `envconfig:"PORT" default:"3000"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string        `envconfig:"LOG_FORMAT" default:"json"`
	HomeUTCOffset      int           `envconfig:"HOME_UTC_OFFSET" default:"-7"`
	DeliveryRatePerSec int           `envconfig:"DELIVERY_RATE_PER_SEC" default:"1"`
	ReadRatePerSec     int           `envconfig:"READ_RATE_PER_SEC" default:"1"`
	BreakTick          time.Duration `envconfig:"BREAK_TICK" default:"1m"`
	MessagesFile       string        `envconfig:"MESSAGES_FILE"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := domain.ValidateOffset(c.HomeUTCOffset); err != nil {
		return fmt.Errorf("HOME_UTC_OFFSET: %w", err)
	}
	if c.DeliveryRatePerSec <= 0 {
		return fmt.Errorf("DELIVERY_RATE_PER_SEC must be positive, got %d", c.DeliveryRatePerSec)
	}
	if c.ReadRatePerSec <= 0 {
		return fmt.Errorf("READ_RATE_PER_SEC must be positive, got %d", c.ReadRatePerSec)
	}
	if c.BreakTick < time.Second {
		return fmt.Errorf("BREAK_TICK must be at least 1s, got %s", c.BreakTick)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}
