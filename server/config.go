package server

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds server settings, populated from the environment
type Config struct {
	Port       int    `env:"GOFISH_PORT,default=8000"`
	DBPath     string `env:"GOFISH_DB_PATH,default=gofish.db"`
	BotDelayMS int    `env:"GOFISH_BOT_DELAY_MS,default=1000"`
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// BotDelay returns the pacing delay between automated moves
func (c Config) BotDelay() time.Duration {
	return time.Duration(c.BotDelayMS) * time.Millisecond
}
