package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds presentation and diagnostics settings for the front-end.
// Board geometry is fixed by the core and deliberately absent here.
type Config struct {
	LogLevel     string `yaml:"log-level" env:"GRIDFALL_LOG_LEVEL" env-default:"info"`
	CellSize     int    `yaml:"cell-size" env:"GRIDFALL_CELL_SIZE" env-default:"30"`
	Seed         uint64 `yaml:"seed" env:"GRIDFALL_SEED" env-default:"0"`
	DebugOverlay bool   `yaml:"debug-overlay" env:"GRIDFALL_DEBUG_OVERLAY" env-default:"false"`
}

// MustLoad reads the config file at path, falling back to environment
// variables alone when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
