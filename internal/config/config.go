package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	Steps    int           `toml:"steps"` // 0 = run until every actor is gone
	TickRate time.Duration `toml:"tick_rate"`
	Recovery int           `toml:"recovery"` // health restored to surviving actors after each step
}

type DataConfig struct {
	ScenarioPath string `toml:"scenario_path"`
	ScriptsDir   string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Sim: SimConfig{
			Steps:    5,
			TickRate: 200 * time.Millisecond,
			Recovery: 1,
		},
		Data: DataConfig{
			ScenarioPath: "data/scenario.yaml",
			ScriptsDir:   "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
