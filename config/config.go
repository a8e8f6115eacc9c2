package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"war/meta"
)

const DefaultPath = "configs/war.yml"

type Config struct {
	Seed        uint64            `mapstructure:"seed"`
	MaxTurns    int               `mapstructure:"max_turns"`
	Players     []string          `mapstructure:"players"`
	Territories []TerritoryConfig `mapstructure:"territories"`
	Report      string            `mapstructure:"report"`
	Log         LogConfig         `mapstructure:"log"`
}

type TerritoryConfig struct {
	Name   string `mapstructure:"name"`
	Color  string `mapstructure:"color"`
	Troops int    `mapstructure:"troops"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`    // Megabytes
	MaxBackups int    `mapstructure:"max_backups"` // Rotated files kept
	MaxAge     int    `mapstructure:"max_age"`     // Days
	Compress   bool   `mapstructure:"compress"`
}

// Load reads the config file at path, if any, then applies WAR_* environment
// overrides on top of the defaults. An empty path falls back to DefaultPath
// when that file exists.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" && fileExist(DefaultPath) {
		path = DefaultPath
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("max_turns", meta.MAX_TURNS)
	v.SetDefault("players", []string{"azul", "vermelho"})
	v.SetDefault("territories", []map[string]any{
		{"name": "Brasil", "color": "azul", "troops": 6},
		{"name": "Argentina", "color": "vermelho", "troops": 5},
		{"name": "Peru", "color": "azul", "troops": 3},
		{"name": "Chile", "color": "vermelho", "troops": 4},
		{"name": "Uruguai", "color": "vermelho", "troops": 2},
	})
	v.SetDefault("report", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
}

// Validate checks the parts of the config a session cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Players) != 2 {
		errs = append(errs, fmt.Errorf("players: need exactly 2 armies, got %d", len(c.Players)))
	} else if c.Players[0] == c.Players[1] {
		errs = append(errs, fmt.Errorf("players: both players use army %q", c.Players[0]))
	}
	if len(c.Territories) < 1 || len(c.Territories) > meta.MAX_TERRITORIES {
		errs = append(errs, fmt.Errorf("territories: need 1 to %d, got %d", meta.MAX_TERRITORIES, len(c.Territories)))
	}
	if c.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("max_turns: must be positive, got %d", c.MaxTurns))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
