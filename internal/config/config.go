package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Scene   SceneConfig   `toml:"scene"`
	Run     RunConfig     `toml:"run"`
	Profile ProfileConfig `toml:"profile"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type SceneConfig struct {
	Path   string `toml:"path"`
	Locale string `toml:"locale"` // BCP 47 tag used for number formatting
}

// RunConfig lists the systems dispatched each round, in order.
type RunConfig struct {
	Rounds  int      `toml:"rounds"`
	Systems []string `toml:"systems"`
}

type ProfileConfig struct {
	Mode string `toml:"mode"` // "", "cpu", "mem", "allocs"
	Path string `toml:"path"`
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
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Language returns the parsed scene locale.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Scene.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func (c *Config) validate() error {
	if c.Run.Rounds < 0 {
		return fmt.Errorf("run.rounds must be >= 0, got %d", c.Run.Rounds)
	}
	if _, err := language.Parse(c.Scene.Locale); err != nil {
		return fmt.Errorf("scene.locale %q: %w", c.Scene.Locale, err)
	}
	switch c.Profile.Mode {
	case "", "cpu", "mem", "allocs":
	default:
		return fmt.Errorf("profile.mode %q: want cpu, mem or allocs", c.Profile.Mode)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Scene: SceneConfig{
			Path:   "data/yaml/scene.yaml",
			Locale: "en",
		},
		Run: RunConfig{
			Rounds:  1,
			Systems: []string{"print_world", "add_health", "sap_strength", "print_world"},
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}
