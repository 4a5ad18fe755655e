package config

import (
	"errors"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Locale  LocaleConfig  `yaml:"locale"`
	Session SessionConfig `yaml:"session"`
}

// DisplayConfig holds console output settings.
type DisplayConfig struct {
	Color     bool `yaml:"color"`
	RuleWidth int  `yaml:"rule_width"`
}

// LocaleConfig selects the message catalog.
type LocaleConfig struct {
	Language string `yaml:"language"`
	Catalog  string `yaml:"catalog"` // optional .po file layered over the built-in catalog
}

// SessionConfig controls the demo run.
type SessionConfig struct {
	Interactive string `yaml:"interactive"` // ask, always or never
	PhotoSeed   int64  `yaml:"photo_seed"`  // 0 seeds from the clock
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Color: true, RuleWidth: 60},
		Locale:  LocaleConfig{Language: "en"},
		Session: SessionConfig{Interactive: "ask"},
	}
}

// Load reads the configuration from the given path. An empty path yields
// Default(). Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if cfg.Display.RuleWidth <= 0 {
		log.Printf("display.rule_width is not set or invalid; defaulting to 60")
		cfg.Display.RuleWidth = 60
	}

	if cfg.Locale.Language == "" {
		cfg.Locale.Language = "en"
	}

	if cfg.Session.Interactive == "" {
		cfg.Session.Interactive = "ask"
	}

	return cfg, nil
}
