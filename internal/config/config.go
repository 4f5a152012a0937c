// Package config loads reasoner configuration.
//
// Values are layered, lowest precedence first:
//  1. built-in defaults (defaults.yaml)
//  2. an optional YAML file
//  3. REASONER_* environment variables, e.g. REASONER_LOG_LEVEL -> log.level
package config

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/reasoner/internal/apperr"
	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/DjordjeVuckovic/reasoner/internal/logging"
	"github.com/DjordjeVuckovic/reasoner/pkg/stringsutil"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix         = "REASONER_"
	maxConfigFileSize = 1024 * 1024 // 1MB
)

//go:embed defaults.yaml
var defaultsYAML []byte

// listKeys are split on commas when they come from the environment.
var listKeys = map[string]bool{
	"classifier.priority": true,
	"session.exit_words":  true,
}

type Config struct {
	Log        LogConfig        `koanf:"log"`
	Classifier ClassifierConfig `koanf:"classifier"`
	Responder  ResponderConfig  `koanf:"responder"`
	Session    SessionConfig    `koanf:"session"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type ClassifierConfig struct {
	Priority  []string `koanf:"priority"`
	RulesFile string   `koanf:"rules_file"`
}

type ResponderConfig struct {
	Themed        bool   `koanf:"themed"`
	Seed          uint64 `koanf:"seed"`
	KnowledgeFile string `koanf:"knowledge_file"`
}

type SessionConfig struct {
	Prompt    string   `koanf:"prompt"`
	ExitWords []string `koanf:"exit_words"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	return Load("")
}

// Load reads defaults, then the YAML file at path when non-empty, then the
// environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envKeyValue maps REASONER_SECTION_FIELD_NAME to section.field_name.
func envKeyValue(key, value string) (string, any) {
	lower := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower, value
	}

	name := parts[0] + "." + parts[1]
	if listKeys[name] {
		return name, stringsutil.SplitList(value)
	}
	return name, value
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, apperr.NewValidationf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return apperr.NewValidationWrap("log.level", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return apperr.NewValidationf("log.format must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.Log.Format)
	}
	if _, err := c.PriorityCategories(); err != nil {
		return apperr.NewValidationWrap("classifier.priority", err)
	}
	if len(c.Session.ExitWords) == 0 {
		return apperr.NewValidation("session.exit_words must not be empty")
	}
	return nil
}

// PriorityCategories parses the configured priority list; empty means the
// rules decide.
func (c *Config) PriorityCategories() ([]classify.Category, error) {
	return classify.ParseAll(stringsutil.CleanList(c.Classifier.Priority))
}
