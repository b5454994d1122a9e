package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/ledger"
)

const envPrefix = "LEDGER_"

type Config struct {
	Port            string `koanf:"port"`
	LogLevel        string `koanf:"log_level"`
	IDPolicy        string `koanf:"id_policy"`
	Seed            bool   `koanf:"seed"`
	CurrencyPrefix  string `koanf:"currency_prefix"`
	OperatorWorkers int    `koanf:"operator_workers"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"port":             "9446",
		"log_level":        "info",
		"id_policy":        string(ledger.IDPolicySize),
		"seed":             true,
		"currency_prefix":  "Rp ",
		"operator_workers": 1,
	}
}

// ProcessEnvironmentVariables loads the defaults, then the optional YAML file at
// path, then LEDGER_* environment variables, each overriding the previous layer.
func ProcessEnvironmentVariables(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns every problem found in the configuration joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level '%s'", c.LogLevel))
	}

	if _, err := ledger.ParseIDPolicy(c.IDPolicy); err != nil {
		errs = append(errs, fmt.Errorf("invalid id policy '%s': must be size or monotonic", c.IDPolicy))
	}

	if c.OperatorWorkers < 1 {
		errs = append(errs, fmt.Errorf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	return errors.Join(errs...)
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Policy returns the parsed id policy. Call after Validate.
func (c *Config) Policy() ledger.IDPolicy {
	policy, err := ledger.ParseIDPolicy(c.IDPolicy)
	if err != nil {
		return ledger.IDPolicySize
	}
	return policy
}
