// Package config loads server settings from an optional YAML file with
// environment-variable overrides for the deployment-specific values.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"quoting-engine/internal/model"
)

// Duration parses "2s" style YAML values into a time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Port            string            `yaml:"port"`
	BaseURL         string            `yaml:"base_url"`
	Currency        string            `yaml:"currency"`
	AdvisorName     string            `yaml:"advisor_name"`
	AdvisorEmail    string            `yaml:"advisor_email"`
	DefaultLine     model.ProductLine `yaml:"default_line"`
	RedirectDelay   Duration          `yaml:"redirect_delay"`
	SessionIdleTTL  Duration          `yaml:"session_idle_ttl"`
	StripeSecretKey string            `yaml:"stripe_secret_key"`
}

// Default returns the demo configuration.
func Default() Config {
	return Config{
		Port:           "8080",
		BaseURL:        "http://localhost:8080",
		Currency:       "mxn",
		AdvisorName:    "Luis Valencia",
		AdvisorEmail:   "asesor@demo.mx",
		DefaultLine:    model.LineLife,
		RedirectDelay:  Duration(2 * time.Second),
		SessionIdleTTL: Duration(30 * time.Minute),
	}
}

// Load reads the YAML file at path (skipped when empty) and applies env
// overrides: PORT, BASE_URL, STRIPE_SECRET_KEY.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		cfg.StripeSecretKey = v
	}
	if !cfg.DefaultLine.Valid() {
		return cfg, fmt.Errorf("invalid default_line %q", cfg.DefaultLine)
	}
	return cfg, nil
}
