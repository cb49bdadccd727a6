package pipeline

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default configuration invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"hue min negative", func(c *Config) { c.HueMin = -0.1 }},
		{"hue max at 1", func(c *Config) { c.HueMax = 1.0 }},
		{"hue bounds inverted", func(c *Config) { c.HueMin = 0.5; c.HueMax = 0.2 }},
		{"saturation above 1", func(c *Config) { c.SatMin = 1.5 }},
		{"value negative", func(c *Config) { c.ValMin = -0.2 }},
		{"negative min object size", func(c *Config) { c.MinObjectSize = -1 }},
		{"negative close radius", func(c *Config) { c.CloseRadius = -2 }},
		{"negative open radius", func(c *Config) { c.OpenRadius = -1 }},
		{"negative area minimum", func(c *Config) { c.AreaMin = -100 }},
		{"eccentricity minimum at 1", func(c *Config) { c.EccMin = 1.0 }},
		{"solidity bounds inverted", func(c *Config) { c.SolMin = 0.9; c.SolMax = 0.6 }},
		{"solidity above 1", func(c *Config) { c.SolMax = 1.2 }},
		{"curve minimum above 1", func(c *Config) { c.CurveMin = 1.5 }},
		{"zero line width", func(c *Config) { c.LineWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error does not wrap ErrInvalidConfig: %v", err)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HueMin = 2.0
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New accepted an invalid configuration: %v", err)
	}
}
