// Package config resolves the scytale configuration from defaults,
// optional config files, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scytale-dev/scytale/internal/crack"
	"github.com/scytale-dev/scytale/internal/env"
)

// Config captures the tunables shared by the crack commands. The zero
// Workers value means one worker per CPU.
type Config struct {
	AcceptScore  float64 `yaml:"accept_score"`
	TargetScore  float64 `yaml:"target_score"`
	MaxLayers    int     `yaml:"max_layers"`
	MaxKeyDigits int     `yaml:"max_key_digits"`
	Workers      int     `yaml:"workers"`
	OutputDir    string  `yaml:"output_dir"`
}

// Default returns the built-in configuration. The search knobs mirror
// the crack package defaults so an empty config behaves exactly like
// calling the crackers directly.
func Default() Config {
	return Config{
		AcceptScore:  crack.DefaultAcceptScore,
		TargetScore:  crack.DefaultTargetScore,
		MaxLayers:    crack.DefaultMaxLayers,
		MaxKeyDigits: crack.DefaultMaxKeyDigits,
		Workers:      0,
		OutputDir:    "out",
	}
}

// Load resolves the configuration using defaults, configuration files,
// and environment overrides. The lookup order for configuration files
// is:
//  1. ~/.scytale/config.yaml
//  2. ~/.skytale/config.yaml (legacy)
//  3. ./scytale.yml
//
// Environment variables prefixed with SCYTALE_ have the highest
// precedence.
func Load() (Config, error) {
	cfg := Default()

	if err := loadHomeConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadLocalConfig(&cfg); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}

func loadHomeConfig(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("determine home directory: %w", err)
	}

	path := filepath.Join(home, ".scytale", "config.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := applyFileConfig(cfg, data); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	legacyPath := filepath.Join(home, ".skytale", "config.yaml")
	data, err = os.ReadFile(legacyPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", legacyPath, err)
	}
	log.Println("Using legacy skytale config")
	if err := applyFileConfig(cfg, data); err != nil {
		return fmt.Errorf("parse config %s: %w", legacyPath, err)
	}
	return nil
}

func loadLocalConfig(cfg *Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	path := filepath.Join(wd, "scytale.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, data); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// fileConfig mirrors Config with pointer fields so a file can set a
// value to zero without clobbering settings it never mentions.
type fileConfig struct {
	AcceptScore  *float64 `yaml:"accept_score"`
	TargetScore  *float64 `yaml:"target_score"`
	MaxLayers    *int     `yaml:"max_layers"`
	MaxKeyDigits *int     `yaml:"max_key_digits"`
	Workers      *int     `yaml:"workers"`
	OutputDir    *string  `yaml:"output_dir"`
}

func applyFileConfig(cfg *Config, data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.AcceptScore != nil {
		cfg.AcceptScore = *fc.AcceptScore
	}
	if fc.TargetScore != nil {
		cfg.TargetScore = *fc.TargetScore
	}
	if fc.MaxLayers != nil {
		cfg.MaxLayers = *fc.MaxLayers
	}
	if fc.MaxKeyDigits != nil {
		cfg.MaxKeyDigits = *fc.MaxKeyDigits
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.OutputDir != nil {
		cfg.OutputDir = strings.TrimSpace(*fc.OutputDir)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) {
	if val := lookupEnv("ACCEPT_SCORE"); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.AcceptScore = parsed
		}
	}
	if val := lookupEnv("TARGET_SCORE"); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.TargetScore = parsed
		}
	}
	if val := lookupEnv("MAX_LAYERS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			cfg.MaxLayers = parsed
		}
	}
	if val := lookupEnv("MAX_KEY_DIGITS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			cfg.MaxKeyDigits = parsed
		}
	}
	if val := lookupEnv("WORKERS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			cfg.Workers = parsed
		}
	}
	if val := lookupEnv("OUT"); val != "" {
		cfg.OutputDir = val
	}
}

func lookupEnv(name string) string {
	val, _ := env.Lookup("SCYTALE_"+name, "SKYTALE_"+name)
	return strings.TrimSpace(val)
}
