// Package config loads interpreter settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/LostInTheLogs/mal/core"
)

const (
	// EnvVar names a config file to use when none is given explicitly.
	EnvVar      = "MAL_CONFIG"
	defaultFile = ".mal.yaml"
)

type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	DebugEval   bool   `yaml:"debug_eval"`

	Equality struct {
		CrossTypeSequences bool `yaml:"cross_type_sequences"`
	} `yaml:"equality"`

	Sequences struct {
		ExtendedCount bool `yaml:"extended_count"`
	} `yaml:"sequences"`
}

func Default() *Config {
	c := &Config{
		Prompt:      "user> ",
		HistoryFile: ".mal_history",
	}
	c.Equality.CrossTypeSequences = true
	return c
}

// Parse decodes YAML over the defaults. Unknown keys are an error.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(bytes.NewReader(b))
}

// Load picks the config file: path if set, then $MAL_CONFIG, then
// ~/.mal.yaml when it exists. With none of those the defaults are used.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if env := os.Getenv(EnvVar); env != "" {
		return LoadFile(env)
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, defaultFile)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return Default(), nil
}

func (c *Config) CoreOptions() core.Options {
	return core.Options{
		CrossTypeEquality: c.Equality.CrossTypeSequences,
		ExtendedCount:     c.Sequences.ExtendedCount,
	}
}

// HistoryPath resolves a relative history file against the home directory.
// It returns "" when history is disabled or home is unknown.
func (c *Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.HistoryFile)
}
