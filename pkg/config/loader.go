// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"

	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file in the current directory.
const FileName = ".upcoming.yaml"

// Loader loads configuration from a file.
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// fileLoader implements Loader by reading from a file.
type fileLoader struct {
	configPath string
}

// NewLoader creates a Loader that reads from .upcoming.yaml in the current directory.
func NewLoader() Loader {
	return NewLoaderWithPath(FileName)
}

// NewLoaderWithPath creates a Loader that reads from configPath.
func NewLoaderWithPath(configPath string) Loader {
	return &fileLoader{
		configPath: configPath,
	}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	WorkingDir   *string       `yaml:"workingDir"`
	FetchTags    *bool         `yaml:"fetchTags"`
	TagSort      *TagSort      `yaml:"tagSort"`
	OutputFormat *OutputFormat `yaml:"outputFormat"`
	OutputFile   *string       `yaml:"outputFile"`
	VariableName *string       `yaml:"variableName"`
	ServerPort   *int          `yaml:"serverPort"`
	DebounceMs   *int          `yaml:"debounceMs"`
}

// Load reads the config file, merges with defaults, validates, and returns the config.
func (l *fileLoader) Load(ctx context.Context) (Config, error) {
	cfg := Defaults()

	// #nosec G304 -- configPath is fixed by the caller, not request input
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(ctx, err, "read config file")
	}

	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return Config{}, errors.Wrap(ctx, err, "parse config file")
	}

	partial.mergeInto(&cfg)

	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}

	return cfg, nil
}

func (p partialConfig) mergeInto(cfg *Config) {
	if p.WorkingDir != nil {
		cfg.WorkingDir = *p.WorkingDir
	}
	if p.FetchTags != nil {
		cfg.FetchTags = *p.FetchTags
	}
	if p.TagSort != nil {
		cfg.TagSort = *p.TagSort
	}
	if p.OutputFormat != nil {
		cfg.OutputFormat = *p.OutputFormat
	}
	if p.OutputFile != nil {
		cfg.OutputFile = *p.OutputFile
	}
	if p.VariableName != nil {
		cfg.VariableName = *p.VariableName
	}
	if p.ServerPort != nil {
		cfg.ServerPort = *p.ServerPort
	}
	if p.DebounceMs != nil {
		cfg.DebounceMs = *p.DebounceMs
	}
}
