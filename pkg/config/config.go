// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"regexp"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

var variableNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds the upcoming configuration.
type Config struct {
	WorkingDir   string       `yaml:"workingDir"`
	FetchTags    bool         `yaml:"fetchTags"`
	TagSort      TagSort      `yaml:"tagSort"`
	OutputFormat OutputFormat `yaml:"outputFormat"`
	OutputFile   string       `yaml:"outputFile"`
	VariableName string       `yaml:"variableName"`
	ServerPort   int          `yaml:"serverPort"`
	DebounceMs   int          `yaml:"debounceMs"`
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	return Config{
		WorkingDir:   ".",
		FetchTags:    true,
		TagSort:      TagSortCreatorDate,
		OutputFormat: OutputFormatPlain,
		OutputFile:   "",
		VariableName: "nextVersion",
		ServerPort:   8080,
		DebounceMs:   500,
	}
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("workingDir", validation.NotEmptyString(c.WorkingDir)),
		validation.Name("tagSort", c.TagSort),
		validation.Name("outputFormat", c.OutputFormat),
		validation.Name("variableName", validation.HasValidationFunc(func(ctx context.Context) error {
			if !variableNameRegexp.MatchString(c.VariableName) {
				return errors.Errorf(ctx, "variableName '%s' is not a valid identifier", c.VariableName)
			}
			return nil
		})),
		validation.Name("serverPort", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.ServerPort <= 0 || c.ServerPort > 65535 {
				return errors.Errorf(ctx, "serverPort must be between 1 and 65535, got %d", c.ServerPort)
			}
			return nil
		})),
		validation.Name("debounceMs", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.DebounceMs <= 0 {
				return errors.Errorf(ctx, "debounceMs must be positive, got %d", c.DebounceMs)
			}
			return nil
		})),
	}.Validate(ctx)
}
