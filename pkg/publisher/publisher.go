// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bborbe/errors"

	"github.com/bborbe/upcoming/pkg/config"
	"github.com/bborbe/upcoming/pkg/semver"
)

// Publisher makes the computed version available to the build.
//
//counterfeiter:generate -o ../../mocks/publisher.go --fake-name Publisher . Publisher
type Publisher interface {
	Publish(ctx context.Context, calculation semver.Calculation) error
}

// publisher implements Publisher.
type publisher struct {
	format       config.OutputFormat
	variableName string
	outputFile   string
	writer       io.Writer
}

// NewPublisher creates a Publisher writing to outputFile, or to stdout if outputFile is empty.
func NewPublisher(
	format config.OutputFormat,
	variableName string,
	outputFile string,
) Publisher {
	return &publisher{
		format:       format,
		variableName: variableName,
		outputFile:   outputFile,
		writer:       os.Stdout,
	}
}

// NewWriterPublisher creates a Publisher writing to w.
func NewWriterPublisher(
	format config.OutputFormat,
	variableName string,
	w io.Writer,
) Publisher {
	return &publisher{
		format:       format,
		variableName: variableName,
		writer:       w,
	}
}

// Publish renders the calculation and writes it to the target.
// A file in env format keeps its other lines, plain and json replace the file.
func (p *publisher) Publish(ctx context.Context, calculation semver.Calculation) error {
	content, err := p.render(ctx, calculation)
	if err != nil {
		return errors.Wrap(ctx, err, "render output")
	}

	if p.outputFile == "" {
		if _, err := p.writer.Write(content); err != nil {
			return errors.Wrap(ctx, err, "write output")
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.outputFile), 0750); err != nil {
		return errors.Wrap(ctx, err, "create output directory")
	}
	if p.format == config.OutputFormatEnv {
		existing, err := os.ReadFile(p.outputFile)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(ctx, err, "read output file %s", p.outputFile)
		}
		content = mergeEnv(existing, p.variableName, content)
	}
	if err := os.WriteFile(p.outputFile, content, 0600); err != nil {
		return errors.Wrapf(ctx, err, "write output file %s", p.outputFile)
	}
	return nil
}

func (p *publisher) render(ctx context.Context, calculation semver.Calculation) ([]byte, error) {
	switch p.format {
	case config.OutputFormatPlain:
		return []byte(calculation.NextVersion + "\n"), nil
	case config.OutputFormatEnv:
		return []byte(fmt.Sprintf("%s=%s\n", p.variableName, calculation.NextVersion)), nil
	case config.OutputFormatJSON:
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(calculation); err != nil {
			return nil, errors.Wrap(ctx, err, "encode json")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Errorf(ctx, "unknown output format '%s'", p.format)
	}
}

// mergeEnv keeps every line of existing except earlier assignments of name and appends line.
func mergeEnv(existing []byte, name string, line []byte) []byte {
	var buf bytes.Buffer
	for _, l := range strings.SplitAfter(string(existing), "\n") {
		if l == "" || strings.HasPrefix(l, name+"=") {
			continue
		}
		buf.WriteString(l)
		if !strings.HasSuffix(l, "\n") {
			buf.WriteString("\n")
		}
	}
	buf.Write(line)
	return buf.Bytes()
}
