// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/upcoming/pkg/config"
)

var _ = Describe("Config", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Defaults", func() {
		It("returns config with default values", func() {
			cfg := config.Defaults()
			Expect(cfg.WorkingDir).To(Equal("."))
			Expect(cfg.FetchTags).To(BeTrue())
			Expect(cfg.TagSort).To(Equal(config.TagSortCreatorDate))
			Expect(cfg.OutputFormat).To(Equal(config.OutputFormatPlain))
			Expect(cfg.OutputFile).To(BeEmpty())
			Expect(cfg.VariableName).To(Equal("nextVersion"))
			Expect(cfg.ServerPort).To(Equal(8080))
			Expect(cfg.DebounceMs).To(Equal(500))
		})

		It("is valid", func() {
			Expect(config.Defaults().Validate(ctx)).To(Succeed())
		})
	})

	Describe("Validate", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = config.Defaults()
		})

		It("fails for empty workingDir", func() {
			cfg.WorkingDir = ""
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("workingDir"))
		})

		It("fails for invalid tagSort", func() {
			cfg.TagSort = "alphabetical"
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tagSort"))
		})

		It("fails for invalid outputFormat", func() {
			cfg.OutputFormat = "xml"
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("outputFormat"))
		})

		It("fails for invalid variableName", func() {
			cfg.VariableName = "next-version"
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("variableName"))
		})

		It("fails for zero serverPort", func() {
			cfg.ServerPort = 0
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("serverPort"))
		})

		It("fails for serverPort above range", func() {
			cfg.ServerPort = 70000
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("serverPort"))
		})

		It("fails for negative debounceMs", func() {
			cfg.DebounceMs = -1
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("debounceMs"))
		})
	})

	Describe("TagSort", func() {
		It("validates known values", func() {
			Expect(config.TagSortCreatorDate.Validate(ctx)).To(Succeed())
			Expect(config.TagSortSemver.Validate(ctx)).To(Succeed())
		})

		It("fails for unknown value", func() {
			err := config.TagSort("random").Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown tag sort"))
		})

		It("returns string and pointer", func() {
			Expect(config.TagSortSemver.String()).To(Equal("semver"))
			Expect(*config.TagSortSemver.Ptr()).To(Equal(config.TagSortSemver))
		})
	})

	Describe("OutputFormat", func() {
		It("validates known values", func() {
			for _, format := range config.AvailableOutputFormats {
				Expect(format.Validate(ctx)).To(Succeed())
			}
		})

		It("fails for unknown value", func() {
			err := config.OutputFormat("yaml").Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown output format"))
		})

		It("checks membership", func() {
			Expect(config.AvailableOutputFormats.Contains(config.OutputFormatEnv)).To(BeTrue())
			Expect(config.AvailableOutputFormats.Contains("yaml")).To(BeFalse())
		})
	})

	Describe("Loader", func() {
		var (
			tmpDir     string
			configPath string
			loader     config.Loader
		)

		BeforeEach(func() {
			var err error
			tmpDir, err = os.MkdirTemp("", "config-test-*")
			Expect(err).NotTo(HaveOccurred())
			configPath = filepath.Join(tmpDir, config.FileName)
			loader = config.NewLoaderWithPath(configPath)
		})

		AfterEach(func() {
			Expect(os.RemoveAll(tmpDir)).To(Succeed())
		})

		writeConfig := func(content string) {
			Expect(os.WriteFile(configPath, []byte(content), 0600)).To(Succeed())
		}

		It("returns defaults when config file does not exist", func() {
			cfg, err := loader.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.Defaults()))
		})

		It("loads full config from file", func() {
			writeConfig(`workingDir: /src/project
fetchTags: false
tagSort: semver
outputFormat: env
outputFile: build/version.env
variableName: VERSION
serverPort: 9090
debounceMs: 1000
`)
			cfg, err := loader.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.Config{
				WorkingDir:   "/src/project",
				FetchTags:    false,
				TagSort:      config.TagSortSemver,
				OutputFormat: config.OutputFormatEnv,
				OutputFile:   "build/version.env",
				VariableName: "VERSION",
				ServerPort:   9090,
				DebounceMs:   1000,
			}))
		})

		It("merges partial config with defaults", func() {
			writeConfig("fetchTags: false\n")

			cfg, err := loader.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			expected := config.Defaults()
			expected.FetchTags = false
			Expect(cfg).To(Equal(expected))
		})

		It("returns error for invalid YAML", func() {
			writeConfig("tagSort: semver\ninvalid yaml: [unclosed\n")

			_, err := loader.Load(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("parse config file"))
		})

		It("returns error for invalid value", func() {
			writeConfig("outputFormat: xml\n")

			_, err := loader.Load(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validate config"))
		})
	})
})
