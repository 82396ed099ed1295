// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/upcoming/mocks"
	"github.com/bborbe/upcoming/pkg/config"
	"github.com/bborbe/upcoming/pkg/factory"
)

var _ = Describe("Factory", func() {
	var (
		ctx context.Context
		cfg config.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.Defaults()
	})

	DescribeTable("CreateCommand",
		func(name string) {
			command, err := factory.CreateCommand(ctx, cfg, name)
			Expect(err).NotTo(HaveOccurred())
			Expect(command).NotTo(BeNil())
		},
		Entry("next", "next"),
		Entry("classify", "classify"),
		Entry("serve", "serve"),
		Entry("version", "version"),
	)

	It("rejects an unknown command", func() {
		command, err := factory.CreateCommand(ctx, cfg, "release")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown command: release"))
		Expect(command).To(BeNil())
	})

	It("registers the default command", func() {
		_, err := factory.CreateCommand(ctx, cfg, factory.DefaultCommand)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("CreateTagResolver", func() {
		It("uses creatordate ordering by default", func() {
			commandRunner := &mocks.CommandRunner{}
			commandRunner.RunReturns([]string{"v1.0.0"}, nil)
			cfg.FetchTags = false

			tag, err := factory.CreateTagResolver(cfg, commandRunner).Resolve(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tag).To(Equal("v1.0.0"))
			_, args := commandRunner.RunArgsForCall(0)
			Expect(args).To(ContainElement("--sort=-creatordate"))
		})

		It("uses semantic version ordering when configured", func() {
			commandRunner := &mocks.CommandRunner{}
			commandRunner.RunReturns([]string{"v1.10.0", "v1.9.0", "latest"}, nil)
			cfg.FetchTags = false
			cfg.TagSort = config.TagSortSemver

			tag, err := factory.CreateTagResolver(cfg, commandRunner).Resolve(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tag).To(Equal("v1.10.0"))
		})
	})

	It("creates a runner and a watcher", func() {
		Expect(factory.CreateRunner(cfg)).NotTo(BeNil())
		Expect(factory.CreateWatcher(cfg)).NotTo(BeNil())
		Expect(factory.CreateServer(cfg)).NotTo(BeNil())
	})
})
