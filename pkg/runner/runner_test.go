// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner_test

import (
	"context"

	"github.com/bborbe/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/upcoming/mocks"
	"github.com/bborbe/upcoming/pkg/runner"
	"github.com/bborbe/upcoming/pkg/semver"
)

var _ = Describe("Runner", func() {
	var (
		ctx           context.Context
		mockDetector  *mocks.Detector
		mockPublisher *mocks.Publisher
		r             runner.Runner
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDetector = &mocks.Detector{}
		mockPublisher = &mocks.Publisher{}
		r = runner.NewRunner(mockDetector, mockPublisher)
	})

	It("publishes the detected version", func() {
		calculation := semver.Calculation{NextVersion: "1.3.0"}
		mockDetector.DetectReturns(calculation, nil)

		Expect(r.Run(ctx)).To(Succeed())
		Expect(mockPublisher.PublishCallCount()).To(Equal(1))
		_, published := mockPublisher.PublishArgsForCall(0)
		Expect(published).To(Equal(calculation))
	})

	It("publishes nothing if detection fails", func() {
		mockDetector.DetectReturns(semver.Calculation{}, errors.New(ctx, "banana"))

		err := r.Run(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("banana"))
		Expect(mockPublisher.PublishCallCount()).To(Equal(0))
	})

	It("fails if publishing fails", func() {
		mockDetector.DetectReturns(semver.Calculation{NextVersion: "1.0.0"}, nil)
		mockPublisher.PublishReturns(errors.New(ctx, "disk full"))

		err := r.Run(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("publish next version"))
	})
})
