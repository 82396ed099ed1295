// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver_test

import (
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/upcoming/pkg/semver"
)

var _ = Describe("SemanticVersionNumber", func() {
	Describe("ParseSemanticVersionNumber", func() {
		Context("with valid tags", func() {
			It("parses 0.2.25", func() {
				version, err := semver.ParseSemanticVersionNumber("0.2.25")
				Expect(err).To(BeNil())
				Expect(version).To(Equal(semver.SemanticVersionNumber{Major: 0, Minor: 2, Patch: 25}))
			})

			It("parses v10.20.30", func() {
				version, err := semver.ParseSemanticVersionNumber("v10.20.30")
				Expect(err).To(BeNil())
				Expect(version).To(Equal(semver.SemanticVersionNumber{Major: 10, Minor: 20, Patch: 30}))
			})

			It("parses V1.0.0", func() {
				version, err := semver.ParseSemanticVersionNumber("V1.0.0")
				Expect(err).To(BeNil())
				Expect(version.String()).To(Equal("1.0.0"))
			})

			It("reads empty tag as 0.0.0", func() {
				version, err := semver.ParseSemanticVersionNumber("")
				Expect(err).To(BeNil())
				Expect(version).To(Equal(semver.SemanticVersionNumber{}))
			})

			It("reads blank tag as 0.0.0", func() {
				version, err := semver.ParseSemanticVersionNumber("  \t")
				Expect(err).To(BeNil())
				Expect(version.String()).To(Equal(semver.DefaultVersion))
			})
		})

		Context("with invalid tags", func() {
			DescribeTable("returns InvalidVersionFormatError",
				func(tag string) {
					_, err := semver.ParseSemanticVersionNumber(tag)
					Expect(err).To(HaveOccurred())
					var formatErr *semver.InvalidVersionFormatError
					Expect(stderrors.As(err, &formatErr)).To(BeTrue())
					Expect(formatErr.Tag).To(Equal(tag))
				},
				Entry("non-semver", "invalid"),
				Entry("missing segment", "1.2"),
				Entry("single segment", "v1"),
				Entry("extra segment", "1.2.3.4"),
				Entry("non-numeric segment", "1.x.3"),
				Entry("pre-release suffix", "1.2.3-rc.1"),
				Entry("build suffix", "1.2.3+build5"),
				Entry("leading whitespace", " 1.2.3"),
				Entry("trailing whitespace", "1.2.3 "),
				Entry("double v prefix", "vv1.2.3"),
				Entry("negative segment", "1.-2.3"),
				Entry("overflowing segment", "99999999999999999999.0.0"),
			)

			It("embeds the original tag in the message", func() {
				_, err := semver.ParseSemanticVersionNumber("vinvalid")
				Expect(err).To(MatchError("Current tag 'vinvalid' is not semantic version format (X.Y.Z)"))
			})
		})
	})

	Describe("String", func() {
		It("renders without v prefix", func() {
			version := semver.SemanticVersionNumber{Major: 1, Minor: 0, Patch: 0}
			Expect(version.String()).To(Equal("1.0.0"))
		})
	})

	Describe("Bump", func() {
		var version semver.SemanticVersionNumber

		BeforeEach(func() {
			version = semver.SemanticVersionNumber{Major: 1, Minor: 5, Patch: 99}
		})

		It("bumps major and resets minor and patch", func() {
			Expect(version.Bump(semver.BumpMajor).String()).To(Equal("2.0.0"))
		})

		It("bumps minor and resets patch", func() {
			Expect(version.Bump(semver.BumpMinor).String()).To(Equal("1.6.0"))
		})

		It("bumps patch", func() {
			Expect(version.Bump(semver.BumpPatch).String()).To(Equal("1.5.100"))
		})

		It("keeps version for none", func() {
			Expect(version.Bump(semver.BumpNone)).To(Equal(version))
		})

		It("does not modify the receiver", func() {
			_ = version.BumpMajor()
			Expect(version.String()).To(Equal("1.5.99"))
		})
	})
})
