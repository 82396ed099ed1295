// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver_test

import (
	stderrors "errors"
	"math"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/upcoming/pkg/semver"
)

// permutations returns every ordering of commits.
func permutations(commits []string) [][]string {
	if len(commits) <= 1 {
		return [][]string{append([]string{}, commits...)}
	}
	var result [][]string
	for i := range commits {
		rest := make([]string, 0, len(commits)-1)
		rest = append(rest, commits[:i]...)
		rest = append(rest, commits[i+1:]...)
		for _, p := range permutations(rest) {
			result = append(result, append([]string{commits[i]}, p...))
		}
	}
	return result
}

var _ = Describe("Compute", func() {
	DescribeTable("derives the next version",
		func(tag string, commits []string, expected string) {
			result, err := semver.Compute(tag, commits)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(expected))
		},
		Entry("no commits", "1.2.3", []string{}, "1.2.3"),
		Entry("nil commits", "1.2.3", nil, "1.2.3"),
		Entry("fix", "1.2.3", []string{"fix: correct typo"}, "1.2.4"),
		Entry("feat", "1.2.3", []string{"feat: add new feature"}, "1.3.0"),
		Entry("breaking change text", "1.2.3", []string{"feat: refactor api", "BREAKING CHANGE: api changed"}, "2.0.0"),
		Entry("bang convention", "1.2.3", []string{"feat!: change api behavior"}, "2.0.0"),
		Entry("v prefix", "v1.2.3", []string{"fix: bug fix"}, "1.2.4"),
		Entry("only chores", "1.2.3", []string{"chore: a", "docs: b"}, "1.2.3"),
		Entry("empty tag", "", []string{"fix: first"}, "0.0.1"),
		Entry("empty tag with feat", "", []string{"feat: first"}, "0.1.0"),
		Entry("blank tag without commits", " ", []string{}, "0.0.0"),
		Entry("fix and feat", "0.9.9", []string{"fix: a", "feat: b", "fix: c"}, "0.10.0"),
		Entry("major with many lower commits", "3.4.5", []string{"fix: a", "feat: b", "chore: c", "fix(x)!: d", "feat(y): e"}, "4.0.0"),
	)

	It("keeps the baseline when nothing bumps", func() {
		for _, tag := range []string{"0.0.0", "1.2.3", "10.20.30"} {
			result, err := semver.Compute(tag, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(tag))
		}
	})

	It("does not depend on commit order", func() {
		commits := []string{"fix: a", "chore: b", "feat: c", "docs: d"}
		for _, p := range permutations(commits) {
			result, err := semver.Compute("1.2.3", p)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal("1.3.0"))
		}
	})

	It("fails for invalid baseline with the original tag text", func() {
		_, err := semver.Compute("invalid", []string{"feat: x"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(Equal("Current tag 'invalid' is not semantic version format (X.Y.Z)"))
		var formatErr *semver.InvalidVersionFormatError
		Expect(stderrors.As(err, &formatErr)).To(BeTrue())
	})
})

var _ = Describe("Calculate", func() {
	It("returns classification of every commit", func() {
		calculation, err := semver.Calculate("v1.2.3", []string{"fix: a", "chore: b", "feat: c"})
		Expect(err).NotTo(HaveOccurred())
		Expect(calculation.BaselineTag).To(Equal("v1.2.3"))
		Expect(calculation.BaselineVersion).To(Equal("1.2.3"))
		Expect(calculation.Bump).To(Equal(semver.BumpMinor))
		Expect(calculation.NextVersion).To(Equal("1.3.0"))
		Expect(calculation.Commits).To(Equal([]semver.ClassifiedCommit{
			{Subject: "fix: a", Bump: semver.BumpPatch},
			{Subject: "chore: b", Bump: semver.BumpNone},
			{Subject: "feat: c", Bump: semver.BumpMinor},
		}))
	})

	It("returns empty commits for none", func() {
		calculation, err := semver.Calculate("", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(calculation.Commits).To(BeEmpty())
		Expect(calculation.BaselineVersion).To(Equal("0.0.0"))
		Expect(calculation.NextVersion).To(Equal("0.0.0"))
	})

	DescribeTable("fails if the bumped component would overflow",
		func(baseline string, commit string) {
			_, err := semver.Calculate(baseline, []string{commit})
			Expect(err).To(HaveOccurred())
			var overflowErr *semver.VersionOverflowError
			Expect(stderrors.As(err, &overflowErr)).To(BeTrue())
		},
		Entry("major", strconv.Itoa(math.MaxInt)+".0.0", "feat!: x"),
		Entry("minor", "1."+strconv.Itoa(math.MaxInt)+".0", "feat: x"),
		Entry("patch", "1.2."+strconv.Itoa(math.MaxInt), "fix: x"),
	)

	It("keeps a maximal component that is reset by a higher bump", func() {
		calculation, err := semver.Calculate("1.2."+strconv.Itoa(math.MaxInt), []string{"feat: x"})
		Expect(err).NotTo(HaveOccurred())
		Expect(calculation.NextVersion).To(Equal("1.3.0"))
	})
})
