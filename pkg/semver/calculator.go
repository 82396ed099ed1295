// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

// ClassifiedCommit is a commit subject with its bump level.
type ClassifiedCommit struct {
	Subject string    `json:"subject"`
	Bump    BumpLevel `json:"bump"`
}

// Calculation is the outcome of deriving the next version.
type Calculation struct {
	BaselineTag     string             `json:"baselineTag"`
	BaselineVersion string             `json:"baselineVersion"`
	Commits         []ClassifiedCommit `json:"commits"`
	Bump            BumpLevel          `json:"bump"`
	NextVersion     string             `json:"nextVersion"`
}

// Compute returns the next version for the given baseline tag and commit subjects.
func Compute(baselineTag string, commits []string) (string, error) {
	calculation, err := Calculate(baselineTag, commits)
	if err != nil {
		return "", err
	}
	return calculation.NextVersion, nil
}

// Calculate derives the next version and keeps the classification of every commit.
// Errors are *InvalidVersionFormatError for a bad baseline and *VersionOverflowError
// if the bump would leave the int range.
func Calculate(baselineTag string, commits []string) (Calculation, error) {
	baseline, err := ParseSemanticVersionNumber(baselineTag)
	if err != nil {
		return Calculation{}, err
	}

	classified := make([]ClassifiedCommit, 0, len(commits))
	for _, commit := range commits {
		classified = append(classified, ClassifiedCommit{
			Subject: commit,
			Bump:    Classify(commit),
		})
	}
	bump := AggregateBump(commits)
	if !baseline.CanBump(bump) {
		return Calculation{}, &VersionOverflowError{Version: baseline.String(), Bump: bump}
	}

	return Calculation{
		BaselineTag:     baselineTag,
		BaselineVersion: baseline.String(),
		Commits:         classified,
		Bump:            bump,
		NextVersion:     baseline.Bump(bump).String(),
	}, nil
}
