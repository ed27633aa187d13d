/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package executor

import (
	"fmt"
	"strings"
	"unicode"
)

// branchSlugLimit caps the title-derived portion of a branch name.
const branchSlugLimit = 30

// BranchName derives a deterministic branch name for an issue:
// ai-task-<number>-<slug>, where the slug is the lowercased title with
// spaces replaced by hyphens, truncated to 30 characters, and stripped of
// anything that is not a letter, digit, or hyphen.
func BranchName(number int, title string) string {
	slug := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	if runes := []rune(slug); len(runes) > branchSlugLimit {
		slug = string(runes[:branchSlugLimit])
	}

	name := fmt.Sprintf("ai-task-%d-%s", number, slug)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
