/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package codeblock

import (
	"regexp"
	"strings"
)

// Block is one fenced code segment. Language is "text" when the opening
// fence carried no tag.
type Block struct {
	Language string
	Code     string
}

// DefaultLanguage is the sentinel used for untagged fences.
const DefaultLanguage = "text"

// fencePattern matches ```lang\n...``` non-greedily across lines.
// Fences do not nest in the expected input; unterminated fences simply
// produce no match.
var fencePattern = regexp.MustCompile("(?s)```(\\w+)?\n(.*?)```")

// Extract returns the fenced code blocks of text in first-occurrence
// order. Content is trimmed of leading and trailing whitespace.
func Extract(text string) []Block {
	matches := fencePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(matches))
	for _, m := range matches {
		language := m[1]
		if language == "" {
			language = DefaultLanguage
		}
		blocks = append(blocks, Block{
			Language: language,
			Code:     strings.TrimSpace(m[2]),
		})
	}
	return blocks
}

// extensions maps supported language tags to file extensions. Tags outside
// this map are skipped during persistence, not defaulted.
var extensions = map[string]string{
	"python":     ".py",
	"js":         ".js",
	"javascript": ".js",
	"typescript": ".ts",
	"java":       ".java",
	"cpp":        ".cpp",
	"c":          ".c",
	"go":         ".go",
	"rust":       ".rs",
}

// ExtensionForLanguage returns the file extension for a supported language
// tag, and whether the tag is supported.
func ExtensionForLanguage(language string) (string, bool) {
	ext, ok := extensions[language]
	return ext, ok
}
