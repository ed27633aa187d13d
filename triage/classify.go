/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package triage

import (
	"strings"

	"github.com/issueagent/issueagent/mcp"
)

// Action is the disposition chosen for an issue.
type Action int

const (
	// ActionComment posts the analysis as a comment and leaves the issue open.
	ActionComment Action = iota
	// ActionImplement creates a branch, commits generated code, and opens a
	// pull request.
	ActionImplement
	// ActionCloseInvalid closes the issue as invalid or unclear.
	ActionCloseInvalid
	// ActionCloseCompleted closes the issue as already done.
	ActionCloseCompleted
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case ActionImplement:
		return "implement"
	case ActionCloseInvalid:
		return "close-invalid"
	case ActionCloseCompleted:
		return "close-completed"
	case ActionComment:
		return "comment"
	default:
		return "unknown"
	}
}

var codeChangeKeywords = []string{
	"implement", "create", "add", "fix", "update", "modify", "change",
	"function", "class", "method", "api", "endpoint", "file", "code",
	"script", "module", "library", "package", "component",
}

var invalidKeywords = []string{
	"invalid", "unclear", "not clear", "confusing", "wrong", "error",
	"duplicate", "spam", "test", "example", "sample",
}

var completedKeywords = []string{
	"done", "completed", "finished", "resolved", "fixed", "closed",
	"implemented", "added", "created",
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func issueText(issue mcp.Issue) string {
	return strings.ToLower(issue.Title + " " + issue.Body)
}

// RequiresCodeChange reports whether the issue asks for an implementation.
func RequiresCodeChange(issue mcp.Issue) bool {
	return containsAny(issueText(issue), codeChangeKeywords)
}

// IsInvalid reports whether the issue reads as invalid, unclear, or noise.
func IsInvalid(issue mcp.Issue) bool {
	return containsAny(issueText(issue), invalidKeywords)
}

// IsCompleted reports whether the issue reads as already finished.
func IsCompleted(issue mcp.Issue) bool {
	return containsAny(issueText(issue), completedKeywords)
}

// rules is walked in order; the first matching entry wins. Code change
// outranks invalid, which outranks completed.
var rules = []struct {
	match  func(mcp.Issue) bool
	action Action
}{
	{RequiresCodeChange, ActionImplement},
	{IsInvalid, ActionCloseInvalid},
	{IsCompleted, ActionCloseCompleted},
}

// Classify maps an issue to exactly one Action. Issues matching no rule
// fall through to ActionComment.
func Classify(issue mcp.Issue) Action {
	for _, r := range rules {
		if r.match(issue) {
			return r.action
		}
	}
	return ActionComment
}
