/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package triage

import (
	"testing"

	"github.com/issueagent/issueagent/mcp"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		name  string
		issue mcp.Issue
		want  Action
	}{{
		name:  "implementation request",
		issue: mcp.Issue{Number: 123, Title: "Implement sentiment analysis API", Body: "We need an endpoint."},
		want:  ActionImplement,
	}, {
		name:  "invalid test issue",
		issue: mcp.Issue{Number: 124, Title: "Nonsense", Body: "This is an invalid test issue that should be closed."},
		want:  ActionCloseInvalid,
	}, {
		name:  "completed work",
		issue: mcp.Issue{Number: 125, Title: "Login flow", Body: "Already resolved in the last release."},
		want:  ActionCloseCompleted,
	}, {
		name:  "no keywords falls through to comment",
		issue: mcp.Issue{Number: 126, Title: "Question about roadmap", Body: "When is v2 shipping?"},
		want:  ActionComment,
	}, {
		name:  "matching is case insensitive",
		issue: mcp.Issue{Number: 127, Title: "IMPLEMENT THE PARSER", Body: ""},
		want:  ActionImplement,
	}, {
		name:  "keyword in body alone is enough",
		issue: mcp.Issue{Number: 128, Title: "Parser", Body: "please fix the crash"},
		want:  ActionImplement,
	}, {
		name:  "code change outranks invalid",
		issue: mcp.Issue{Number: 129, Title: "Implement retries", Body: "The current behavior is wrong and confusing."},
		want:  ActionImplement,
	}, {
		name:  "invalid outranks completed",
		issue: mcp.Issue{Number: 130, Title: "Duplicate", Body: "Duplicate of an issue that is done."},
		want:  ActionCloseInvalid,
	}, {
		name:  "multi-word keyword",
		issue: mcp.Issue{Number: 131, Title: "Hmm", Body: "The requirements are not clear to me."},
		want:  ActionCloseInvalid,
	}, {
		name:  "empty issue",
		issue: mcp.Issue{Number: 132},
		want:  ActionComment,
	}} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.issue); got != tc.want {
				t.Errorf("Classify(#%d) = %v, want %v", tc.issue.Number, got, tc.want)
			}
		})
	}
}

// Classify must return exactly one action for any input, and agree with
// the exported predicates under the documented precedence.
func TestClassifyAgreesWithPredicates(t *testing.T) {
	issues := []mcp.Issue{
		{Title: "Implement a thing", Body: "wrong and done"},
		{Title: "spam", Body: "finished"},
		{Title: "resolved", Body: ""},
		{Title: "hello", Body: "world"},
	}
	for _, issue := range issues {
		got := Classify(issue)
		var want Action
		switch {
		case RequiresCodeChange(issue):
			want = ActionImplement
		case IsInvalid(issue):
			want = ActionCloseInvalid
		case IsCompleted(issue):
			want = ActionCloseCompleted
		default:
			want = ActionComment
		}
		if got != want {
			t.Errorf("Classify(%q) = %v, want %v", issue.Title, got, want)
		}
	}
}

func TestActionString(t *testing.T) {
	for _, tc := range []struct {
		action Action
		want   string
	}{
		{ActionImplement, "implement"},
		{ActionCloseInvalid, "close-invalid"},
		{ActionCloseCompleted, "close-completed"},
		{ActionComment, "comment"},
		{Action(99), "unknown"},
	} {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.action, got, tc.want)
		}
	}
}
