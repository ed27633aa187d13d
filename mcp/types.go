/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcp

import (
	"errors"
	"fmt"
	"strings"
)

// Label is a name tag attached to an issue, used for filtering.
type Label struct {
	Name string `json:"name"`
}

// Issue is the wire model of a GitHub issue. Issues are created externally
// and fetched read-only; the only mutations this system performs on them go
// through the close/comment operations, never local field edits.
type Issue struct {
	Number    int     `json:"number"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	State     string  `json:"state"`
	Labels    []Label `json:"labels"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	HTMLURL   string  `json:"html_url"`
}

// Validate reports whether the issue payload is structurally usable.
// Malformed issues from upstream are skipped with a warning rather than
// aborting the batch.
func (i *Issue) Validate() error {
	if i.Number <= 0 {
		return fmt.Errorf("issue number must be positive, got %d", i.Number)
	}
	if i.State != "open" && i.State != "closed" {
		return fmt.Errorf("issue #%d has unknown state %q", i.Number, i.State)
	}
	return nil
}

// HasLabel checks if the issue carries a label with the given name.
func (i *Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// PullRequest is the wire model of a created pull request. Only the fields
// the pipeline consumes are carried.
type PullRequest struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}

// SplitRepository splits an "owner/repo" identifier into its parts.
func SplitRepository(repository string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("repository must be in owner/repo form, got %q", repository)
	}
	return owner, repo, nil
}

// ErrNoResult indicates the server responded without the expected result
// payload for an object-returning operation.
var ErrNoResult = errors.New("no result returned")
