/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcp

import "encoding/json"

// ListIssuesParams are the params for github.list_issues.
// State filters to open, closed, or all issues; it defaults to "all".
type ListIssuesParams struct {
	Owner  string   `json:"owner"`
	Repo   string   `json:"repo"`
	Labels []string `json:"labels,omitempty"`
	State  string   `json:"state,omitempty"`
}

// ListIssuesResult is the result of github.list_issues.
//
// Issues are kept raw so consumers can skip individually malformed entries
// instead of failing the whole batch.
type ListIssuesResult struct {
	Issues []json.RawMessage `json:"issues"`
}

// GetIssueParams are the params for github.get_issue.
type GetIssueParams struct {
	Owner       string `json:"owner"`
	Repo        string `json:"repo"`
	IssueNumber int    `json:"issue_number"`
}

// GetIssueResult is the result of github.get_issue. Issue is null when the
// issue could not be fetched.
type GetIssueResult struct {
	Issue *Issue `json:"issue"`
}

// CloseIssueParams are the params for github.close_issue. Comment, when
// non-empty, is added as a dependent second call after a successful close;
// a comment failure does not roll back the close.
type CloseIssueParams struct {
	Owner       string `json:"owner"`
	Repo        string `json:"repo"`
	IssueNumber int    `json:"issue_number"`
	Comment     string `json:"comment,omitempty"`
}

// AddIssueCommentParams are the params for github.add_issue_comment.
type AddIssueCommentParams struct {
	Owner       string `json:"owner"`
	Repo        string `json:"repo"`
	IssueNumber int    `json:"issue_number"`
	Comment     string `json:"comment"`
}

// CreatePullRequestParams are the params for github.create_pull_request.
type CreatePullRequestParams struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Head  string `json:"head"`
	Base  string `json:"base,omitempty"`
}

// CreatePullRequestResult is the result of github.create_pull_request.
// PullRequest is null when creation failed.
type CreatePullRequestResult struct {
	PullRequest *PullRequest `json:"pull_request"`
}

// CreateBranchParams are the params for github.create_branch. BaseBranch
// defaults to "main".
type CreateBranchParams struct {
	Owner      string `json:"owner"`
	Repo       string `json:"repo"`
	BranchName string `json:"branch_name"`
	BaseBranch string `json:"base_branch,omitempty"`
}

// CreateFileParams are the params for github.create_file.
type CreateFileParams struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Path    string `json:"path"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	Message string `json:"message"`
}

// SuccessResult is the shared result shape of the boolean operations
// (close_issue, add_issue_comment, create_branch, create_file).
type SuccessResult struct {
	Success bool `json:"success"`
}
