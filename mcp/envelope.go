/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcp

import "encoding/json"

// Method names recognized by the server. Anything else fails with an
// "unknown method" error carrying the literal method name.
const (
	MethodListIssues        = "github.list_issues"
	MethodGetIssue          = "github.get_issue"
	MethodCloseIssue        = "github.close_issue"
	MethodAddIssueComment   = "github.add_issue_comment"
	MethodCreatePullRequest = "github.create_pull_request"
	MethodCreateBranch      = "github.create_branch"
	MethodCreateFile        = "github.create_file"
)

// Methods lists every recognized method name.
var Methods = []string{
	MethodListIssues,
	MethodGetIssue,
	MethodCloseIssue,
	MethodAddIssueComment,
	MethodCreatePullRequest,
	MethodCreateBranch,
	MethodCreateFile,
}

// Request is the envelope for one remote call.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// Response is the envelope for one remote call's outcome. Result and Error
// are mutually exclusive: exactly one is populated.
type Response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ErrorResponse builds a Response carrying only an error string.
func ErrorResponse(msg string) Response {
	return Response{Error: msg}
}

// ResultResponse builds a Response carrying only a result payload.
// Marshaling failures are reported as an error response instead, so the
// envelope invariant holds on every path.
func ResultResponse(result any) Response {
	raw, err := json.Marshal(result)
	if err != nil {
		return ErrorResponse("encoding result: " + err.Error())
	}
	return Response{Result: raw}
}
