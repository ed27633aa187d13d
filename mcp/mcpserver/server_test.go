/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/issueagent/issueagent/mcp"
)

// fakeOps is a scriptable Operations backend.
type fakeOps struct {
	issues    []mcp.Issue
	issue     *mcp.Issue
	pr        *mcp.PullRequest
	boolOK    bool
	err       error
	lastState string
}

func (f *fakeOps) ListIssues(_ context.Context, owner, repo string, labels []string, state string) ([]mcp.Issue, error) {
	f.lastState = state
	return f.issues, f.err
}

func (f *fakeOps) GetIssue(context.Context, string, string, int) (*mcp.Issue, error) {
	return f.issue, f.err
}

func (f *fakeOps) CloseIssue(context.Context, string, string, int, string) (bool, error) {
	return f.boolOK, f.err
}

func (f *fakeOps) AddIssueComment(context.Context, string, string, int, string) (bool, error) {
	return f.boolOK, f.err
}

func (f *fakeOps) CreateBranch(context.Context, string, string, string, string) (bool, error) {
	return f.boolOK, f.err
}

func (f *fakeOps) CreateFile(context.Context, string, string, string, string, string, string) (bool, error) {
	return f.boolOK, f.err
}

func (f *fakeOps) CreatePullRequest(context.Context, string, string, string, string, string, string) (*mcp.PullRequest, error) {
	return f.pr, f.err
}

func call(t *testing.T, ops Operations, method string, params any) (mcp.Response, int) {
	t.Helper()

	raw, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshaling params: %v", err)
	}
	body, err := json.Marshal(mcp.Request{Method: method, Params: raw})
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/call", strings.NewReader(string(body)))
	New(ops).Handler().ServeHTTP(rec, req)

	var resp mcp.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, rec.Code
}

func TestUnknownMethod(t *testing.T) {
	resp, code := call(t, &fakeOps{}, "github.delete_repo", map[string]any{})

	if code != http.StatusOK {
		t.Errorf("status = %d, want %d", code, http.StatusOK)
	}
	if want := "unknown method: github.delete_repo"; resp.Error != want {
		t.Errorf("error = %q, want %q", resp.Error, want)
	}
	if resp.Result != nil {
		t.Errorf("result = %s, want empty alongside error", resp.Result)
	}
}

func TestMalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/call", strings.NewReader("{not json"))
	New(&fakeOps{}).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	var resp mcp.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error == "" {
		t.Error("error is empty, want decode failure message")
	}
}

func TestListIssues(t *testing.T) {
	ops := &fakeOps{issues: []mcp.Issue{{Number: 1, Title: "a", State: "open"}}}
	resp, _ := call(t, ops, mcp.MethodListIssues, mcp.ListIssuesParams{
		Owner: "octo", Repo: "widgets", Labels: []string{"ai-task"}, State: "all",
	})

	if resp.Error != "" {
		t.Fatalf("error = %q, want none", resp.Error)
	}
	var result mcp.ListIssuesResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(result.Issues))
	}
	if ops.lastState != "all" {
		t.Errorf("state passed through = %q, want %q", ops.lastState, "all")
	}
}

func TestListIssuesFailureDegradesToEmptyList(t *testing.T) {
	ops := &fakeOps{err: errors.New("connection refused")}
	resp, code := call(t, ops, mcp.MethodListIssues, mcp.ListIssuesParams{Owner: "octo", Repo: "widgets"})

	if code != http.StatusOK {
		t.Errorf("status = %d, want %d", code, http.StatusOK)
	}
	if resp.Error != "" {
		t.Errorf("error = %q, want soft failure with empty result", resp.Error)
	}
	if want := `{"issues":[]}`; strings.TrimSpace(string(resp.Result)) != want {
		t.Errorf("result = %s, want %s", resp.Result, want)
	}
}

func TestGetIssueFailureDegradesToNull(t *testing.T) {
	ops := &fakeOps{err: errors.New("timeout")}
	resp, _ := call(t, ops, mcp.MethodGetIssue, mcp.GetIssueParams{Owner: "octo", Repo: "widgets", IssueNumber: 3})

	var result mcp.GetIssueResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if result.Issue != nil {
		t.Errorf("issue = %+v, want null", result.Issue)
	}
}

func TestBooleanOperations(t *testing.T) {
	tests := []struct {
		name   string
		method string
		params any
		ops    *fakeOps
		want   bool
	}{
		{"close success", mcp.MethodCloseIssue, mcp.CloseIssueParams{Owner: "o", Repo: "r", IssueNumber: 1}, &fakeOps{boolOK: true}, true},
		{"close failure", mcp.MethodCloseIssue, mcp.CloseIssueParams{Owner: "o", Repo: "r", IssueNumber: 1}, &fakeOps{err: errors.New("boom")}, false},
		{"comment success", mcp.MethodAddIssueComment, mcp.AddIssueCommentParams{Owner: "o", Repo: "r", IssueNumber: 1, Comment: "hi"}, &fakeOps{boolOK: true}, true},
		{"branch failure", mcp.MethodCreateBranch, mcp.CreateBranchParams{Owner: "o", Repo: "r", BranchName: "b"}, &fakeOps{err: errors.New("boom")}, false},
		{"file success", mcp.MethodCreateFile, mcp.CreateFileParams{Owner: "o", Repo: "r", Path: "p", Content: "c", Branch: "b", Message: "m"}, &fakeOps{boolOK: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := call(t, tt.ops, tt.method, tt.params)

			if resp.Error != "" {
				t.Fatalf("error = %q, want none", resp.Error)
			}
			var result mcp.SuccessResult
			if err := json.Unmarshal(resp.Result, &result); err != nil {
				t.Fatalf("decoding result: %v", err)
			}
			if result.Success != tt.want {
				t.Errorf("success = %v, want %v", result.Success, tt.want)
			}
		})
	}
}

func TestCreatePullRequestFailureDegradesToNull(t *testing.T) {
	ops := &fakeOps{err: errors.New("422 validation failed")}
	resp, _ := call(t, ops, mcp.MethodCreatePullRequest, mcp.CreatePullRequestParams{
		Owner: "o", Repo: "r", Title: "t", Body: "b", Head: "h", Base: "main",
	})

	var result mcp.CreatePullRequestResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if result.PullRequest != nil {
		t.Errorf("pull_request = %+v, want null", result.PullRequest)
	}
}

func TestResultAndErrorAreMutuallyExclusive(t *testing.T) {
	for _, method := range mcp.Methods {
		resp, _ := call(t, &fakeOps{}, method, map[string]any{"owner": "o", "repo": "r"})
		if resp.Error != "" && resp.Result != nil {
			t.Errorf("%s: response has both result and error", method)
		}
		if resp.Error == "" && resp.Result == nil {
			t.Errorf("%s: response has neither result nor error", method)
		}
	}
}
