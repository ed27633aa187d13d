/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chainguard-dev/clog"

	"github.com/issueagent/issueagent/mcp"
)

// Operations is the set of GitHub operations the server dispatches onto.
// gateway.Gateway is the production implementation.
type Operations interface {
	ListIssues(ctx context.Context, owner, repo string, labels []string, state string) ([]mcp.Issue, error)
	GetIssue(ctx context.Context, owner, repo string, number int) (*mcp.Issue, error)
	CloseIssue(ctx context.Context, owner, repo string, number int, comment string) (bool, error)
	AddIssueComment(ctx context.Context, owner, repo string, number int, comment string) (bool, error)
	CreateBranch(ctx context.Context, owner, repo, branch, baseBranch string) (bool, error)
	CreateFile(ctx context.Context, owner, repo, path, content, branch, message string) (bool, error)
	CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*mcp.PullRequest, error)
}

// Server handles envelope calls for a single Operations backend.
type Server struct {
	ops Operations
}

// New creates a Server dispatching onto ops.
func New(ops Operations) *Server {
	return &Server{ops: ops}
}

// Handler returns the HTTP handler serving POST /call.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /call", s.handleCall)
	return mux
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := clog.FromContext(ctx)

	var req mcp.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.With("error", err).Error("Failed to decode call request")
		callsTotal.WithLabelValues("", statusBadRequest).Inc()
		writeResponse(ctx, w, http.StatusInternalServerError, mcp.ErrorResponse(err.Error()))
		return
	}

	resp := s.dispatch(ctx, req)

	status := statusSuccess
	if resp.Error != "" {
		status = statusError
	}
	callsTotal.WithLabelValues(req.Method, status).Inc()

	writeResponse(ctx, w, http.StatusOK, resp)
}

// dispatch routes one envelope request to its operation. Operation errors
// have already been logged with their identifying parameters by the
// gateway; here they degrade to the method's documented default result.
func (s *Server) dispatch(ctx context.Context, req mcp.Request) mcp.Response {
	switch req.Method {
	case mcp.MethodListIssues:
		var p mcp.ListIssuesParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return mcp.ErrorResponse(err.Error())
		}
		issues, err := s.ops.ListIssues(ctx, p.Owner, p.Repo, p.Labels, p.State)
		if err != nil {
			issues = nil
		}
		return mcp.ResultResponse(map[string]any{"issues": nonNil(issues)})

	case mcp.MethodGetIssue:
		var p mcp.GetIssueParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return mcp.ErrorResponse(err.Error())
		}
		issue, err := s.ops.GetIssue(ctx, p.Owner, p.Repo, p.IssueNumber)
		if err != nil {
			issue = nil
		}
		return mcp.ResultResponse(mcp.GetIssueResult{Issue: issue})

	case mcp.MethodCloseIssue:
		var p mcp.CloseIssueParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return mcp.ErrorResponse(err.Error())
		}
		ok, err := s.ops.CloseIssue(ctx, p.Owner, p.Repo, p.IssueNumber, p.Comment)
		return mcp.ResultResponse(mcp.SuccessResult{Success: ok && err == nil})

	case mcp.MethodAddIssueComment:
		var p mcp.AddIssueCommentParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return mcp.ErrorResponse(err.Error())
		}
		ok, err := s.ops.AddIssueComment(ctx, p.Owner, p.Repo, p.IssueNumber, p.Comment)
		return mcp.ResultResponse(mcp.SuccessResult{Success: ok && err == nil})

	case mcp.MethodCreateBranch:
		var p mcp.CreateBranchParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return mcp.ErrorResponse(err.Error())
		}
		ok, err := s.ops.CreateBranch(ctx, p.Owner, p.Repo, p.BranchName, p.BaseBranch)
		return mcp.ResultResponse(mcp.SuccessResult{Success: ok && err == nil})

	case mcp.MethodCreateFile:
		var p mcp.CreateFileParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return mcp.ErrorResponse(err.Error())
		}
		ok, err := s.ops.CreateFile(ctx, p.Owner, p.Repo, p.Path, p.Content, p.Branch, p.Message)
		return mcp.ResultResponse(mcp.SuccessResult{Success: ok && err == nil})

	case mcp.MethodCreatePullRequest:
		var p mcp.CreatePullRequestParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return mcp.ErrorResponse(err.Error())
		}
		pr, err := s.ops.CreatePullRequest(ctx, p.Owner, p.Repo, p.Title, p.Body, p.Head, p.Base)
		if err != nil {
			pr = nil
		}
		return mcp.ResultResponse(mcp.CreatePullRequestResult{PullRequest: pr})

	default:
		return mcp.ErrorResponse(fmt.Sprintf("unknown method: %s", req.Method))
	}
}

// nonNil keeps empty issue lists encoding as [] rather than null.
func nonNil(issues []mcp.Issue) []mcp.Issue {
	if issues == nil {
		return []mcp.Issue{}
	}
	return issues
}

func writeResponse(ctx context.Context, w http.ResponseWriter, code int, resp mcp.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		clog.FromContext(ctx).With("error", err).Error("Failed to write call response")
	}
}
