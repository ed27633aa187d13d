/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/issueagent/issueagent/mcp"
	"github.com/issueagent/issueagent/retry"
)

// ErrFailed indicates the server reported an operation as unsuccessful
// without an envelope error (success=false or a null object result).
var ErrFailed = errors.New("operation reported failure")

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetry sets the retry strategy for calls. The default performs no
// retries: every failure is terminal for that operation.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// Client talks to an MCP server. The underlying connection pool is held
// for the life of the client; Close releases it.
type Client struct {
	serverURL  string
	httpClient *http.Client
	retry      retry.Config
}

// New creates a Client for the given server URL (e.g. http://localhost:3000).
func New(serverURL string, opts ...Option) *Client {
	c := &Client{
		serverURL:  strings.TrimSuffix(serverURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		retry:      retry.None(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the client's pooled connections. Callers must close on
// every exit path; leaked connections across repeated invocations exhaust
// file descriptors.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// call performs one envelope round trip, decoding the result payload into
// result when it is non-nil.
func (c *Client) call(ctx context.Context, method string, params, result any) error {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encoding params: %w", err)
	}
	body, err := json.Marshal(mcp.Request{Method: method, Params: rawParams})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	resp, err := retry.Do(ctx, c.retry, method, isRetryable, func() (mcp.Response, error) {
		return c.roundTrip(ctx, body)
	})
	if err != nil {
		return err
	}

	if resp.Error != "" {
		return fmt.Errorf("%s: %s", method, resp.Error)
	}
	if result != nil {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, body []byte) (mcp.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+"/call", bytes.NewReader(body))
	if err != nil {
		return mcp.Response{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return mcp.Response{}, fmt.Errorf("calling server: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		return mcp.Response{}, &statusError{code: httpResp.StatusCode, body: string(msg)}
	}

	var resp mcp.Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return mcp.Response{}, fmt.Errorf("decoding response: %w", err)
	}
	return resp, nil
}

// statusError is a non-2xx transport response.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.code, e.body)
}

// isRetryable treats transport errors and 5xx responses as transient.
// Envelope-level errors (unknown method, bad params) never retry.
func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500
	}
	return true
}

// ListIssues lists issues in an owner/repo repository, optionally filtered
// by labels and state (open, closed, or all; defaults to all). Individually
// malformed issues in the response are skipped with a warning rather than
// failing the batch.
func (c *Client) ListIssues(ctx context.Context, repository string, labels []string, state string) ([]mcp.Issue, error) {
	log := clog.FromContext(ctx).With("operation", mcp.MethodListIssues, "repository", repository, "labels", labels, "state", state)

	owner, repo, err := mcp.SplitRepository(repository)
	if err != nil {
		return nil, err
	}

	var result mcp.ListIssuesResult
	if err := c.call(ctx, mcp.MethodListIssues, mcp.ListIssuesParams{
		Owner:  owner,
		Repo:   repo,
		Labels: labels,
		State:  state,
	}, &result); err != nil {
		log.With("error", err).Error("Call failed")
		return nil, err
	}

	issues := make([]mcp.Issue, 0, len(result.Issues))
	for _, raw := range result.Issues {
		var issue mcp.Issue
		if err := json.Unmarshal(raw, &issue); err != nil {
			log.With("error", err).Warn("Skipping unparseable issue")
			continue
		}
		if err := issue.Validate(); err != nil {
			log.With("error", err).Warn("Skipping malformed issue")
			continue
		}
		issues = append(issues, issue)
	}
	log.With("count", len(issues)).Info("Listed issues")
	return issues, nil
}

// GetIssue fetches one issue by number.
func (c *Client) GetIssue(ctx context.Context, repository string, number int) (*mcp.Issue, error) {
	log := clog.FromContext(ctx).With("operation", mcp.MethodGetIssue, "repository", repository, "issue", number)

	owner, repo, err := mcp.SplitRepository(repository)
	if err != nil {
		return nil, err
	}

	var result mcp.GetIssueResult
	if err := c.call(ctx, mcp.MethodGetIssue, mcp.GetIssueParams{
		Owner:       owner,
		Repo:        repo,
		IssueNumber: number,
	}, &result); err != nil {
		log.With("error", err).Error("Call failed")
		return nil, err
	}
	if result.Issue == nil {
		log.Warn("Issue not found")
		return nil, fmt.Errorf("issue #%d: %w", number, mcp.ErrNoResult)
	}
	log.Info("Fetched issue")
	return result.Issue, nil
}

// CloseIssue closes an issue with an optional comment.
func (c *Client) CloseIssue(ctx context.Context, repository string, number int, comment string) error {
	log := clog.FromContext(ctx).With("operation", mcp.MethodCloseIssue, "repository", repository, "issue", number)

	owner, repo, err := mcp.SplitRepository(repository)
	if err != nil {
		return err
	}

	var result mcp.SuccessResult
	if err := c.call(ctx, mcp.MethodCloseIssue, mcp.CloseIssueParams{
		Owner:       owner,
		Repo:        repo,
		IssueNumber: number,
		Comment:     comment,
	}, &result); err != nil {
		log.With("error", err).Error("Call failed")
		return err
	}
	if !result.Success {
		log.Error("Close reported failure")
		return fmt.Errorf("closing issue #%d: %w", number, ErrFailed)
	}
	log.Info("Closed issue")
	return nil
}

// AddIssueComment adds a comment to an issue.
func (c *Client) AddIssueComment(ctx context.Context, repository string, number int, comment string) error {
	log := clog.FromContext(ctx).With("operation", mcp.MethodAddIssueComment, "repository", repository, "issue", number)

	owner, repo, err := mcp.SplitRepository(repository)
	if err != nil {
		return err
	}

	var result mcp.SuccessResult
	if err := c.call(ctx, mcp.MethodAddIssueComment, mcp.AddIssueCommentParams{
		Owner:       owner,
		Repo:        repo,
		IssueNumber: number,
		Comment:     comment,
	}, &result); err != nil {
		log.With("error", err).Error("Call failed")
		return err
	}
	if !result.Success {
		log.Error("Comment reported failure")
		return fmt.Errorf("commenting on issue #%d: %w", number, ErrFailed)
	}
	log.Info("Added comment")
	return nil
}

// CreateBranch creates a branch from baseBranch (defaults to main on the
// server side when empty).
func (c *Client) CreateBranch(ctx context.Context, repository, branch, baseBranch string) error {
	log := clog.FromContext(ctx).With("operation", mcp.MethodCreateBranch, "repository", repository, "branch", branch, "base", baseBranch)

	owner, repo, err := mcp.SplitRepository(repository)
	if err != nil {
		return err
	}

	var result mcp.SuccessResult
	if err := c.call(ctx, mcp.MethodCreateBranch, mcp.CreateBranchParams{
		Owner:      owner,
		Repo:       repo,
		BranchName: branch,
		BaseBranch: baseBranch,
	}, &result); err != nil {
		log.With("error", err).Error("Call failed")
		return err
	}
	if !result.Success {
		log.Error("Branch creation reported failure")
		return fmt.Errorf("creating branch %q: %w", branch, ErrFailed)
	}
	log.Info("Created branch")
	return nil
}

// CreateFile creates a file on a branch with a commit message.
func (c *Client) CreateFile(ctx context.Context, repository, path, content, branch, message string) error {
	log := clog.FromContext(ctx).With("operation", mcp.MethodCreateFile, "repository", repository, "path", path, "branch", branch)

	owner, repo, err := mcp.SplitRepository(repository)
	if err != nil {
		return err
	}

	var result mcp.SuccessResult
	if err := c.call(ctx, mcp.MethodCreateFile, mcp.CreateFileParams{
		Owner:   owner,
		Repo:    repo,
		Path:    path,
		Content: content,
		Branch:  branch,
		Message: message,
	}, &result); err != nil {
		log.With("error", err).Error("Call failed")
		return err
	}
	if !result.Success {
		log.Error("File creation reported failure")
		return fmt.Errorf("creating file %q: %w", path, ErrFailed)
	}
	log.Info("Created file")
	return nil
}

// CreatePullRequest opens a pull request from head into base.
func (c *Client) CreatePullRequest(ctx context.Context, repository, title, body, head, base string) (*mcp.PullRequest, error) {
	log := clog.FromContext(ctx).With("operation", mcp.MethodCreatePullRequest, "repository", repository, "head", head, "base", base)

	owner, repo, err := mcp.SplitRepository(repository)
	if err != nil {
		return nil, err
	}

	var result mcp.CreatePullRequestResult
	if err := c.call(ctx, mcp.MethodCreatePullRequest, mcp.CreatePullRequestParams{
		Owner: owner,
		Repo:  repo,
		Title: title,
		Body:  body,
		Head:  head,
		Base:  base,
	}, &result); err != nil {
		log.With("error", err).Error("Call failed")
		return nil, err
	}
	if result.PullRequest == nil {
		log.Error("Pull request creation reported failure")
		return nil, fmt.Errorf("creating pull request: %w", mcp.ErrNoResult)
	}
	log.With("pr", result.PullRequest.Number).Info("Created pull request")
	return result.PullRequest, nil
}
