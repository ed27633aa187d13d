/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v75/github"
	"golang.org/x/oauth2"

	"github.com/issueagent/issueagent/mcp"
)

// Option configures a Gateway.
type Option func(*Gateway) error

// WithHTTPClient overrides the HTTP client used for GitHub API calls.
// When set, the token is not applied; the caller owns authentication.
func WithHTTPClient(hc *http.Client) Option {
	return func(g *Gateway) error {
		g.httpClient = hc
		return nil
	}
}

// WithBaseURL points the gateway at a different API endpoint. Used for
// GitHub Enterprise installs and for tests.
func WithBaseURL(baseURL string) Option {
	return func(g *Gateway) error {
		g.baseURL = baseURL
		return nil
	}
}

// Gateway performs GitHub operations over the REST API.
type Gateway struct {
	gh         *github.Client
	httpClient *http.Client
	baseURL    string
}

// New creates a Gateway authenticating with the given token. The token is
// passed in explicitly; the gateway never reads ambient process state.
func New(ctx context.Context, token string, opts ...Option) (*Gateway, error) {
	g := &Gateway{}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	hc := g.httpClient
	if hc == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}

	g.gh = github.NewClient(hc)
	if g.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(g.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
		g.gh.BaseURL = u
	}
	return g, nil
}

// ListIssues returns issues for a repository, optionally filtered by labels
// and state (open, closed, or all). State defaults to "all".
func (g *Gateway) ListIssues(ctx context.Context, owner, repo string, labels []string, state string) ([]mcp.Issue, error) {
	log := clog.FromContext(ctx).With("owner", owner, "repo", repo, "labels", labels, "state", state)

	if state == "" {
		state = "all"
	}
	issues, _, err := g.gh.Issues.ListByRepo(ctx, owner, repo, &github.IssueListByRepoOptions{
		State:  state,
		Labels: labels,
	})
	if err != nil {
		log.With("error", err).Error("Failed to list issues")
		return nil, fmt.Errorf("listing issues: %w", err)
	}

	out := make([]mcp.Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, issueToWire(is))
	}
	log.With("count", len(out)).Info("Listed issues")
	return out, nil
}

// GetIssue fetches a single issue by number.
func (g *Gateway) GetIssue(ctx context.Context, owner, repo string, number int) (*mcp.Issue, error) {
	log := clog.FromContext(ctx).With("owner", owner, "repo", repo, "issue", number)

	is, _, err := g.gh.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		log.With("error", err).Error("Failed to get issue")
		return nil, fmt.Errorf("getting issue #%d: %w", number, err)
	}
	wire := issueToWire(is)
	log.Info("Fetched issue")
	return &wire, nil
}

// CloseIssue closes an issue, optionally adding a comment afterwards. The
// comment is a dependent second call: if it fails after a successful close,
// the close still counts as successful.
func (g *Gateway) CloseIssue(ctx context.Context, owner, repo string, number int, comment string) (bool, error) {
	log := clog.FromContext(ctx).With("owner", owner, "repo", repo, "issue", number)

	_, _, err := g.gh.Issues.Edit(ctx, owner, repo, number, &github.IssueRequest{
		State: github.Ptr("closed"),
	})
	if err != nil {
		log.With("error", err).Error("Failed to close issue")
		return false, fmt.Errorf("closing issue #%d: %w", number, err)
	}
	log.Info("Closed issue")

	if comment != "" {
		if _, err := g.AddIssueComment(ctx, owner, repo, number, comment); err != nil {
			log.With("error", err).Warn("Close succeeded but comment failed")
		}
	}
	return true, nil
}

// AddIssueComment adds a comment to an issue.
func (g *Gateway) AddIssueComment(ctx context.Context, owner, repo string, number int, comment string) (bool, error) {
	log := clog.FromContext(ctx).With("owner", owner, "repo", repo, "issue", number)

	_, _, err := g.gh.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.Ptr(comment),
	})
	if err != nil {
		log.With("error", err).Error("Failed to add comment")
		return false, fmt.Errorf("commenting on issue #%d: %w", number, err)
	}
	log.Info("Added comment to issue")
	return true, nil
}

// CreateBranch creates a new branch from the base branch's current commit.
// The base ref is resolved first; if that lookup fails, creation is not
// attempted.
func (g *Gateway) CreateBranch(ctx context.Context, owner, repo, branch, baseBranch string) (bool, error) {
	log := clog.FromContext(ctx).With("owner", owner, "repo", repo, "branch", branch, "base", baseBranch)

	if baseBranch == "" {
		baseBranch = "main"
	}
	ref, _, err := g.gh.Git.GetRef(ctx, owner, repo, "heads/"+baseBranch)
	if err != nil {
		log.With("error", err).Error("Failed to resolve base branch")
		return false, fmt.Errorf("resolving base branch %q: %w", baseBranch, err)
	}

	_, _, err = g.gh.Git.CreateRef(ctx, owner, repo, github.CreateRef{
		Ref: "refs/heads/" + branch,
		SHA: ref.Object.GetSHA(),
	})
	if err != nil {
		log.With("error", err).Error("Failed to create branch")
		return false, fmt.Errorf("creating branch %q: %w", branch, err)
	}
	log.Info("Created branch")
	return true, nil
}

// CreateFile creates a file on a branch with the given commit message.
func (g *Gateway) CreateFile(ctx context.Context, owner, repo, path, content, branch, message string) (bool, error) {
	log := clog.FromContext(ctx).With("owner", owner, "repo", repo, "path", path, "branch", branch)

	_, _, err := g.gh.Repositories.CreateFile(ctx, owner, repo, path, &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: []byte(content),
		Branch:  github.Ptr(branch),
	})
	if err != nil {
		log.With("error", err).Error("Failed to create file")
		return false, fmt.Errorf("creating file %q: %w", path, err)
	}
	log.Info("Created file")
	return true, nil
}

// CreatePullRequest opens a pull request from head into base.
func (g *Gateway) CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*mcp.PullRequest, error) {
	log := clog.FromContext(ctx).With("owner", owner, "repo", repo, "head", head, "base", base)

	if base == "" {
		base = "main"
	}
	pr, _, err := g.gh.PullRequests.Create(ctx, owner, repo, &github.NewPullRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
		Head:  github.Ptr(head),
		Base:  github.Ptr(base),
	})
	if err != nil {
		log.With("error", err).Error("Failed to create pull request")
		return nil, fmt.Errorf("creating pull request: %w", err)
	}
	log.With("pr", pr.GetNumber()).Info("Created pull request")
	return &mcp.PullRequest{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
	}, nil
}

// issueToWire converts a GitHub API issue into the wire model.
func issueToWire(is *github.Issue) mcp.Issue {
	labels := make([]mcp.Label, 0, len(is.Labels))
	for _, l := range is.Labels {
		labels = append(labels, mcp.Label{Name: l.GetName()})
	}
	return mcp.Issue{
		Number:    is.GetNumber(),
		Title:     is.GetTitle(),
		Body:      is.GetBody(),
		State:     is.GetState(),
		Labels:    labels,
		CreatedAt: is.GetCreatedAt().Format(time.RFC3339),
		UpdatedAt: is.GetUpdatedAt().Format(time.RFC3339),
		HTMLURL:   is.GetHTMLURL(),
	}
}
