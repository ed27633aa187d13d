/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package executor

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/chainguard-dev/clog"

	"github.com/issueagent/issueagent/codeblock"
	"github.com/issueagent/issueagent/mcp"
	"github.com/issueagent/issueagent/triage"
)

// OutputDir is the in-repository directory implementation files are
// committed under.
const OutputDir = "ai_task_implementations"

// DefaultBaseBranch is the branch new work branches fork from and pull
// requests merge into.
const DefaultBaseBranch = "main"

// analysisCommentLimit caps the analysis excerpt posted as an issue comment.
const analysisCommentLimit = 500

// GitHubOps is the subset of repository operations the executor needs.
// *mcpclient.Client satisfies it.
type GitHubOps interface {
	CloseIssue(ctx context.Context, repository string, number int, comment string) error
	AddIssueComment(ctx context.Context, repository string, number int, comment string) error
	CreateBranch(ctx context.Context, repository, branch, baseBranch string) error
	CreateFile(ctx context.Context, repository, path, content, branch, message string) error
	CreatePullRequest(ctx context.Context, repository, title, body, head, base string) (*mcp.PullRequest, error)
}

// CleanupFunc deletes a work branch left behind by a failed implement
// flow. It is compensation, not rollback: committed files on the branch
// go away with it.
type CleanupFunc func(ctx context.Context, repository, branch string) error

// Option configures an Executor.
type Option func(*Executor)

// WithBaseBranch overrides the base branch (default main).
func WithBaseBranch(branch string) Option {
	return func(e *Executor) {
		e.baseBranch = branch
	}
}

// WithBranchCleanup installs a compensation hook invoked when the
// implement flow aborts after its branch was created. Without it,
// orphaned branches are left in place and only logged.
func WithBranchCleanup(fn CleanupFunc) Option {
	return func(e *Executor) {
		e.cleanupBranch = fn
	}
}

// Executor acts on classified issues through a GitHubOps implementation.
type Executor struct {
	ops           GitHubOps
	baseBranch    string
	cleanupBranch CleanupFunc
}

// New creates an Executor.
func New(ops GitHubOps, opts ...Option) *Executor {
	e := &Executor{
		ops:        ops,
		baseBranch: DefaultBaseBranch,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute classifies each issue and performs its action, returning a
// human-readable summary of everything done. Failures are reported per
// issue and never abort the batch.
func (e *Executor) Execute(ctx context.Context, repository string, issues []mcp.Issue, analysis string) []string {
	summary := []string{
		strings.Repeat("=", 50),
		"ACTIONS TAKEN ON ISSUES",
		strings.Repeat("=", 50),
	}

	for _, issue := range issues {
		summary = append(summary, fmt.Sprintf("\nProcessing Issue #%d: %s", issue.Number, issue.Title))
		summary = append(summary, e.executeOne(ctx, repository, issue, analysis)...)
	}
	return summary
}

func (e *Executor) executeOne(ctx context.Context, repository string, issue mcp.Issue, analysis string) []string {
	log := clog.FromContext(ctx).With("repository", repository, "issue", issue.Number)

	action := triage.Classify(issue)
	log.With("action", action.String()).Info("Classified issue")

	switch action {
	case triage.ActionImplement:
		return e.implement(ctx, repository, issue, analysis)

	case triage.ActionCloseInvalid:
		comment := "🤖 AI Agent: This issue appears to be invalid or unclear. Closing as requested."
		if err := e.ops.CloseIssue(ctx, repository, issue.Number, comment); err != nil {
			log.With("error", err).Error("Failed to close invalid issue")
			return []string{fmt.Sprintf("❌ Failed to close invalid issue #%d: %v", issue.Number, err)}
		}
		return []string{fmt.Sprintf("✅ Closed invalid issue #%d", issue.Number)}

	case triage.ActionCloseCompleted:
		comment := "🤖 AI Agent: This issue has been completed. Closing as requested."
		if err := e.ops.CloseIssue(ctx, repository, issue.Number, comment); err != nil {
			log.With("error", err).Error("Failed to close completed issue")
			return []string{fmt.Sprintf("❌ Failed to close completed issue #%d: %v", issue.Number, err)}
		}
		return []string{fmt.Sprintf("✅ Closed completed issue #%d", issue.Number)}

	default:
		comment := "🤖 AI Agent Analysis:\n\n" + truncate(analysis, analysisCommentLimit) + "..."
		if err := e.ops.AddIssueComment(ctx, repository, issue.Number, comment); err != nil {
			log.With("error", err).Error("Failed to add analysis comment")
			return []string{fmt.Sprintf("❌ Failed to add analysis comment to issue #%d: %v", issue.Number, err)}
		}
		return []string{fmt.Sprintf("✅ Added analysis comment to issue #%d", issue.Number)}
	}
}

// implementOutcome records how far the implement flow got for one issue.
// The zero value means nothing happened yet.
type implementOutcome struct {
	noCode       bool
	branch       string
	filesCreated int
	pullRequest  *mcp.PullRequest
	failure      string
}

func (o implementOutcome) summaryLine() string {
	switch {
	case o.noCode:
		return "No code implementation found in analysis"
	case o.pullRequest != nil:
		return fmt.Sprintf("✅ Successfully created pull request #%d: %s", o.pullRequest.Number, o.pullRequest.HTMLURL)
	default:
		return "❌ " + o.failure
	}
}

func (e *Executor) implement(ctx context.Context, repository string, issue mcp.Issue, analysis string) []string {
	log := clog.FromContext(ctx).With("repository", repository, "issue", issue.Number)

	outcome := e.openPullRequest(ctx, repository, issue, analysis)
	summary := []string{outcome.summaryLine()}

	if outcome.noCode {
		log.Info("No code implementation found in analysis")
		return summary
	}

	var comment string
	if outcome.pullRequest != nil {
		comment = fmt.Sprintf("🤖 AI Agent has created a pull request to address this issue: %s\n\nPlease review the implementation.", outcome.pullRequest.HTMLURL)
	} else {
		comment = "🤖 AI Agent attempted to create a pull request but encountered an issue: " + outcome.failure
	}
	if err := e.ops.AddIssueComment(ctx, repository, issue.Number, comment); err != nil {
		log.With("error", err).Error("Failed to add comment")
		return append(summary, fmt.Sprintf("❌ Failed to add comment to issue #%d: %v", issue.Number, err))
	}
	return append(summary, fmt.Sprintf("✅ Added comment to issue #%d", issue.Number))
}

// openPullRequest runs the branch, files, pull request sequence for one
// issue. On failure after the branch exists, the cleanup hook (when set)
// deletes the orphaned branch; otherwise it is left in place and logged.
func (e *Executor) openPullRequest(ctx context.Context, repository string, issue mcp.Issue, analysis string) implementOutcome {
	log := clog.FromContext(ctx).With("repository", repository, "issue", issue.Number)

	blocks := codeblock.Extract(analysis)
	if len(blocks) == 0 {
		return implementOutcome{noCode: true}
	}

	branch := BranchName(issue.Number, issue.Title)
	if err := e.ops.CreateBranch(ctx, repository, branch, e.baseBranch); err != nil {
		log.With("branch", branch).With("error", err).Error("Failed to create branch")
		return implementOutcome{failure: fmt.Sprintf("Failed to create branch %s for issue #%d", branch, issue.Number)}
	}

	outcome := implementOutcome{branch: branch}
	for i, block := range blocks {
		ext, ok := codeblock.ExtensionForLanguage(block.Language)
		if !ok {
			continue
		}
		filePath := path.Join(OutputDir, codeblock.FileName(i+1, ext))
		message := fmt.Sprintf("Add implementation for issue #%d", issue.Number)
		if err := e.ops.CreateFile(ctx, repository, filePath, block.Code, branch, message); err != nil {
			log.With("path", filePath).With("error", err).Error("Failed to create file")
			continue
		}
		outcome.filesCreated++
	}
	if outcome.filesCreated == 0 {
		e.cleanup(ctx, repository, branch)
		outcome.failure = fmt.Sprintf("No implementation files were created for issue #%d", issue.Number)
		return outcome
	}

	body, err := prBody(issue, blocks[0])
	if err != nil {
		log.With("error", err).Error("Failed to render pull request body")
		e.cleanup(ctx, repository, branch)
		outcome.failure = fmt.Sprintf("Error creating pull request: %v", err)
		return outcome
	}

	pr, err := e.ops.CreatePullRequest(ctx, repository, prTitle(issue.Title), body, branch, e.baseBranch)
	if err != nil {
		log.With("error", err).Error("Failed to create pull request")
		e.cleanup(ctx, repository, branch)
		outcome.failure = fmt.Sprintf("Failed to create pull request for issue #%d", issue.Number)
		return outcome
	}

	log.With("pr", pr.Number).Info("Created pull request")
	outcome.pullRequest = pr
	return outcome
}

func (e *Executor) cleanup(ctx context.Context, repository, branch string) {
	log := clog.FromContext(ctx).With("repository", repository, "branch", branch)
	if e.cleanupBranch == nil {
		log.Warn("Leaving orphaned branch in place")
		return
	}
	if err := e.cleanupBranch(ctx, repository, branch); err != nil {
		log.With("error", err).Error("Branch cleanup failed")
		return
	}
	log.Info("Cleaned up orphaned branch")
}

// truncate returns at most limit runes of s.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
