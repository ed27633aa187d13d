/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"

	"github.com/issueagent/issueagent/agent"
	"github.com/issueagent/issueagent/executor"
	"github.com/issueagent/issueagent/mcp"
)

// DefaultTaskLabel marks issues the pipeline should pick up.
const DefaultTaskLabel = "ai-task"

// Service is everything the pipeline needs from the MCP layer.
// *mcpclient.Client satisfies it.
type Service interface {
	ListIssues(ctx context.Context, repository string, labels []string, state string) ([]mcp.Issue, error)
	executor.GitHubOps
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTaskLabel overrides the label used to find task issues.
func WithTaskLabel(label string) Option {
	return func(p *Pipeline) {
		p.label = label
	}
}

// WithExecutor replaces the default executor, e.g. to set a base branch
// or a branch cleanup hook.
func WithExecutor(exec *executor.Executor) Option {
	return func(p *Pipeline) {
		p.exec = exec
	}
}

// Pipeline lists labeled issues, generates an analysis, and acts on it.
type Pipeline struct {
	svc   Service
	gen   agent.Generator
	exec  *executor.Executor
	label string
}

// New creates a Pipeline over an MCP service and a text generator.
func New(svc Service, gen agent.Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		svc:   svc,
		gen:   gen,
		label: DefaultTaskLabel,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.exec == nil {
		p.exec = executor.New(svc)
	}
	return p
}

// HandleTasks runs the full flow for a repository: find task-labeled
// issues, generate an implementation analysis, and act on every issue.
// The return value is the analysis followed by the action summary.
//
// A listing failure degrades to "no tasks" rather than an error so a
// flaky server never turns into actions against a half-known issue set.
func (p *Pipeline) HandleTasks(ctx context.Context, repository string) (string, error) {
	log := clog.FromContext(ctx).With("repository", repository, "label", p.label)

	issues, err := p.svc.ListIssues(ctx, repository, []string{p.label}, "all")
	if err != nil {
		log.With("error", err).Error("Failed to list task issues")
		issues = nil
	}
	if len(issues) == 0 {
		log.Info("No task issues found")
		return fmt.Sprintf("No AI tasks found in repository '%s'. Look for issues labeled as '%s'.", repository, p.label), nil
	}
	log.With("count", len(issues)).Info("Found task issues")

	analysis, err := p.gen.Generate(ctx, taskPrompt(repository, p.label, issues))
	if err != nil {
		return "", fmt.Errorf("generating analysis: %w", err)
	}

	summary := p.exec.Execute(ctx, repository, issues, analysis)
	return analysis + "\n\n" + strings.Join(summary, "\n"), nil
}

// AnalyzeByLabel produces an insight report for issues carrying label,
// set against the repository's open-issue totals. No actions are taken.
func (p *Pipeline) AnalyzeByLabel(ctx context.Context, repository, label string) (string, error) {
	log := clog.FromContext(ctx).With("repository", repository, "label", label)

	labeled, err := p.svc.ListIssues(ctx, repository, []string{label}, "all")
	if err != nil {
		return "", fmt.Errorf("listing labeled issues: %w", err)
	}
	if len(labeled) == 0 {
		log.Info("No labeled issues found")
		return fmt.Sprintf("No issues found with label '%s' in repository '%s'", label, repository), nil
	}

	open, err := p.svc.ListIssues(ctx, repository, nil, "open")
	if err != nil {
		return "", fmt.Errorf("listing open issues: %w", err)
	}
	log.With("labeled", len(labeled)).With("open", len(open)).Info("Analyzing issues")

	report, err := p.gen.Generate(ctx, analysisPrompt(repository, label, labeled, open))
	if err != nil {
		return "", fmt.Errorf("generating analysis: %w", err)
	}
	return report, nil
}
