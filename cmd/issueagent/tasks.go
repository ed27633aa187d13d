/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/issueagent/issueagent/agent"
	"github.com/issueagent/issueagent/codeblock"
	"github.com/issueagent/issueagent/mcp/mcpclient"
	"github.com/issueagent/issueagent/pipeline"
)

type tasksConfig struct {
	Repository string `env:"GITHUB_REPOSITORY,required"`
	ServerURL  string `env:"MCP_SERVER_URL,default=http://localhost:3000"`

	Model           string `env:"MODEL,default=claude-sonnet-4-5"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`

	TaskLabel string `env:"TASK_LABEL,default=ai-task"`
	OutputDir string `env:"OUTPUT_DIR,default=ai_task_implementations"`
}

func newTasksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "Process task-labeled issues: analyze, then open PRs, comment, or close",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var cfg tasksConfig
			if err := envconfig.Process(ctx, &cfg); err != nil {
				return fmt.Errorf("processing config: %w", err)
			}

			// Credential problems surface here, before any issue is read.
			gen, err := agent.New(agent.Config{
				Model:           cfg.Model,
				AnthropicAPIKey: cfg.AnthropicAPIKey,
				OpenAIAPIKey:    cfg.OpenAIAPIKey,
			})
			if err != nil {
				return fmt.Errorf("configuring model: %w", err)
			}

			client := mcpclient.New(cfg.ServerURL)
			defer client.Close()

			p := pipeline.New(client, gen, pipeline.WithTaskLabel(cfg.TaskLabel))
			result, err := p.HandleTasks(ctx, cfg.Repository)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)

			if strings.Contains(result, "```") {
				saved, err := codeblock.SaveAll(ctx, cfg.OutputDir, codeblock.Extract(result))
				if err != nil {
					return fmt.Errorf("saving implementations: %w", err)
				}
				for _, path := range saved {
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
				}
			}

			clog.FromContext(ctx).With("repository", cfg.Repository).Info("Task run complete")
			return nil
		},
	}
}
