/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/issueagent/issueagent/agent"
	"github.com/issueagent/issueagent/mcp/mcpclient"
	"github.com/issueagent/issueagent/pipeline"
)

type analyzeConfig struct {
	Repository string `env:"GITHUB_REPOSITORY,required"`
	ServerURL  string `env:"MCP_SERVER_URL,default=http://localhost:3000"`

	Model           string `env:"MODEL,default=claude-sonnet-4-5"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
}

func newAnalyzeCommand() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report on issues carrying a label, without taking actions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var cfg analyzeConfig
			if err := envconfig.Process(ctx, &cfg); err != nil {
				return fmt.Errorf("processing config: %w", err)
			}

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

			report, err := pipeline.New(client, gen).AnalyzeByLabel(ctx, cfg.Repository, label)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "bug", "label to analyze")
	return cmd
}
