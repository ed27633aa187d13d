/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
)

// claudeGenerator generates text through the Anthropic Messages API.
type claudeGenerator struct {
	client anthropic.Client
	model  string
}

func newClaudeGenerator(model, apiKey string) *claudeGenerator {
	return &claudeGenerator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (g *claudeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log := clog.FromContext(ctx).With("provider", "anthropic", "model", g.model)
	log.With("prompt_length", len(prompt)).Info("Generating analysis")

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(prompt),
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("calling Anthropic API: %w", err)
	}

	var b strings.Builder
	for _, content := range msg.Content {
		if content.Type == "text" {
			b.WriteString(content.Text)
		}
	}
	log.With("response_length", b.Len()).Info("Generation complete")
	return b.String(), nil
}
