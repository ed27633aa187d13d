/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openaiGenerator generates text through the OpenAI Chat Completions API.
type openaiGenerator struct {
	client openai.Client
	model  string
}

func newOpenAIGenerator(model, apiKey string) *openaiGenerator {
	return &openaiGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (g *openaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log := clog.FromContext(ctx).With("provider", "openai", "model", g.model)
	log.With("prompt_length", len(prompt)).Info("Generating analysis")

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	out := resp.Choices[0].Message.Content
	log.With("response_length", len(out)).Info("Generation complete")
	return out, nil
}
