/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5"

// maxTokens bounds a single generation.
const maxTokens = 32000

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config selects and authenticates a model provider.
type Config struct {
	// Model is the provider model name, e.g. claude-sonnet-4-5 or gpt-4o.
	Model string

	AnthropicAPIKey string
	OpenAIAPIKey    string
}

// ErrNoCredentials indicates the selected provider has no API key.
var ErrNoCredentials = errors.New("missing API key")

// New returns a Generator for cfg.Model. The model prefix picks the
// provider; credentials are validated here so a misconfigured run fails
// before any issue is touched.
func New(cfg Config) (Generator, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	switch {
	case strings.HasPrefix(model, "claude-"):
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("model %q: %w (set ANTHROPIC_API_KEY)", model, ErrNoCredentials)
		}
		return newClaudeGenerator(model, cfg.AnthropicAPIKey), nil

	case strings.HasPrefix(model, "gpt-"):
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("model %q: %w (set OPENAI_API_KEY)", model, ErrNoCredentials)
		}
		return newOpenAIGenerator(model, cfg.OpenAIAPIKey), nil

	default:
		return nil, fmt.Errorf("unsupported model %q: expected a claude-* or gpt-* name", model)
	}
}
