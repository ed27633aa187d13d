/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name    string
		cfg     Config
		wantErr error
		wantAny bool
	}{{
		name: "claude model with key",
		cfg:  Config{Model: "claude-sonnet-4-5", AnthropicAPIKey: "sk-ant-test"},
	}, {
		name:    "claude model without key",
		cfg:     Config{Model: "claude-sonnet-4-5"},
		wantErr: ErrNoCredentials,
	}, {
		name: "gpt model with key",
		cfg:  Config{Model: "gpt-4o", OpenAIAPIKey: "sk-test"},
	}, {
		name:    "gpt model without key",
		cfg:     Config{Model: "gpt-4o"},
		wantErr: ErrNoCredentials,
	}, {
		name:    "empty model defaults to claude",
		cfg:     Config{},
		wantErr: ErrNoCredentials,
	}, {
		name:    "unknown model",
		cfg:     Config{Model: "llama-3"},
		wantAny: true,
	}} {
		t.Run(tc.name, func(t *testing.T) {
			gen, err := New(tc.cfg)
			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.wantAny:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.NotNil(t, gen)
			}
		})
	}
}

func TestProviderSelection(t *testing.T) {
	gen, err := New(Config{Model: "claude-sonnet-4-5", AnthropicAPIKey: "k"})
	require.NoError(t, err)
	require.IsType(t, &claudeGenerator{}, gen)

	gen, err = New(Config{Model: "gpt-4o", OpenAIAPIKey: "k"})
	require.NoError(t, err)
	require.IsType(t, &openaiGenerator{}, gen)
}
