/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package agent provides single-shot text generation against a hosted
// model. The provider is chosen by model name: claude-* goes to
// Anthropic, gpt-* goes to OpenAI.
package agent
