/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package pipeline drives the issue-to-action flow end to end: list
// labeled issues, ask a model for an analysis, then act on each issue
// through the executor.
package pipeline
