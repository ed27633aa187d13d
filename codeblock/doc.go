/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package codeblock extracts fenced code segments from generated markdown
// text and persists the ones in supported languages to disk.
//
// Extraction order matches first occurrence in the source text. Downstream
// code relies on that ordering to pick the first code block for pull
// request bodies.
package codeblock
