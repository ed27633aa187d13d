/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package executor turns classified issues into GitHub actions: branches,
// committed implementation files, pull requests, comments, and closes.
//
// Each issue is processed independently. A failure while acting on one
// issue is recorded in the action summary and never stops the batch.
package executor
