/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package triage decides what to do with a GitHub issue based on keyword
// matching over its title and body.
//
// Classification is a first-match walk over an ordered rule table, so an
// issue mentioning both "implement" and "invalid" is treated as a code
// change request. The table is data, not control flow; reordering or
// extending it changes policy without touching the classifier.
package triage
