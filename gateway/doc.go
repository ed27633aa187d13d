/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package gateway performs one GitHub mutation or query per call against the
// GitHub REST API. It is stateless beyond the held HTTP client and maps each
// of the seven envelope operations onto its REST equivalent: issue listing
// and fetching, PATCH-to-close, comment creation, git ref resolution and
// creation for branches, contents creation for files, and pull request
// creation.
//
// The gateway returns explicit errors; translating failures into the
// envelope's soft defaults is the server's job, not the gateway's.
package gateway
