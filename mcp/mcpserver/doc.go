/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package mcpserver serves the remote call envelope over HTTP POST /call,
// dispatching each recognized method onto the Operations Gateway.
//
// Operation failures are soft: a failed read degrades to an empty result,
// a failed write reports success=false (or a null pull request), and only
// envelope-level problems (malformed request body, unknown method) surface
// as the envelope's error string. This keeps the decision layer from ever
// crashing on a network failure.
package mcpserver
