/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package mcpclient is the Protocol Layer: it issues the seven GitHub
// operations as named remote calls against an MCP server, one HTTP POST
// round trip per call.
//
// Unlike the server side, the client surfaces failures as explicit errors
// so callers can tell "zero issues found" apart from "call failed". The
// pipeline and executor layers convert those errors into the documented
// soft behavior (empty results, failure lines in the action log). Every
// call is logged with the operation name and its identifying parameters.
package mcpclient
