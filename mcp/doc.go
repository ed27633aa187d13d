/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package mcp defines the wire contract between the decision layer and the
// GitHub operations layer.
//
// Every operation crosses the boundary as a single Request/Response envelope
// sent as JSON over HTTP POST to the server's /call endpoint:
//
//	Request:  {"method": "github.close_issue", "params": {...}}
//	Response: {"result": {...}} | {"error": "..."}
//
// A response carries either a result or an error, never both. The seven
// recognized methods and their typed params/result payloads are defined
// here; mcpserver dispatches them and mcpclient issues them.
package mcp
