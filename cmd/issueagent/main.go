/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the issueagent CLI: an MCP server exposing
// GitHub operations, and pipeline commands that turn labeled issues into
// pull requests, comments, and closes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "issueagent",
		Short:         "GitHub issue automation over MCP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(),
		newTasksCommand(),
		newAnalyzeCommand(),
	)
	return root
}
