/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/issueagent/issueagent/gateway"
	"github.com/issueagent/issueagent/mcp/mcpserver"
)

type serveConfig struct {
	GitHubToken string `env:"GITHUB_TOKEN,required"`

	Host        string `env:"MCP_SERVER_HOST,default=localhost"`
	Port        int    `env:"MCP_SERVER_PORT,default=3000"`
	MetricsPort int    `env:"METRICS_PORT,default=2112"`

	// GitHubAPIURL overrides the GitHub API base, e.g. for GitHub
	// Enterprise. Empty means api.github.com.
	GitHubAPIURL string `env:"GITHUB_API_URL"`
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server exposing GitHub operations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var cfg serveConfig
			if err := envconfig.Process(ctx, &cfg); err != nil {
				return fmt.Errorf("processing config: %w", err)
			}

			var opts []gateway.Option
			if cfg.GitHubAPIURL != "" {
				opts = append(opts, gateway.WithBaseURL(cfg.GitHubAPIURL))
			}
			gw, err := gateway.New(ctx, cfg.GitHubToken, opts...)
			if err != nil {
				return fmt.Errorf("creating gateway: %w", err)
			}

			addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
			srv := &http.Server{
				Addr:              addr,
				Handler:           mcpserver.New(gw).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			metricsSrv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
				Handler:           metricsHandler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			log := clog.FromContext(ctx)
			log.With("addr", addr).Info("Starting MCP server")
			log.With("port", cfg.MetricsPort).Info("Starting metrics server")

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("mcp server: %w", err)
				}
				return nil
			})
			eg.Go(func() error {
				if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("metrics server: %w", err)
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				log.Info("Shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
				defer cancel()
				return errors.Join(srv.Shutdown(shutdownCtx), metricsSrv.Shutdown(shutdownCtx))
			})
			return eg.Wait()
		},
	}
}

func metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
