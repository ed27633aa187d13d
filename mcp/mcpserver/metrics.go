/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess    = "success"
	statusError      = "error"
	statusBadRequest = "bad_request"
)

var callsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mcp_calls_total",
		Help: "Envelope calls handled, by method and outcome.",
	},
	[]string{"method", "status"},
)
