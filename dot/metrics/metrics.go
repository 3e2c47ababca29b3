// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"fmt"
	"net/http"
	"time"

	ethmetrics "github.com/ethereum/go-ethereum/metrics"
	ethprometheus "github.com/ethereum/go-ethereum/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	log "github.com/ChainSafe/log15"
)

const (
	// RefreshInterval is the refresh time for publishing metrics
	RefreshInterval = time.Second * 10

	refreshFreq = int64(RefreshInterval / time.Second)
)

var logger = log.New("pkg", "metrics")

// PublishMetrics starts a dedicated metrics server at the given address.
// The prometheus registry is served under /metrics, the gauge registry the
// Collector publishes to under /debug/metrics/prometheus.
func PublishMetrics(address string) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	m.Handle("/debug/metrics/prometheus", ethprometheus.Handler(ethmetrics.DefaultRegistry))

	logger.Info("Starting metrics server", "addr", fmt.Sprintf("http://%s/metrics", address))
	go func() {
		if err := http.ListenAndServe(address, m); err != nil {
			logger.Error("Failure in running metrics server", "error", err)
		}
	}()
}
