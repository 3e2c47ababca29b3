// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package transaction

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	readyTxsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "txpool",
		Subsystem: "queue",
		Name:      "ready_total",
		Help:      "total number of transactions in the ready queue",
	})
	futureTxsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "txpool",
		Subsystem: "pool",
		Name:      "future_total",
		Help:      "total number of transactions in the future pool",
	})
)
