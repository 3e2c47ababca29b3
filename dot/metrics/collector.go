// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/ChainSafe/txpool/lib/services"
	ethmetrics "github.com/ethereum/go-ethereum/metrics"
)

var _ services.Service = &Collector{}

// GaugeMetrics is implemented by components exporting gauge values
type GaugeMetrics interface {
	CollectGauge() map[string]int64
}

// Collector polls the registered gauges and the process statistics on a
// fixed interval and publishes them to the metrics registry
type Collector struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	gauges          []GaugeMetrics
	refreshInterval time.Duration
}

// NewCollector creates a new Collector. Gauges must be added before Start.
func NewCollector() *Collector {
	ctx, cancel := context.WithCancel(context.Background())
	return &Collector{
		ctx:             ctx,
		cancel:          cancel,
		gauges:          make([]GaugeMetrics, 0),
		refreshInterval: RefreshInterval,
	}
}

// AddGauge adds a GaugeMetrics implementer to the collected gauges
func (c *Collector) AddGauge(g GaugeMetrics) {
	c.gauges = append(c.gauges, g)
}

// Start begins collecting the registered gauges and the process metrics
func (c *Collector) Start() error {
	ethmetrics.Enabled = true
	c.wg.Add(2)

	go c.collectProcessMetrics()
	go c.collectGauges()

	return nil
}

// Stop stops the collection and waits for the collecting goroutines to exit
func (c *Collector) Stop() error {
	c.cancel()
	c.wg.Wait()
	return nil
}

func (c *Collector) collectGauges() {
	t := time.NewTicker(c.refreshInterval)
	defer func() {
		t.Stop()
		c.wg.Done()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-t.C:
			for _, g := range c.gauges {
				for label, value := range g.CollectGauge() {
					gauge := ethmetrics.GetOrRegisterGauge(label, nil)
					gauge.Update(value)
				}
			}
		}
	}
}

func (c *Collector) collectProcessMetrics() {
	cpuStats := make([]*ethmetrics.CPUStats, 2)
	memStats := make([]*runtime.MemStats, 2)
	for i := 0; i < len(memStats); i++ {
		cpuStats[i] = new(ethmetrics.CPUStats)
		memStats[i] = new(runtime.MemStats)
	}

	var (
		cpuSysLoad    = ethmetrics.GetOrRegisterGauge("system/cpu/sysload", ethmetrics.DefaultRegistry)
		cpuSysWait    = ethmetrics.GetOrRegisterGauge("system/cpu/syswait", ethmetrics.DefaultRegistry)
		cpuProcLoad   = ethmetrics.GetOrRegisterGauge("system/cpu/procload", ethmetrics.DefaultRegistry)
		cpuGoroutines = ethmetrics.GetOrRegisterGauge("system/cpu/goroutines", ethmetrics.DefaultRegistry)

		memPauses = ethmetrics.GetOrRegisterMeter("system/memory/pauses", ethmetrics.DefaultRegistry)
		memAlloc  = ethmetrics.GetOrRegisterMeter("system/memory/allocs", ethmetrics.DefaultRegistry)
		memFrees  = ethmetrics.GetOrRegisterMeter("system/memory/frees", ethmetrics.DefaultRegistry)
		memHeld   = ethmetrics.GetOrRegisterGauge("system/memory/held", ethmetrics.DefaultRegistry)
		memUsed   = ethmetrics.GetOrRegisterGauge("system/memory/used", ethmetrics.DefaultRegistry)
	)

	t := time.NewTicker(c.refreshInterval)
	defer func() {
		t.Stop()
		c.wg.Done()
	}()

	// samples alternate between the two slots, the delta between them is
	// published
	for i := 1; ; i++ {
		select {
		case <-c.ctx.Done():
			return
		case <-t.C:
			location1 := i % 2
			location2 := (i - 1) % 2

			ethmetrics.ReadCPUStats(cpuStats[location1])
			cpuSysLoad.Update((cpuStats[location1].GlobalTime - cpuStats[location2].GlobalTime) / refreshFreq)
			cpuSysWait.Update((cpuStats[location1].GlobalWait - cpuStats[location2].GlobalWait) / refreshFreq)
			cpuProcLoad.Update((cpuStats[location1].LocalTime - cpuStats[location2].LocalTime) / refreshFreq)
			cpuGoroutines.Update(int64(runtime.NumGoroutine()))

			runtime.ReadMemStats(memStats[location1])
			memPauses.Mark(int64(memStats[location1].PauseTotalNs - memStats[location2].PauseTotalNs))
			memAlloc.Mark(int64(memStats[location1].Mallocs - memStats[location2].Mallocs))
			memFrees.Mark(int64(memStats[location1].Frees - memStats[location2].Frees))
			memHeld.Update(int64(memStats[location1].HeapSys - memStats[location1].HeapReleased))
			memUsed.Update(int64(memStats[location1].Alloc))
		}
	}
}
