// Package stats samples process resource usage during long sampling runs,
// for the CLI --stats flag.
package stats

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Report is the collected result of one run.
type Report struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	ElapsedHuman string    `json:"total_elapsed"`
	Samples      []Point   `json:"samples"`
	Summary      Summary   `json:"summary"`
}

// Point is a single sample of runtime state.
type Point struct {
	Timestamp      time.Time `json:"timestamp"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	HeapAlloc      uint64    `json:"heap_alloc"`
	TotalAlloc     uint64    `json:"total_alloc"`
	NumGC          uint32    `json:"num_gc"`
	ProcessRSS     uint64    `json:"process_rss_bytes"`
	CPUPercent     float64   `json:"cpu_percent"`
	NumGoroutine   int       `json:"num_goroutine"`
}

type Summary struct {
	PeakHeapAlloc  uint64  `json:"peak_heap_alloc"`
	PeakProcessRSS uint64  `json:"peak_process_rss"`
	PeakCPUPercent float64 `json:"peak_cpu_percent"`
	AvgCPUPercent  float64 `json:"avg_cpu_percent"`
	TotalGCCycles  uint32  `json:"total_gc_cycles"`
	SampleCount    int     `json:"sample_count"`
}

// Collector samples runtime and process stats on a ticker until stopped.
type Collector struct {
	mu        sync.Mutex
	report    Report
	startTime time.Time
	stopChan  chan struct{}
	doneChan  chan struct{}
	interval  time.Duration
	proc      *process.Process
}

func NewCollector(interval time.Duration) (*Collector, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to get process info: %w", err)
	}

	return &Collector{
		interval: interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
		proc:     proc,
	}, nil
}

func (c *Collector) Start() {
	c.startTime = time.Now()
	c.report.StartTime = c.startTime

	go c.collect()
}

func (c *Collector) collect() {
	defer close(c.doneChan)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.sample()
	for {
		select {
		case <-c.stopChan:
			c.sample()
			return
		case <-ticker.C:
			c.sample()
		}
	}
}

func (c *Collector) sample() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	point := Point{
		Timestamp:      time.Now(),
		ElapsedSeconds: time.Since(c.startTime).Seconds(),
		HeapAlloc:      memStats.HeapAlloc,
		TotalAlloc:     memStats.TotalAlloc,
		NumGC:          memStats.NumGC,
		NumGoroutine:   runtime.NumGoroutine(),
	}

	if memInfo, err := c.proc.MemoryInfo(); err == nil && memInfo != nil {
		point.ProcessRSS = memInfo.RSS
	}
	if cpuPercent, err := c.proc.CPUPercent(); err == nil {
		point.CPUPercent = cpuPercent
	}

	c.mu.Lock()
	c.report.Samples = append(c.report.Samples, point)
	c.mu.Unlock()
}

// Stop stops collecting and returns the final report.
func (c *Collector) Stop() Report {
	close(c.stopChan)
	<-c.doneChan

	c.mu.Lock()
	defer c.mu.Unlock()

	c.report.EndTime = time.Now()
	c.report.ElapsedHuman = c.report.EndTime.Sub(c.report.StartTime).String()
	c.summarize()
	return c.report
}

func (c *Collector) summarize() {
	if len(c.report.Samples) == 0 {
		return
	}

	s := &c.report.Summary
	var totalCPU float64
	for _, p := range c.report.Samples {
		if p.HeapAlloc > s.PeakHeapAlloc {
			s.PeakHeapAlloc = p.HeapAlloc
		}
		if p.ProcessRSS > s.PeakProcessRSS {
			s.PeakProcessRSS = p.ProcessRSS
		}
		if p.CPUPercent > s.PeakCPUPercent {
			s.PeakCPUPercent = p.CPUPercent
		}
		totalCPU += p.CPUPercent
	}
	s.AvgCPUPercent = totalCPU / float64(len(c.report.Samples))
	s.TotalGCCycles = c.report.Samples[len(c.report.Samples)-1].NumGC - c.report.Samples[0].NumGC
	s.SampleCount = len(c.report.Samples)
}
