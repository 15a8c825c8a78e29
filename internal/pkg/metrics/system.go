package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const DefaultCollectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ProcessResidentMemory = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "marketplace_process_resident_memory_bytes",
			Help: "Resident set size of the marketplace binary",
		},
		[]string{"binary"},
	)

	ApplicationMemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "marketplace_heap_alloc_bytes",
			Help: "Go heap allocation of the marketplace binary",
		},
		[]string{"binary"},
	)

	Goroutines = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "marketplace_goroutines",
			Help: "Number of goroutines of the marketplace binary",
		},
		[]string{"binary"},
	)
)

// StartSystemMetricsCollector снимает показатели хоста и процесса, пока ctx не отменён.
func StartSystemMetricsCollector(ctx context.Context, binary string, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid())) //nolint:gosec // pid помещается в int32
	if err != nil {
		self = nil
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, binary, self)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, binary string, self *process.Process) {
	cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if self != nil {
		memInfo, err := self.MemoryInfoWithContext(ctx)
		if err == nil {
			ProcessResidentMemory.WithLabelValues(binary).Set(float64(memInfo.RSS))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.WithLabelValues(binary).Set(float64(m.Alloc))
	Goroutines.WithLabelValues(binary).Set(float64(runtime.NumGoroutine()))
}
