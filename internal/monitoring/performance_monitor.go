package monitoring

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame timing for the render loop.
type PerformanceMonitor struct {
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame
	totalTime  atomic.Uint64 // nanoseconds, all frames

	mutex       sync.RWMutex
	startTime   time.Time
	reportAt    time.Time
	reportCount uint64
	reportFPS   float64
	interval    time.Duration

	now func() time.Time
}

// NewPerformanceMonitor creates a monitor that reports once per interval.
// A zero interval disables periodic reports.
func NewPerformanceMonitor(interval time.Duration) *PerformanceMonitor {
	return newMonitor(interval, time.Now)
}

func newMonitor(interval time.Duration, now func() time.Time) *PerformanceMonitor {
	start := now()
	return &PerformanceMonitor{
		startTime: start,
		reportAt:  start,
		interval:  interval,
		now:       now,
	}
}

// FrameTimer measures a single frame.
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: pm.now(),
	}
}

// EndFrame records the frame and returns its duration.
func (ft *FrameTimer) EndFrame() time.Duration {
	d := ft.monitor.now().Sub(ft.startTime)
	if d < 0 {
		d = 0
	}
	ft.monitor.frameTime.Store(uint64(d.Nanoseconds()))
	ft.monitor.totalTime.Add(uint64(d.Nanoseconds()))
	ft.monitor.frameCount.Add(1)
	return d
}

// FrameCount returns the number of completed frames.
func (pm *PerformanceMonitor) FrameCount() uint64 {
	return pm.frameCount.Load()
}

// Report returns the frame rate over the last interval once the interval
// has elapsed. ok is false until then.
func (pm *PerformanceMonitor) Report() (fps float64, ok bool) {
	if pm.interval <= 0 {
		return 0, false
	}

	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	now := pm.now()
	elapsed := now.Sub(pm.reportAt)
	if elapsed < pm.interval {
		return 0, false
	}

	count := pm.frameCount.Load()
	frames := count - pm.reportCount
	fps = float64(frames) / elapsed.Seconds()

	pm.reportAt = now
	pm.reportCount = count
	pm.reportFPS = fps
	return fps, true
}

// LogReport logs the frame rate when an interval has elapsed.
func (pm *PerformanceMonitor) LogReport(logger *slog.Logger) {
	if fps, ok := pm.Report(); ok && logger != nil {
		logger.Info("frame rate", "fps", int(fps+0.5))
	}
}

// Metrics is a point-in-time summary of the monitor.
type Metrics struct {
	Frames          uint64
	FramesPerSecond float64 // last completed report
	LastFrame       time.Duration
	AverageFrame    time.Duration
	Uptime          time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() Metrics {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	frames := pm.frameCount.Load()
	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(pm.totalTime.Load() / frames)
	}

	return Metrics{
		Frames:          frames,
		FramesPerSecond: pm.reportFPS,
		LastFrame:       time.Duration(pm.frameTime.Load()),
		AverageFrame:    avg,
		Uptime:          pm.now().Sub(pm.startTime),
	}
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	m := pm.GetCurrentMetrics()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]interface{}{
		"uptime_seconds":     m.Uptime.Seconds(),
		"frame_count":        m.Frames,
		"fps":                m.FramesPerSecond,
		"last_frame_time_ms": float64(m.LastFrame) / float64(time.Millisecond),
		"avg_frame_time_ms":  float64(m.AverageFrame) / float64(time.Millisecond),
		"memory_alloc_mb":    memStats.Alloc / 1024 / 1024,
		"gc_cycles":          memStats.NumGC,
		"goroutines":         runtime.NumGoroutine(),
	}
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.totalTime.Store(0)

	pm.mutex.Lock()
	pm.startTime = pm.now()
	pm.reportAt = pm.startTime
	pm.reportCount = 0
	pm.reportFPS = 0
	pm.mutex.Unlock()
}
