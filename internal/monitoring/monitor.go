package monitoring

import (
	"sync"
	"time"
)

// Monitor collects and provides runtime statistics for the pantry service
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordPantrySnapshot records headline statistics for a user's pantry
// after a query or a commit.
func (m *Monitor) RecordPantrySnapshot(userID string, total, expired, expiringSoon int) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	prefix := userID + "_pantry_"
	m.metrics[prefix+"items"] = total
	m.metrics[prefix+"expired"] = expired
	m.metrics[prefix+"expiring_soon"] = expiringSoon
	m.metrics[prefix+"last_updated"] = time.Now().Format(time.RFC3339)
}
