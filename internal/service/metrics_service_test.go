package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-scheduler/internal/models"
)

func TestMetricsServiceSnapshotComputesCacheHitRatio(t *testing.T) {
	m := NewMetricsService()

	m.RecordCacheOperation(true, 5*time.Millisecond)
	m.RecordCacheOperation(true, 5*time.Millisecond)
	m.RecordCacheOperation(false, 5*time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
	assert.InDelta(t, 2.0/3.0, snap.CacheHitRatio, 1e-9)
}

func TestMetricsServiceSnapshotZeroLookupsHasZeroRatio(t *testing.T) {
	m := NewMetricsService()
	snap := m.Snapshot()
	assert.Zero(t, snap.CacheHitRatio)
	assert.Zero(t, snap.CacheHits)
	assert.Zero(t, snap.CacheMisses)
}

func TestMetricsServiceObserveHTTPRequestTracksAverageDuration(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest("GET", "/scenarios", 200, 100*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/scenarios", 200, 300*time.Millisecond)

	snap := m.Snapshot()
	require.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 200.0, snap.AverageRequestDurationMs, 1.0)
}

func TestMetricsServiceObserveSolveAndRoleLoadSpreadDoNotPanic(t *testing.T) {
	m := NewMetricsService()
	assert.NotPanics(t, func() {
		m.ObserveSolve(250*time.Millisecond, models.ResultOptimal, 42.0)
		m.ObserveRoleLoadSpread(3)
	})
}

func TestMetricsServiceNilReceiverIsSafe(t *testing.T) {
	var m *MetricsService
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", 200, time.Millisecond)
		m.RecordCacheOperation(true, time.Millisecond)
		m.ObserveCacheWrite(time.Millisecond)
		m.ObserveSolve(time.Millisecond, models.ResultOptimal, 1.0)
		m.ObserveRoleLoadSpread(1)
	})
	assert.Equal(t, models.MetricsSnapshot{}, m.Snapshot())
}
