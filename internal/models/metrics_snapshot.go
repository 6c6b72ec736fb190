package models

// MetricsSnapshot is a point-in-time view of cache and request
// effectiveness, exposed alongside the Prometheus scrape endpoint for
// quick operator inspection.
type MetricsSnapshot struct {
	CacheHitRatio            float64 `json:"cache_hit_ratio"`
	CacheHits                uint64  `json:"cache_hits"`
	CacheMisses              uint64  `json:"cache_misses"`
	RequestsTotal            uint64  `json:"requests_total"`
	AverageRequestDurationMs float64 `json:"average_request_duration_ms"`
	Goroutines               int     `json:"goroutines"`
}
