// Package cache defines the product configuration cache contract.
package cache

import "github.com/guttosm/area-length-service/internal/domain/model"

// Cache stores product configurations by product ID.
type Cache interface {
	Get(productID string) (model.ProductConfiguration, bool)
	Set(productID string, product model.ProductConfiguration)
	Invalidate(productID string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// HitRatio returns hits / (hits + misses), or 0 before any lookup.
func (m Metrics) HitRatio() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
