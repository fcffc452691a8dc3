package providers

import "alarmclock/internal/structures"

type instrumentedSnapshotCache struct {
	inner   SnapshotCacheInterface
	metrics MetricsProviderInterface
}

func (c *instrumentedSnapshotCache) Get(revision uint64) ([]byte, bool) {
	body, ok := c.inner.Get(revision)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return body, ok
}

func (c *instrumentedSnapshotCache) Set(revision uint64, body []byte) {
	c.inner.Set(revision, body)
}

// NewInstrumentedSnapshotCache counts hits and misses of GET /alarms. A
// disabled cache is returned bare so every request is not counted as a miss.
func NewInstrumentedSnapshotCache(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) SnapshotCacheInterface {
	inner := NewSnapshotCache(conf, logger)
	if _, ok := inner.(*noopSnapshotCache); ok {
		return inner
	}
	return &instrumentedSnapshotCache{inner: inner, metrics: metrics}
}
