package providers

import (
	"alarmclock/internal/structures"

	"github.com/coocood/freecache"
	"go.uber.org/atomic"
)

// freecache rejects caches smaller than 512KB.
const minCacheBytes = 512 * 1024

// SnapshotCacheInterface holds the encoded alarm list of a service revision.
type SnapshotCacheInterface interface {
	Get(revision uint64) ([]byte, bool)
	Set(revision uint64, body []byte)
}

// SnapshotCache keeps only the newest revision: storing a new one evicts the
// snapshot it replaces.
type SnapshotCache struct {
	cache  *freecache.Cache
	ttl    int
	latest atomic.Int64
	logger Logger
}

func NewSnapshotCache(conf *structures.Config, logger Logger) SnapshotCacheInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Alarm list cache disabled")
		return &noopSnapshotCache{}
	}

	sizeBytes := max(conf.Cache.Size*1024*1024, minCacheBytes)
	ttl := max(int(conf.Cache.TTL.Seconds()), 1)

	logger.Infof(TypeApp, "Alarm list cache initialized: %dMB, TTL=%ds", conf.Cache.Size, ttl)

	c := &SnapshotCache{
		cache:  freecache.NewCache(sizeBytes),
		ttl:    ttl,
		logger: logger,
	}
	c.latest.Store(-1)
	return c
}

func (c *SnapshotCache) Get(revision uint64) ([]byte, bool) {
	body, err := c.cache.GetInt(int64(revision))
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *SnapshotCache) Set(revision uint64, body []byte) {
	key := int64(revision)
	if err := c.cache.SetInt(key, body, c.ttl); err != nil {
		c.logger.Warnf(TypeApp, "Alarm list for revision %d not cached: %s", revision, err)
		return
	}
	if prev := c.latest.Swap(key); prev >= 0 && prev != key {
		c.cache.DelInt(prev)
	}
}

type noopSnapshotCache struct{}

func (n *noopSnapshotCache) Get(_ uint64) ([]byte, bool) { return nil, false }
func (n *noopSnapshotCache) Set(_ uint64, _ []byte)      {}
