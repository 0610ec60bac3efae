package out

import (
	"github.com/coocood/freecache"
	"github.com/rs/zerolog"

	goalout "japa/internal/modules/goal/port/out"
)

// Entries are keyed by history fingerprint, so they never go stale and are
// kept until evicted.
const noExpiry = 0

type FreeCacheReportCache struct {
	cache *freecache.Cache
}

// NewFreeCacheReportCache returns a no-op cache when sizeMB is not positive.
func NewFreeCacheReportCache(sizeMB int, log zerolog.Logger) goalout.ReportCache {
	if sizeMB <= 0 {
		log.Debug().Msg("report cache disabled")
		return noopCache{}
	}
	log.Debug().Int("size_mb", sizeMB).Msg("report cache initialized")
	return &FreeCacheReportCache{cache: freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (c *FreeCacheReportCache) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *FreeCacheReportCache) Set(key string, value []byte) {
	_ = c.cache.Set([]byte(key), value, noExpiry)
}

type noopCache struct{}

func (noopCache) Get(string) ([]byte, bool) { return nil, false }
func (noopCache) Set(string, []byte)        {}
