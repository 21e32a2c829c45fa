package network

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/paulmach/orb"
	"github.com/sgostarter/i/l"
)

// NewCachedCatalog wraps a catalog with an in-memory read-through
// cache, for backends with lookup cost such as redis.
func NewCachedCatalog(inner Catalog, expiration time.Duration, logger l.Wrapper) Catalog {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if inner == nil {
		logger.Fatal("no inner catalog")
	}

	if expiration <= 0 {
		expiration = time.Minute
	}

	return &cachedCatalog{
		inner:  inner,
		cached: cache.New(expiration, expiration*2),
	}
}

type cachedCatalog struct {
	inner  Catalog
	cached *cache.Cache
}

func (impl *cachedCatalog) route(rid uint64) (route Route, err error) {
	key := fmt.Sprintf("%d", rid)

	if v, ok := impl.cached.Get(key); ok {
		if route, ok = v.(Route); ok {
			return
		}
	}

	length, err := impl.inner.RouteLength(rid)
	if err != nil {
		return
	}

	geom, err := impl.inner.RouteGeometry(rid)
	if err != nil {
		return
	}

	route = Route{
		ID:       rid,
		Length:   length,
		Geometry: geom,
	}

	impl.cached.Set(key, route, cache.DefaultExpiration)

	return
}

func (impl *cachedCatalog) RouteLength(rid uint64) (float64, error) {
	route, err := impl.route(rid)
	if err != nil {
		return 0, err
	}

	return route.Length, nil
}

func (impl *cachedCatalog) RouteGeometry(rid uint64) (orb.LineString, error) {
	route, err := impl.route(rid)
	if err != nil {
		return nil, err
	}

	return route.Geometry, nil
}
