package memcatalog

import (
	"github.com/paulmach/orb"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libmobility/network"
)

// NewMemCatalog builds a fixed in-memory catalog. The route map is not
// mutated after construction, so concurrent reads need no locking.
func NewMemCatalog(routes ...network.Route) network.Catalog {
	m := make(map[uint64]network.Route, len(routes))

	for _, route := range routes {
		m[route.ID] = route
	}

	return &memCatalog{
		routes: m,
	}
}

type memCatalog struct {
	routes map[uint64]network.Route
}

func (impl *memCatalog) RouteLength(rid uint64) (float64, error) {
	route, ok := impl.routes[rid]
	if !ok {
		return 0, commerr.ErrNotFound
	}

	return route.Length, nil
}

func (impl *memCatalog) RouteGeometry(rid uint64) (orb.LineString, error) {
	route, ok := impl.routes[rid]
	if !ok {
		return nil, commerr.ErrNotFound
	}

	return route.Geometry, nil
}
