package network

import "github.com/paulmach/orb"

// Catalog is the read-only route graph lookup. Implementations must be
// safe for concurrent reads; lookups of unknown route ids return
// commerr.ErrNotFound.
type Catalog interface {
	RouteLength(rid uint64) (float64, error)
	RouteGeometry(rid uint64) (orb.LineString, error)
}

type Registry interface {
	Catalog

	AddRoute(route Route) (rid uint64, err error)
}
