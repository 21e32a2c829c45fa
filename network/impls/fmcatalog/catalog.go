package fmcatalog

import (
	"path/filepath"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/paulmach/orb"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libmobility/network"
)

func NewFMCatalog(root string, storage stg.FileStorage) network.Registry {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmCatalogImpl{
		routeStorage: mwf.NewMemWithFile[map[uint64]*network.Route, mwf.Serial, mwf.Lock](
			make(map[uint64]*network.Route), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, "routes.json"), storage),
	}
}

type fmCatalogImpl struct {
	routeStorage *mwf.MemWithFile[map[uint64]*network.Route, mwf.Serial, mwf.Lock]
}

func (impl *fmCatalogImpl) AddRoute(route network.Route) (rid uint64, err error) {
	err = impl.routeStorage.Change(func(oldM map[uint64]*network.Route) (newM map[uint64]*network.Route, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[uint64]*network.Route)
		}

		rid = route.ID
		if rid == 0 {
			rid = snowflake.ID()
		}

		if _, ok := newM[rid]; ok {
			err = commerr.ErrAlreadyExists

			return
		}

		route.ID = rid
		newM[rid] = &route

		return
	})

	return
}

func (impl *fmCatalogImpl) RouteLength(rid uint64) (length float64, err error) {
	impl.routeStorage.Read(func(m map[uint64]*network.Route) {
		if route, ok := m[rid]; ok {
			length = route.Length
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmCatalogImpl) RouteGeometry(rid uint64) (geom orb.LineString, err error) {
	impl.routeStorage.Read(func(m map[uint64]*network.Route) {
		if route, ok := m[rid]; ok {
			geom = append(orb.LineString{}, route.Geometry...)
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}
