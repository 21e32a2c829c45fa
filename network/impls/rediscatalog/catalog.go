package rediscatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/godruoyi/go-snowflake"
	"github.com/paulmach/orb"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libmobility/network"
	"github.com/spf13/cast"
)

func NewRedisCatalog(preKey string, redisCli *redis.Client, logger l.Wrapper) network.Registry {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "routeCatalog"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &routeCatalog{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type routeCatalog struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *routeCatalog) routeKey(rid uint64) string {
	return fmt.Sprintf("%s:route:%d", impl.preKey, rid)
}

func (impl *routeCatalog) AddRoute(route network.Route) (rid uint64, err error) {
	rid = route.ID

	if rid == 0 {
		rid = snowflake.ID()
	}

	d, err := json.Marshal(route.Geometry)
	if err != nil {
		return
	}

	err = impl.redisCli.HSet(context.Background(), impl.routeKey(rid),
		"length", route.Length, "geom", d).Err()

	return
}

func (impl *routeCatalog) RouteLength(rid uint64) (length float64, err error) {
	v, err := impl.redisCli.HGet(context.Background(), impl.routeKey(rid), "length").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	length, err = cast.ToFloat64E(v)

	return
}

func (impl *routeCatalog) RouteGeometry(rid uint64) (geom orb.LineString, err error) {
	d, err := impl.redisCli.HGet(context.Background(), impl.routeKey(rid), "geom").Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = json.Unmarshal(d, &geom)

	return
}
