package network

import "github.com/paulmach/orb"

type Route struct {
	ID       uint64         `json:"id" yaml:"id"`
	Length   float64        `json:"length" yaml:"length"`
	Geometry orb.LineString `json:"geometry" yaml:"geometry"`
}
