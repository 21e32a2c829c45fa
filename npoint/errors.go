package npoint

import "errors"

var (
	ErrBadPosition   = errors.New("position out of range")
	ErrRouteMismatch = errors.New("route mismatch")
)
