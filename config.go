// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "go.uber.org/zap"

// configs is a type used to store the optional parameters of a Manager.
type configs struct {
	nodesize  int
	cachesize int
	logger    *zap.Logger
}

func makeconfigs() *configs {
	return &configs{
		nodesize:  10007,
		cachesize: 10007,
		logger:    zap.NewNop(),
	}
}

// Nodesize is a configuration option (function) for the initial capacity of
// the node arena and unicity table. A good value is generally twice the
// number of nodes you expect the propagator's diagrams to use.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function) for the initial capacity of
// the operation caches.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// Logger is a configuration option (function) installing a structured logger
// on the manager. The builders emit Debug-level construction records. The
// default is a no-op logger.
func Logger(l *zap.Logger) func(*configs) {
	return func(c *configs) {
		if l != nil {
			c.logger = l
		}
	}
}
