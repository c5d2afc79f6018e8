package gomap

import "github.com/signadot/urlform/policy"

// MapOption is an option for controlling how values are rendered into the
// tree.
type MapOption interface {
	applyMap(*mapConfig)
}

type mapOptionFunc func(*mapConfig)

func (f mapOptionFunc) applyMap(c *mapConfig) { f(c) }

type mapConfig struct {
	bools policy.BoolEncoding
	data  policy.DataEncoding
	dates policy.DateEncoding
	nils  policy.NilEncoding
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{
		bools: policy.BoolNumeric,
		data:  policy.DataBase64,
		dates: policy.DateDeferred,
		nils:  policy.NilDropKey,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applyMap(cfg)
		}
	}
	return cfg
}

// MapBools sets the bool encoding, policy.BoolNumeric by default.
func MapBools(b policy.BoolEncoding) MapOption {
	return mapOptionFunc(func(c *mapConfig) {
		if b != nil {
			c.bools = b
		}
	})
}

// MapData sets the data encoding, policy.DataBase64 by default.
func MapData(d policy.DataEncoding) MapOption {
	return mapOptionFunc(func(c *mapConfig) {
		if d != nil {
			c.data = d
		}
	})
}

// MapDates sets the date encoding, policy.DateDeferred by default.
func MapDates(d policy.DateEncoding) MapOption {
	return mapOptionFunc(func(c *mapConfig) {
		if d != nil {
			c.dates = d
		}
	})
}

// MapNils sets the nil encoding, policy.NilDropKey by default.
func MapNils(n policy.NilEncoding) MapOption {
	return mapOptionFunc(func(c *mapConfig) {
		if n != nil {
			c.nils = n
		}
	})
}
