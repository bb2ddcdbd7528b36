// Package catalog exposes a shared registry holding every unit defined by this module.
package catalog

import (
	"sync"

	"github.com/jt0/units/gomerr"
	"github.com/jt0/units/logs"
	"github.com/jt0/units/unit"
	"github.com/jt0/units/unit/mass"
	"github.com/jt0/units/unit/volume"
)

var defaultRegistry = sync.OnceValue(func() *unit.Registry {
	r, ge := unit.NewRegistry(BuiltIn()...)
	if ge != nil {
		// built-in definitions are fixed; reaching this is a bug
		logs.Error.Print(ge.String())
		panic(gomerr.Internal("built-in units do not form a valid registry").Wrap(ge))
	}
	return r
})

// BuiltIn returns every unit defined by this module.
func BuiltIn() []unit.Unit {
	return append(volume.Units(), mass.Units()...)
}

// Default returns the registry of built-in units. It is built on first use.
func Default() *unit.Registry {
	return defaultRegistry()
}

func Lookup(symbol string) (unit.Unit, gomerr.Gomerr) {
	return Default().Lookup(symbol)
}

func Parse(s string) (unit.Quantity, gomerr.Gomerr) {
	return Default().ParseQuantity(s)
}
