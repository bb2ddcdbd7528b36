package unit

import (
	"github.com/jt0/units/gomerr"
)

type IncompatibleUnitsError struct {
	gomerr.Gomerr
	From Unit
	To   Unit
}

func IncompatibleUnits(from, to Unit) *IncompatibleUnitsError {
	ge := gomerr.Build(new(IncompatibleUnitsError), from, to).(*IncompatibleUnitsError)
	ge.AddAttributes("FromFamily", from.family, "ToFamily", to.family)
	return ge
}

type UnrecognizedUnitError struct {
	gomerr.Gomerr
	Symbol string
}

func UnrecognizedUnit(symbol string) *UnrecognizedUnitError {
	return gomerr.Build(new(UnrecognizedUnitError), symbol).(*UnrecognizedUnitError)
}
