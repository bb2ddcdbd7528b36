// Package volume provides the recognized volume units. The litre is the base unit.
package volume

import (
	"github.com/shopspring/decimal"

	"github.com/jt0/units/unit"
)

var (
	millilitre = unit.New(unit.Volume, "millilitre", "mL", decimal.New(1, -3))
	litre      = unit.New(unit.Volume, "litre", "L", decimal.New(1, 0))
)

func Millilitre() unit.Unit {
	return millilitre
}

func Litre() unit.Unit {
	return litre
}

// Units returns every volume unit, smallest first.
func Units() []unit.Unit {
	return []unit.Unit{millilitre, litre}
}

func Millilitres(amount decimal.Decimal) unit.Quantity {
	return unit.NewQuantity(amount, millilitre)
}

func Litres(amount decimal.Decimal) unit.Quantity {
	return unit.NewQuantity(amount, litre)
}
