// Package mass provides metric and imperial mass units. The kilogram is the base unit.
package mass

import (
	"github.com/shopspring/decimal"

	"github.com/jt0/units/unit"
)

var (
	milligram = unit.New(unit.Mass, "milligram", "mg", decimal.New(1, -6))
	gram      = unit.New(unit.Mass, "gram", "g", decimal.New(1, -3))
	kilogram  = unit.New(unit.Mass, "kilogram", "kg", decimal.New(1, 0))
)

func Milligram() unit.Unit { return milligram }
func Gram() unit.Unit      { return gram }
func Kilogram() unit.Unit  { return kilogram }

func Milligrams(amount decimal.Decimal) unit.Quantity { return unit.NewQuantity(amount, milligram) }
func Grams(amount decimal.Decimal) unit.Quantity      { return unit.NewQuantity(amount, gram) }
func Kilograms(amount decimal.Decimal) unit.Quantity  { return unit.NewQuantity(amount, kilogram) }

// Units returns every mass unit, metric and imperial, smallest first.
func Units() []unit.Unit {
	return []unit.Unit{milligram, grain, gram, drachm, ounce, pound, kilogram, stone, quarter, hundredweight, ton}
}
