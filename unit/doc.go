// Package unit defines units of measure and the quantities expressed in them.
//
// A Unit belongs to a Family and knows its ratio to that family's base unit;
// converting between two units of a family goes through the base unit. Units
// and Quantities are immutable values: every operation returns a new value and
// they are safe to share between goroutines. Amounts are decimal, so
// conversions between units with exactly representable ratios are exact:
//
//   q := unit.NewQuantity(decimal.NewFromInt(1500), volume.Millilitre())
//   l, _ := q.ConvertTo(volume.Litre()) // 1.5 L
//
// The concrete unit sets live in the volume and mass subpackages.
package unit
