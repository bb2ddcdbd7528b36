package unit

import (
	"github.com/shopspring/decimal"

	"github.com/jt0/units/gomerr"
)

// Family groups the units that measure the same dimension. Only units of the same family convert into one another.
type Family string

const (
	Volume Family = "Volume"
	Mass   Family = "Mass"
)

// Precision is the number of decimal places kept when a conversion has to divide.
const Precision int32 = 20

// Unit is an immutable member of a Family. Its ratio expresses how many of the family's base unit one of this
// unit is worth, so the base unit itself has a ratio of 1.
type Unit struct {
	family Family
	name   string
	symbol string
	ratio  decimal.Decimal
}

// New defines a unit. The ratio must be positive; NewRegistry rejects units that are not.
func New(family Family, name, symbol string, ratio decimal.Decimal) Unit {
	return Unit{family, name, symbol, ratio}
}

func (u Unit) Family() Family {
	return u.family
}

func (u Unit) Name() string {
	return u.name
}

func (u Unit) Symbol() string {
	return u.symbol
}

func (u Unit) Ratio() decimal.Decimal {
	return u.ratio
}

// IsZero reports whether u is the zero Unit, i.e. was not created with New.
func (u Unit) IsZero() bool {
	return u.family == ""
}

// ToBase expresses amount of u in the family's base unit.
func (u Unit) ToBase(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(u.ratio)
}

// FromBase expresses amount of the family's base unit in u.
func (u Unit) FromBase(amount decimal.Decimal) decimal.Decimal {
	return amount.DivRound(u.ratio, Precision)
}

// Convert expresses amount of u in the to unit.
func (u Unit) Convert(amount decimal.Decimal, to Unit) (decimal.Decimal, gomerr.Gomerr) {
	return convert(amount, u, to)
}

// ConvertFrom expresses amount of the from unit in u.
func (u Unit) ConvertFrom(amount decimal.Decimal, from Unit) (decimal.Decimal, gomerr.Gomerr) {
	return convert(amount, from, u)
}

func convert(amount decimal.Decimal, from, to Unit) (decimal.Decimal, gomerr.Gomerr) {
	if !from.IsConvertible(to) {
		return decimal.Zero, IncompatibleUnits(from, to)
	}

	if from.ratio.Equal(to.ratio) {
		return amount, nil
	}

	return to.FromBase(from.ToBase(amount)), nil
}

func (u Unit) IsConvertible(other Unit) bool {
	return !u.IsZero() && u.family == other.family
}

// Equal reports whether u and other are the same unit: the same family and the same symbol.
func (u Unit) Equal(other Unit) bool {
	return u.family == other.family && u.symbol == other.symbol
}

func (u Unit) String() string {
	return u.symbol
}
