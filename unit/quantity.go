package unit

import (
	"github.com/shopspring/decimal"

	"github.com/jt0/units/gomerr"
)

// Quantity is an immutable amount of some Unit. Operations that combine two quantities convert the second into the
// receiver's unit first, so results are always expressed in the receiver's unit.
type Quantity struct {
	amount decimal.Decimal
	unit   Unit
}

func NewQuantity(amount decimal.Decimal, unit Unit) Quantity {
	return Quantity{amount, unit}
}

func (q Quantity) Amount() decimal.Decimal {
	return q.amount
}

func (q Quantity) Unit() Unit {
	return q.unit
}

func (q Quantity) ConvertTo(unit Unit) (Quantity, gomerr.Gomerr) {
	amount, ge := q.unit.Convert(q.amount, unit)
	if ge != nil {
		return Quantity{}, ge
	}

	return Quantity{amount, unit}, nil
}

func (q Quantity) Add(other Quantity) (Quantity, gomerr.Gomerr) {
	amount, ge := q.unit.ConvertFrom(other.amount, other.unit)
	if ge != nil {
		return Quantity{}, ge
	}

	return Quantity{q.amount.Add(amount), q.unit}, nil
}

func (q Quantity) Subtract(other Quantity) (Quantity, gomerr.Gomerr) {
	return q.Add(other.Negate())
}

func (q Quantity) Multiply(factor decimal.Decimal) Quantity {
	return Quantity{q.amount.Mul(factor), q.unit}
}

func (q Quantity) Divide(divisor decimal.Decimal) (Quantity, gomerr.Gomerr) {
	if divisor.IsZero() {
		return Quantity{}, gomerr.InvalidValue("divisor", divisor.String(), "non-zero")
	}

	return Quantity{q.amount.DivRound(divisor, Precision), q.unit}, nil
}

func (q Quantity) Negate() Quantity {
	return Quantity{q.amount.Neg(), q.unit}
}

// Compare returns -1, 0, or +1 depending on whether q is less than, equal to, or greater than other. Both sides are
// compared in the family's base unit, so a.Compare(b) == -b.Compare(a). Two quantities without a unit compare by
// amount alone.
func (q Quantity) Compare(other Quantity) (int, gomerr.Gomerr) {
	if q.unit.IsZero() && other.unit.IsZero() {
		return q.amount.Cmp(other.amount), nil
	}

	if !q.unit.IsConvertible(other.unit) {
		return 0, IncompatibleUnits(q.unit, other.unit)
	}

	return q.unit.ToBase(q.amount).Cmp(other.unit.ToBase(other.amount)), nil
}

// Equal reports whether q and other measure the same magnitude. Quantities of different families are never equal;
// the zero Quantity equals itself.
func (q Quantity) Equal(other Quantity) bool {
	c, ge := q.Compare(other)
	return ge == nil && c == 0
}

func (q Quantity) IsZero() bool {
	return q.amount.IsZero()
}

func (q Quantity) String() string {
	return q.amount.String() + " " + q.unit.symbol
}

// Sum adds rest to first. The result is expressed in first's unit.
func Sum(first Quantity, rest ...Quantity) (Quantity, gomerr.Gomerr) {
	total := first
	for _, q := range rest {
		var ge gomerr.Gomerr
		if total, ge = total.Add(q); ge != nil {
			return Quantity{}, ge
		}
	}

	return total, nil
}
