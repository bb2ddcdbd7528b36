package unit_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jt0/units/_test/assert"
	"github.com/jt0/units/unit"
	"github.com/jt0/units/unit/mass"
	"github.com/jt0/units/unit/volume"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		from     unit.Unit
		to       unit.Unit
		expected string
	}{
		{"MillilitresToLitres", "1500", volume.Millilitre(), volume.Litre(), "1.5"},
		{"LitresToMillilitres", "0.25", volume.Litre(), volume.Millilitre(), "250"},
		{"SameUnit", "7.125", volume.Litre(), volume.Litre(), "7.125"},
		{"PoundsToOunces", "1", mass.Pound(), mass.Ounce(), "16"},
		{"PoundsToGrains", "1", mass.Pound(), mass.Grain(), "7000"},
		{"OuncesToDrachms", "1", mass.Ounce(), mass.Drachm(), "16"},
		{"TonsToHundredweights", "1", mass.Ton(), mass.Hundredweight(), "20"},
		{"HundredweightsToQuarters", "1", mass.Hundredweight(), mass.Quarter(), "4"},
		{"KilogramsToGrams", "2.5", mass.Kilogram(), mass.Gram(), "2500"},
		{"PoundsToKilograms", "10", mass.Pound(), mass.Kilogram(), "4.5359237"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted, ge := tt.from.Convert(d(tt.amount), tt.to)
			assert.Success(t, ge)
			assert.True(t, converted.Equal(d(tt.expected)), "expected %s, got %s", tt.expected, converted)

			back, ge := tt.to.ConvertFrom(converted, tt.from)
			assert.Success(t, ge)
			assert.True(t, back.Equal(d(tt.amount)), "round trip: expected %s, got %s", tt.amount, back)
		})
	}
}

func TestConvertAcrossFamiliesFails(t *testing.T) {
	_, ge := volume.Litre().Convert(d("1"), mass.Kilogram())
	assert.ErrorType(t, ge, new(unit.IncompatibleUnitsError))

	iue := ge.(*unit.IncompatibleUnitsError)
	assert.True(t, iue.From.Equal(volume.Litre()))
	assert.True(t, iue.To.Equal(mass.Kilogram()))
	assert.Equals(t, unit.Mass, iue.Attribute("ToFamily"))
}

func TestZeroUnit(t *testing.T) {
	var zero unit.Unit
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsConvertible(zero))
	assert.False(t, volume.Litre().IsConvertible(zero))

	_, ge := zero.Convert(d("1"), zero)
	assert.ErrorType(t, ge, new(unit.IncompatibleUnitsError))
}

func TestEqual(t *testing.T) {
	assert.True(t, volume.Litre().Equal(unit.New(unit.Volume, "liter", "L", d("1"))), "units with the same family and symbol are equal")
	assert.False(t, volume.Litre().Equal(unit.New(unit.Mass, "litre", "L", d("1"))), "units of different families are not equal")
	assert.False(t, mass.Gram().Equal(mass.Kilogram()))
}

func TestString(t *testing.T) {
	assert.Equals(t, "mL", volume.Millilitre().String())
	assert.Equals(t, "cwt", mass.Hundredweight().String())
}

func TestConvertBetweenUnitsSharingASymbol(t *testing.T) {
	cup := unit.New(unit.Volume, "cup", "c", d("0.25"))
	metricCup := unit.New(unit.Volume, "metric cup", "c", d("0.24"))

	converted, ge := cup.Convert(d("24"), metricCup)
	assert.Success(t, ge)
	assert.True(t, converted.Equal(d("25")), "expected 25, got %s", converted)
}
