package mass

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jt0/units/_test/assert"
	"github.com/jt0/units/unit"
)

func TestImperialUnitsAgainstPound(t *testing.T) {
	tests := []struct {
		name   string
		q      unit.Quantity
		pounds string
	}{
		{"Ton", Tons(decimal.NewFromInt(1)), "2240"},
		{"Hundredweight", Hundredweights(decimal.NewFromInt(1)), "112"},
		{"Quarter", Quarters(decimal.NewFromInt(1)), "28"},
		{"Ounce", Ounces(decimal.NewFromInt(16)), "1"},
		{"Drachm", Drachms(decimal.NewFromInt(256)), "1"},
		{"Grain", Grains(decimal.NewFromInt(7000)), "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inPounds, ge := tt.q.ConvertTo(Pound())
			assert.Success(t, ge)
			assert.Equals(t, tt.pounds+" lb", inPounds.String())
		})
	}
}

func TestStoneIsRounded(t *testing.T) {
	c, ge := Stones(decimal.NewFromInt(1)).Compare(Pounds(decimal.NewFromInt(14)))
	assert.Success(t, ge)
	assert.Equals(t, -1, c)
}

func TestMetricUnits(t *testing.T) {
	assert.True(t, Grams(decimal.NewFromInt(1000)).Equal(Kilograms(decimal.NewFromInt(1))))
	assert.True(t, Milligrams(decimal.NewFromInt(1000)).Equal(Grams(decimal.NewFromInt(1))))
}

func TestUnitsAreOrderedAndDistinct(t *testing.T) {
	units := Units()
	symbols := make(map[string]bool, len(units))
	for i, u := range units {
		assert.Equals(t, unit.Mass, u.Family())
		assert.False(t, symbols[u.Symbol()], "duplicate symbol %s", u.Symbol())
		symbols[u.Symbol()] = true
		if i > 0 {
			assert.True(t, units[i-1].Ratio().LessThan(u.Ratio()), "%s should be smaller than %s", units[i-1], u)
		}
	}
}
