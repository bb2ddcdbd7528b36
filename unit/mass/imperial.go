package mass

import (
	"github.com/shopspring/decimal"

	"github.com/jt0/units/unit"
)

// Imperial ratios are exact, derived from the international avoirdupois pound of 0.45359237 kg. The stone is
// the exception: it is rounded to 6.35029 kg, so 14 lb is very slightly more than 1 st.
var (
	ton           = unit.New(unit.Mass, "ton", "t", decimal.New(10160469088, -7))
	hundredweight = unit.New(unit.Mass, "hundredweight", "cwt", decimal.New(5080234544, -8))
	quarter       = unit.New(unit.Mass, "quarter", "qtr", decimal.New(1270058636, -8))
	stone         = unit.New(unit.Mass, "stone", "st", decimal.New(635029, -5))
	pound         = unit.New(unit.Mass, "pound", "lb", decimal.New(45359237, -8))
	ounce         = unit.New(unit.Mass, "ounce", "oz", decimal.New(28349523125, -12))
	drachm        = unit.New(unit.Mass, "drachm", "dr", decimal.New(17718451953125, -16))
	grain         = unit.New(unit.Mass, "grain", "gr", decimal.New(6479891, -11))
)

func Ton() unit.Unit           { return ton }
func Hundredweight() unit.Unit { return hundredweight }
func Quarter() unit.Unit       { return quarter }
func Stone() unit.Unit         { return stone }
func Pound() unit.Unit         { return pound }
func Ounce() unit.Unit         { return ounce }
func Drachm() unit.Unit        { return drachm }
func Grain() unit.Unit         { return grain }

func Tons(amount decimal.Decimal) unit.Quantity           { return unit.NewQuantity(amount, ton) }
func Hundredweights(amount decimal.Decimal) unit.Quantity { return unit.NewQuantity(amount, hundredweight) }
func Quarters(amount decimal.Decimal) unit.Quantity       { return unit.NewQuantity(amount, quarter) }
func Stones(amount decimal.Decimal) unit.Quantity         { return unit.NewQuantity(amount, stone) }
func Pounds(amount decimal.Decimal) unit.Quantity         { return unit.NewQuantity(amount, pound) }
func Ounces(amount decimal.Decimal) unit.Quantity         { return unit.NewQuantity(amount, ounce) }
func Drachms(amount decimal.Decimal) unit.Quantity        { return unit.NewQuantity(amount, drachm) }
func Grains(amount decimal.Decimal) unit.Quantity         { return unit.NewQuantity(amount, grain) }
