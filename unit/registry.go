package unit

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jt0/units/gomerr"
)

// Registry indexes a fixed set of units by symbol and by name. It is read-only once built and so may be shared
// freely between goroutines.
type Registry struct {
	bySymbol map[string]Unit
	byName   map[string]Unit
	byFamily map[Family][]Unit
}

// NewRegistry indexes units. Every problem found (an undefined or non-positive-ratio unit, or a symbol or name
// claimed by two different units) is reported together as a batch of ConfigurationErrors. Names are compared
// ignoring case. Listing the same unit more than once is not an error.
func NewRegistry(units ...Unit) (*Registry, gomerr.Gomerr) {
	if len(units) == 0 {
		return nil, gomerr.Configuration("a registry requires at least one unit")
	}

	r := &Registry{
		bySymbol: make(map[string]Unit, len(units)),
		byName:   make(map[string]Unit, len(units)),
		byFamily: make(map[Family][]Unit),
	}

	var errors []gomerr.Gomerr
	for _, u := range units {
		if ge := validate(u); ge != nil {
			errors = append(errors, ge)
			continue
		}

		if existing, ok := r.bySymbol[u.symbol]; ok {
			if !sameDefinition(existing, u) {
				errors = append(errors, gomerr.Configuration("symbol is already registered to a different unit").AddAttributes("Symbol", u.symbol, "Existing", existing.name, "Conflicting", u.name))
			}
			continue
		}
		nameKey := strings.ToLower(u.name)
		if existing, ok := r.byName[nameKey]; ok {
			errors = append(errors, gomerr.Configuration("name is already registered to a different unit").AddAttributes("Name", u.name, "Existing", existing.name+" ("+existing.symbol+")", "Conflicting", u.symbol))
			continue
		}

		r.bySymbol[u.symbol] = u
		r.byName[nameKey] = u
		r.byFamily[u.family] = append(r.byFamily[u.family], u)
	}

	if ge := gomerr.Batcher(errors); ge != nil {
		return nil, ge
	}

	for _, familyUnits := range r.byFamily {
		slices.SortStableFunc(familyUnits, func(a, b Unit) int {
			return a.ratio.Cmp(b.ratio)
		})
	}

	return r, nil
}

func validate(u Unit) gomerr.Gomerr {
	switch {
	case u.IsZero():
		return gomerr.Configuration("unit has no family")
	case u.name == "" || u.symbol == "":
		return gomerr.Configuration("unit requires both a name and a symbol").AddAttributes("Name", u.name, "Symbol", u.symbol)
	case !u.ratio.IsPositive():
		return gomerr.Configuration("unit ratio must be positive").AddAttributes("Symbol", u.symbol, "Ratio", u.ratio.String())
	}
	return nil
}

func sameDefinition(a, b Unit) bool {
	return a.family == b.family && a.name == b.name && a.symbol == b.symbol && a.ratio.Equal(b.ratio)
}

// Lookup returns the unit with the given symbol. Symbols are case-sensitive ("mL" and "ml" differ).
func (r *Registry) Lookup(symbol string) (Unit, gomerr.Gomerr) {
	if u, ok := r.bySymbol[symbol]; ok {
		return u, nil
	}

	return Unit{}, UnrecognizedUnit(symbol)
}

// LookupName returns the unit with the given name, ignoring case.
func (r *Registry) LookupName(name string) (Unit, gomerr.Gomerr) {
	if u, ok := r.byName[strings.ToLower(name)]; ok {
		return u, nil
	}

	return Unit{}, UnrecognizedUnit(name)
}

// Units returns the family's units ordered from smallest to largest.
func (r *Registry) Units(family Family) []Unit {
	return slices.Clone(r.byFamily[family])
}

func (r *Registry) Families() []Family {
	families := make([]Family, 0, len(r.byFamily))
	for f := range r.byFamily {
		families = append(families, f)
	}
	slices.Sort(families)

	return families
}

// ParseQuantity reads a quantity written as an amount and a unit symbol separated by whitespace, e.g. "1.5 L".
func (r *Registry) ParseQuantity(s string) (Quantity, gomerr.Gomerr) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Quantity{}, gomerr.MalformedValue("quantity", s).WithReason("expected '<amount> <symbol>'")
	}

	amount, err := decimal.NewFromString(fields[0])
	if err != nil {
		return Quantity{}, gomerr.MalformedValue("amount", fields[0]).Wrap(err)
	}

	u, ge := r.Lookup(fields[1])
	if ge != nil {
		return Quantity{}, ge
	}

	return Quantity{amount, u}, nil
}
