package paycalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// Parameter is one dated value of a payroll parameter code.
type Parameter struct {
	Code      string
	Value     decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time
}

func (p Parameter) ActiveOn(day time.Time) bool {
	return activeOn(p.StartDate, p.EndDate, day)
}

// Parameters is the code -> value lookup active on one evaluation date.
type Parameters map[string]decimal.Decimal

// ActiveParameters keeps the parameters whose window covers day. Should two
// values for a code overlap, the most recently started one wins.
func ActiveParameters(all []Parameter, day time.Time) Parameters {
	out := make(Parameters, len(all))
	started := make(map[string]time.Time, len(all))
	for _, p := range all {
		if !p.ActiveOn(day) {
			continue
		}
		if prev, ok := started[p.Code]; ok && prev.After(p.StartDate) {
			continue
		}
		out[p.Code] = p.Value
		started[p.Code] = p.StartDate
	}
	return out
}

func (p Parameters) Lookup(code string) (decimal.Decimal, bool) {
	v, ok := p[code]
	return v, ok
}

func (p Parameters) Value(code string, fallback decimal.Decimal) decimal.Decimal {
	if v, ok := p[code]; ok {
		return v
	}
	return fallback
}

// Defaults is the fallback policy applied when a parameter code has no
// active value. Rates missing from Rates fall back to zero; a nil Ceiling
// means contributions are not capped.
type Defaults struct {
	Ceiling *decimal.Decimal
	Rates   map[string]decimal.Decimal
}

// StandardDefaults treats every missing rate as 0 and a missing
// PLAFOND_CNAS as no ceiling.
func StandardDefaults() Defaults {
	return Defaults{}
}

// SimulationDefaults carries the literal employee rates the payroll
// simulation has always assumed when the parameter table is empty.
func SimulationDefaults() Defaults {
	return Defaults{
		Rates: map[string]decimal.Decimal{
			CodeSSEmployee:           decimal.NewFromInt(9),
			CodeRetirementEmployee:   decimal.NewFromInt(9),
			CodeUnemploymentEmployee: decimal.RequireFromString("1.5"),
		},
	}
}

func (d Defaults) rate(code string) decimal.Decimal {
	if v, ok := d.Rates[code]; ok {
		return v
	}
	return decimal.Zero
}

// Rates is the resolved contribution configuration for one calculation.
type Rates struct {
	Ceiling              *decimal.Decimal
	SSEmployee           decimal.Decimal
	RetirementEmployee   decimal.Decimal
	UnemploymentEmployee decimal.Decimal
	SSEmployer           decimal.Decimal
	RetirementEmployer   decimal.Decimal
}

func (d Defaults) Resolve(p Parameters) Rates {
	r := Rates{
		SSEmployee:           p.Value(CodeSSEmployee, d.rate(CodeSSEmployee)),
		RetirementEmployee:   p.Value(CodeRetirementEmployee, d.rate(CodeRetirementEmployee)),
		UnemploymentEmployee: p.Value(CodeUnemploymentEmployee, d.rate(CodeUnemploymentEmployee)),
		SSEmployer:           p.Value(CodeSSEmployer, d.rate(CodeSSEmployer)),
		RetirementEmployer:   p.Value(CodeRetirementEmployer, d.rate(CodeRetirementEmployer)),
		Ceiling:              d.Ceiling,
	}
	if v, ok := p.Lookup(CodePlafondCNAS); ok {
		r.Ceiling = &v
	}
	return r
}
