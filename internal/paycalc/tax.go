package paycalc

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

var abatementFactor = decimal.RequireFromString("0.6")

// TaxBracket is one IRG band. FixedAmount is the tax already due on the
// income below Min; Max nil means unbounded.
type TaxBracket struct {
	Min         decimal.Decimal
	Max         *decimal.Decimal
	Rate        decimal.Decimal
	FixedAmount decimal.Decimal
	Ordre       int
	StartDate   time.Time
	EndDate     *time.Time
}

func (b TaxBracket) ActiveOn(day time.Time) bool {
	return activeOn(b.StartDate, b.EndDate, day)
}

// Contains uses a strict lower bound and an inclusive upper bound: an income
// equal to Min belongs to the previous bracket.
func (b TaxBracket) Contains(taxable decimal.Decimal) bool {
	if !taxable.GreaterThan(b.Min) {
		return false
	}
	return b.Max == nil || taxable.LessThanOrEqual(*b.Max)
}

// Tax is the bracket formula rounded to centimes.
func (b TaxBracket) Tax(taxable decimal.Decimal) decimal.Decimal {
	return b.exactTax(taxable).Round(2)
}

func (b TaxBracket) exactTax(taxable decimal.Decimal) decimal.Decimal {
	return b.FixedAmount.Add(taxable.Sub(b.Min).Mul(b.Rate).Div(hundred))
}

// ActiveBrackets returns the brackets valid on day in ascending ordre.
func ActiveBrackets(all []TaxBracket, day time.Time) []TaxBracket {
	out := make([]TaxBracket, 0, len(all))
	for _, b := range all {
		if b.ActiveOn(day) {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b TaxBracket) int { return a.Ordre - b.Ordre })
	return out
}

// BracketTax evaluates brackets in the order given and stops at the first
// one containing taxable. No match means no tax.
func BracketTax(taxable decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	return exactBracketTax(taxable, brackets).Round(2)
}

func exactBracketTax(taxable decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	for _, b := range brackets {
		if b.Contains(taxable) {
			return b.exactTax(taxable)
		}
	}
	return decimal.Zero
}

// IncomeTax applies the abatement to the unrounded bracket tax and rounds
// once, so ABATTEMENT_40 is exactly 0.6 of the unrounded IMPOSABLE figure.
func IncomeTax(taxable decimal.Decimal, scheme FiscalScheme, brackets []TaxBracket) decimal.Decimal {
	tax := exactBracketTax(taxable, brackets)
	switch scheme {
	case FiscalExonere:
		return decimal.Zero
	case FiscalAbattement40:
		tax = tax.Mul(abatementFactor)
	}
	return tax.Round(2)
}
