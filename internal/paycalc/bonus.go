package paycalc

import (
	"time"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyMonthly    Frequency = "MONTHLY"
	FrequencyPonctuelle Frequency = "PONCTUELLE"
)

// BonusAssignment is a bonus attached to an employee. Amount overrides the
// definition; otherwise the definition's fixed amount or percentage of the
// base wage applies.
type BonusAssignment struct {
	Name                 string
	Amount               *decimal.Decimal
	DefinitionAmount     *decimal.Decimal
	DefinitionPercentage *decimal.Decimal
	Frequency            Frequency
	StartDate            time.Time
	EndDate              *time.Time
}

// EligibleOn reports whether the assignment pays in the month starting at
// firstOfMonth. One-off bonuses are never paid by the engine.
func (b BonusAssignment) EligibleOn(firstOfMonth time.Time) bool {
	if b.Frequency != FrequencyMonthly {
		return false
	}
	return activeOn(b.StartDate, b.EndDate, firstOfMonth)
}

func (b BonusAssignment) Resolve(baseWage decimal.Decimal) decimal.Decimal {
	switch {
	case b.Amount != nil:
		return *b.Amount
	case b.DefinitionAmount != nil:
		return *b.DefinitionAmount
	case b.DefinitionPercentage != nil:
		return percentOf(baseWage, *b.DefinitionPercentage)
	default:
		return decimal.Zero
	}
}

type ResolvedBonus struct {
	Name   string
	Amount decimal.Decimal
}

// ResolveBonuses filters assignments down to those eligible in the month
// and prices each one against baseWage.
func ResolveBonuses(assignments []BonusAssignment, baseWage decimal.Decimal, firstOfMonth time.Time) []ResolvedBonus {
	out := make([]ResolvedBonus, 0, len(assignments))
	for _, a := range assignments {
		if !a.EligibleOn(firstOfMonth) {
			continue
		}
		out = append(out, ResolvedBonus{Name: a.Name, Amount: a.Resolve(baseWage)})
	}
	return out
}

// GrossSalary returns the bonus total and baseWage plus that total.
func GrossSalary(baseWage decimal.Decimal, bonuses []ResolvedBonus) (bonusTotal, gross decimal.Decimal) {
	bonusTotal = decimal.Zero
	for _, b := range bonuses {
		bonusTotal = bonusTotal.Add(b.Amount)
	}
	return bonusTotal, baseWage.Add(bonusTotal)
}
