// Package paycalc computes Algerian payslips from explicit inputs: contract
// wage and schemes, resolved bonuses, active payroll parameters and tax
// brackets. Nothing in this package touches storage; callers load the
// reference data and decide what to do with the Result.
package paycalc

import "github.com/shopspring/decimal"

type CNASScheme string

const (
	CNASCadre        CNASScheme = "CADRE"
	CNASGeneral      CNASScheme = "GENERAL"
	CNASNonAssujetti CNASScheme = "NON_ASSUJETTI"
)

type FiscalScheme string

const (
	FiscalImposable    FiscalScheme = "IMPOSABLE"
	FiscalExonere      FiscalScheme = "EXONERE"
	FiscalAbattement40 FiscalScheme = "ABATTEMENT_40"
)

// Payroll parameter codes read by the engine.
const (
	CodePlafondCNAS          = "PLAFOND_CNAS"
	CodeSSEmployee           = "TAUX_SECURITE_SOCIALE_SALARIE"
	CodeRetirementEmployee   = "TAUX_RETRAITE_SALARIE"
	CodeUnemploymentEmployee = "TAUX_ASSURANCE_CHOMAGE_SALARIE"
	CodeSSEmployer           = "TAUX_SECURITE_SOCIALE_PATRONALE"
	CodeRetirementEmployer   = "TAUX_RETRAITE_PATRONALE"
)

var hundred = decimal.NewFromInt(100)

// percentOf returns base*rate/100 rounded to centimes.
func percentOf(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred).Round(2)
}
