package paycalc

import "github.com/shopspring/decimal"

// Input is everything one payslip calculation needs. Brackets must already
// be the active set in ascending ordre (see ActiveBrackets).
type Input struct {
	BaseWage         decimal.Decimal
	CNASScheme       CNASScheme
	FiscalScheme     FiscalScheme
	CNASContribution bool
	Bonuses          []ResolvedBonus
	Parameters       Parameters
	Brackets         []TaxBracket
}

type Result struct {
	BaseSalary                 decimal.Decimal
	Bonuses                    decimal.Decimal
	BonusLines                 []ResolvedBonus
	GrossSalary                decimal.Decimal
	Contributions              Contributions
	TotalEmployeeContributions decimal.Decimal
	TaxableSalary              decimal.Decimal
	IncomeTax                  decimal.Decimal
	NetSalary                  decimal.Decimal
	TotalEmployerContributions decimal.Decimal
	TotalCost                  decimal.Decimal
}

type Engine struct {
	defaults Defaults
}

func NewEngine(defaults Defaults) *Engine {
	return &Engine{defaults: defaults}
}

func (e *Engine) Defaults() Defaults {
	return e.defaults
}

// Compute runs gross, contributions and tax in sequence. It holds no state
// between calls and is safe for concurrent use.
func (e *Engine) Compute(in Input) Result {
	bonusTotal, gross := GrossSalary(in.BaseWage, in.Bonuses)

	rates := e.defaults.Resolve(in.Parameters)
	contrib := ComputeContributions(gross, in.CNASScheme, in.CNASContribution, rates)
	employeeTotal := contrib.TotalEmployee()
	employerTotal := contrib.TotalEmployer()

	taxable := gross.Sub(employeeTotal)
	tax := IncomeTax(taxable, in.FiscalScheme, in.Brackets)

	return Result{
		BaseSalary:                 in.BaseWage,
		Bonuses:                    bonusTotal,
		BonusLines:                 in.Bonuses,
		GrossSalary:                gross,
		Contributions:              contrib,
		TotalEmployeeContributions: employeeTotal,
		TaxableSalary:              taxable,
		IncomeTax:                  tax,
		NetSalary:                  taxable.Sub(tax),
		TotalEmployerContributions: employerTotal,
		TotalCost:                  gross.Add(employerTotal),
	}
}
