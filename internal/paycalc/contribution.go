package paycalc

import "github.com/shopspring/decimal"

// Contribution line item keys, as stored on payslips.
const (
	KeySSEmployee           = "SS_EMPLOYEE"
	KeyRetirementEmployee   = "RETIREMENT_EMPLOYEE"
	KeyUnemploymentEmployee = "UNEMPLOYMENT_EMPLOYEE"
	KeySSEmployer           = "SS_EMPLOYER"
	KeyRetirementEmployer   = "RETIREMENT_EMPLOYER"
)

type Contributions struct {
	Assiette             decimal.Decimal
	SSEmployee           decimal.Decimal
	RetirementEmployee   decimal.Decimal
	UnemploymentEmployee decimal.Decimal
	SSEmployer           decimal.Decimal
	RetirementEmployer   decimal.Decimal
}

func (c Contributions) TotalEmployee() decimal.Decimal {
	return c.SSEmployee.Add(c.RetirementEmployee).Add(c.UnemploymentEmployee)
}

func (c Contributions) TotalEmployer() decimal.Decimal {
	return c.SSEmployer.Add(c.RetirementEmployer)
}

func (c Contributions) EmployeeMap() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		KeySSEmployee:           c.SSEmployee,
		KeyRetirementEmployee:   c.RetirementEmployee,
		KeyUnemploymentEmployee: c.UnemploymentEmployee,
	}
}

func (c Contributions) EmployerMap() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		KeySSEmployer:         c.SSEmployer,
		KeyRetirementEmployer: c.RetirementEmployer,
	}
}

// ContributionsFromMaps rebuilds the fixed record from stored key/value maps.
// Unknown keys are ignored, missing ones read as zero.
func ContributionsFromMaps(assiette decimal.Decimal, employee, employer map[string]decimal.Decimal) Contributions {
	return Contributions{
		Assiette:             assiette,
		SSEmployee:           employee[KeySSEmployee],
		RetirementEmployee:   employee[KeyRetirementEmployee],
		UnemploymentEmployee: employee[KeyUnemploymentEmployee],
		SSEmployer:           employer[KeySSEmployer],
		RetirementEmployer:   employer[KeyRetirementEmployer],
	}
}

// ComputeContributions applies the CNAS rules to gross. Employees outside
// the scheme, or flagged as not contributing, owe nothing but still report
// the uncapped gross as their base. Only CADRE and GENERAL contribute.
func ComputeContributions(gross decimal.Decimal, scheme CNASScheme, subject bool, rates Rates) Contributions {
	if !subject || (scheme != CNASCadre && scheme != CNASGeneral) {
		return Contributions{Assiette: gross}
	}

	base := gross
	if rates.Ceiling != nil {
		base = decimal.Min(gross, *rates.Ceiling)
	}

	return Contributions{
		Assiette:             base,
		SSEmployee:           percentOf(base, rates.SSEmployee),
		RetirementEmployee:   percentOf(base, rates.RetirementEmployee),
		UnemploymentEmployee: percentOf(base, rates.UnemploymentEmployee),
		SSEmployer:           percentOf(base, rates.SSEmployer),
		RetirementEmployer:   percentOf(base, rates.RetirementEmployer),
	}
}
