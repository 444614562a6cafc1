package payslip

import (
	"time"

	"go-paie/internal/paycalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const StatusDraft = "DRAFT"

// Payslip is keyed by (employee_id, month, year). Month is zero-based.
type Payslip struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_period,priority:1"`
	Employee   *PayslipEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
	Month      int              `gorm:"not null;uniqueIndex:uq_payslip_period,priority:2"`
	Year       int              `gorm:"not null;uniqueIndex:uq_payslip_period,priority:3"`

	BaseSalary                 decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	Bonuses                    decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	BonusLines                 datatypes.JSONType[[]BonusLine]                `gorm:"type:jsonb"`
	GrossSalary                decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	AssietteCotisations        decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	EmployeeContributions      datatypes.JSONType[map[string]decimal.Decimal] `gorm:"type:jsonb;not null"`
	TotalEmployeeContributions decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	TaxableSalary              decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	IncomeTax                  decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	NetSalary                  decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	EmployerContributions      datatypes.JSONType[map[string]decimal.Decimal] `gorm:"type:jsonb;not null"`
	TotalEmployerContributions decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`
	TotalCost                  decimal.Decimal                                `gorm:"type:numeric(14,2);not null"`

	Status    string `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BonusLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type PayslipEmployee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Email     string
}

func (PayslipEmployee) TableName() string {
	return "employees"
}

func (e *PayslipEmployee) FullName() string {
	if e == nil {
		return ""
	}
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}

func (p Payslip) Period() paycalc.Period {
	return paycalc.Period{Month: p.Month, Year: p.Year}
}

// newPayslip flattens an engine result into a DRAFT row.
func newPayslip(employeeID uuid.UUID, period paycalc.Period, r paycalc.Result) *Payslip {
	lines := make([]BonusLine, len(r.BonusLines))
	for i, b := range r.BonusLines {
		lines[i] = BonusLine{Name: b.Name, Amount: b.Amount}
	}

	return &Payslip{
		ID:                         uuid.New(),
		EmployeeID:                 employeeID,
		Month:                      period.Month,
		Year:                       period.Year,
		BaseSalary:                 r.BaseSalary,
		Bonuses:                    r.Bonuses,
		BonusLines:                 datatypes.NewJSONType(lines),
		GrossSalary:                r.GrossSalary,
		AssietteCotisations:        r.Contributions.Assiette,
		EmployeeContributions:      datatypes.NewJSONType(r.Contributions.EmployeeMap()),
		TotalEmployeeContributions: r.TotalEmployeeContributions,
		TaxableSalary:              r.TaxableSalary,
		IncomeTax:                  r.IncomeTax,
		NetSalary:                  r.NetSalary,
		EmployerContributions:      datatypes.NewJSONType(r.Contributions.EmployerMap()),
		TotalEmployerContributions: r.TotalEmployerContributions,
		TotalCost:                  r.TotalCost,
		Status:                     StatusDraft,
	}
}

// Result rebuilds the engine view of a stored payslip for display.
func (p Payslip) Result() paycalc.Result {
	stored := p.BonusLines.Data()
	lines := make([]paycalc.ResolvedBonus, len(stored))
	for i, b := range stored {
		lines[i] = paycalc.ResolvedBonus{Name: b.Name, Amount: b.Amount}
	}

	return paycalc.Result{
		BaseSalary:                 p.BaseSalary,
		Bonuses:                    p.Bonuses,
		BonusLines:                 lines,
		GrossSalary:                p.GrossSalary,
		Contributions:              paycalc.ContributionsFromMaps(p.AssietteCotisations, p.EmployeeContributions.Data(), p.EmployerContributions.Data()),
		TotalEmployeeContributions: p.TotalEmployeeContributions,
		TaxableSalary:              p.TaxableSalary,
		IncomeTax:                  p.IncomeTax,
		NetSalary:                  p.NetSalary,
		TotalEmployerContributions: p.TotalEmployerContributions,
		TotalCost:                  p.TotalCost,
	}
}
