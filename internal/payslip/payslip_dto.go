package payslip

import "github.com/shopspring/decimal"

type GeneratePayslipRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      *int   `json:"month" binding:"required,min=0,max=11"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
}

type GenerateByEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Month *int   `json:"month" binding:"required,min=0,max=11"`
	Year  int    `json:"year" binding:"required,min=1900,max=9999"`
}

type BatchRequest struct {
	Month *int `json:"month" binding:"required,min=0,max=11"`
	Year  int  `json:"year" binding:"required,min=1900,max=9999"`
}

// BatchAsyncRequest queues generation for one employee (EmployeeID or Email)
// or for every active employee when both are empty.
type BatchAsyncRequest struct {
	Month      *int   `json:"month" binding:"required,min=0,max=11"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	Email      string `json:"email" binding:"omitempty,email"`
}

type SimulatedBonus struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// SimulateRequest prices either a stored employee (EmployeeID) or an ad hoc
// contract described by the remaining fields.
type SimulateRequest struct {
	EmployeeID       string           `json:"employee_id" binding:"omitempty,uuid"`
	Month            *int             `json:"month" binding:"required,min=0,max=11"`
	Year             int              `json:"year" binding:"required,min=1900,max=9999"`
	Wage             *decimal.Decimal `json:"wage"`
	CNASScheme       string           `json:"cnas_scheme" binding:"omitempty,oneof=CADRE GENERAL NON_ASSUJETTI"`
	FiscalScheme     string           `json:"fiscal_scheme" binding:"omitempty,oneof=IMPOSABLE EXONERE ABATTEMENT_40"`
	CNASContribution *bool            `json:"cnas_contribution"`
	Bonuses          []SimulatedBonus `json:"bonuses" binding:"omitempty,dive"`
}

type PeriodQuery struct {
	Month *int `form:"month" binding:"required,min=0,max=11"`
	Year  int  `form:"year" binding:"required,min=1900,max=9999"`
}

type GenerateResponse struct {
	Generated  bool   `json:"generated"`
	EmployeeID string `json:"employee_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

type BatchSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

type BatchAcceptedResponse struct {
	RequestID string `json:"request_id"`
	EventID   string `json:"event_id"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Status    string `json:"status"`
}

type PayslipResponse struct {
	ID                         string                     `json:"id,omitempty"`
	EmployeeID                 string                     `json:"employee_id,omitempty"`
	EmployeeName               string                     `json:"employee_name,omitempty"`
	Month                      int                        `json:"month"`
	Year                       int                        `json:"year"`
	Period                     string                     `json:"period"`
	BaseSalary                 decimal.Decimal            `json:"base_salary"`
	Bonuses                    decimal.Decimal            `json:"bonuses"`
	BonusLines                 []BonusLine                `json:"bonus_lines"`
	GrossSalary                decimal.Decimal            `json:"gross_salary"`
	AssietteCotisations        decimal.Decimal            `json:"assiette_cotisations"`
	EmployeeContributions      map[string]decimal.Decimal `json:"employee_contributions"`
	TotalEmployeeContributions decimal.Decimal            `json:"total_employee_contributions"`
	TaxableSalary              decimal.Decimal            `json:"taxable_salary"`
	IncomeTax                  decimal.Decimal            `json:"income_tax"`
	NetSalary                  decimal.Decimal            `json:"net_salary"`
	EmployerContributions      map[string]decimal.Decimal `json:"employer_contributions"`
	TotalEmployerContributions decimal.Decimal            `json:"total_employer_contributions"`
	TotalCost                  decimal.Decimal            `json:"total_cost"`
	Status                     string                     `json:"status"`
	CreatedAt                  *string                    `json:"created_at,omitempty"`
	UpdatedAt                  *string                    `json:"updated_at,omitempty"`
}

type BreakdownLine struct {
	Section   string          `json:"section"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

type BreakdownResponse struct {
	PayslipID    string          `json:"payslip_id,omitempty"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Period       string          `json:"period"`
	Lines        []BreakdownLine `json:"lines"`
}

type SimulationResponse struct {
	Payslip   PayslipResponse `json:"payslip"`
	Breakdown []BreakdownLine `json:"breakdown"`
}
