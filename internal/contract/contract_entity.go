package contract

import (
	"time"

	"go-paie/internal/paycalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusRunning   = "RUNNING"
	StatusEnded     = "ENDED"
	StatusSuspended = "SUSPENDED"
)

type Contract struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID            `gorm:"type:uuid;not null;index:idx_contract_employee_status"`
	Wage         decimal.Decimal      `gorm:"type:numeric(14,2);not null"`
	CNASScheme   paycalc.CNASScheme   `gorm:"column:cnas_scheme;type:varchar(20);not null"`
	FiscalScheme paycalc.FiscalScheme `gorm:"column:fiscal_scheme;type:varchar(20);not null"`
	Status       string               `gorm:"type:varchar(20);not null;index:idx_contract_employee_status"`
	StartDate    time.Time            `gorm:"type:date;not null"`
	EndDate      *time.Time           `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
