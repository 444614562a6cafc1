package payrollparam

import (
	"time"

	"go-paie/internal/paycalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollParameter struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code      string          `gorm:"type:varchar(64);not null;index"`
	Valeur    decimal.Decimal `gorm:"column:valeur;type:numeric(14,4);not null"`
	StartDate time.Time       `gorm:"type:date;not null"`
	EndDate   *time.Time      `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaxBracket struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	MinAmount   decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	MaxAmount   *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Rate        decimal.Decimal  `gorm:"type:numeric(7,4);not null"`
	FixedAmount decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	Ordre       int              `gorm:"not null"`
	StartDate   time.Time        `gorm:"type:date;not null"`
	EndDate     *time.Time       `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p PayrollParameter) ToCalc() paycalc.Parameter {
	return paycalc.Parameter{
		Code:      p.Code,
		Value:     p.Valeur,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

func (b TaxBracket) ToCalc() paycalc.TaxBracket {
	return paycalc.TaxBracket{
		Min:         b.MinAmount,
		Max:         b.MaxAmount,
		Rate:        b.Rate,
		FixedAmount: b.FixedAmount,
		Ordre:       b.Ordre,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
	}
}
