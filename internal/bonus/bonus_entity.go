package bonus

import (
	"time"

	"go-paie/internal/paycalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Definition holds either a fixed Amount or a Percentage of the base wage.
type Definition struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name       string           `gorm:"type:varchar(120);not null"`
	Amount     *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Percentage *decimal.Decimal `gorm:"type:numeric(7,4)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Definition) TableName() string {
	return "bonus_definitions"
}

type Assignment struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	BonusDefinitionID uuid.UUID         `gorm:"type:uuid;not null"`
	Definition        Definition        `gorm:"foreignKey:BonusDefinitionID;references:ID"`
	Amount            *decimal.Decimal  `gorm:"type:numeric(14,2)"`
	Frequency         paycalc.Frequency `gorm:"type:varchar(20);not null"`
	StartDate         time.Time         `gorm:"type:date;not null"`
	EndDate           *time.Time        `gorm:"type:date"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Assignment) TableName() string {
	return "bonus_assignments"
}

func (a Assignment) ToCalc() paycalc.BonusAssignment {
	return paycalc.BonusAssignment{
		Name:                 a.Definition.Name,
		Amount:               a.Amount,
		DefinitionAmount:     a.Definition.Amount,
		DefinitionPercentage: a.Definition.Percentage,
		Frequency:            a.Frequency,
		StartDate:            a.StartDate,
		EndDate:              a.EndDate,
	}
}

func ToCalc(assignments []Assignment) []paycalc.BonusAssignment {
	out := make([]paycalc.BonusAssignment, len(assignments))
	for i, a := range assignments {
		out[i] = a.ToCalc()
	}
	return out
}
