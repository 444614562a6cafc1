package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName        string    `gorm:"type:varchar(120);not null"`
	LastName         string    `gorm:"type:varchar(120);not null"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Status           string    `gorm:"type:varchar(20);not null;index"`
	CNASContribution bool      `gorm:"column:cnas_contribution;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}
