package bonus

import (
	"context"
	"time"

	"go-paie/internal/paycalc"

	"gorm.io/gorm"
)

//go:generate mockgen -source=bonus_repo.go -destination=mock/bonus_repo_mock.go -package=mock
type Repository interface {
	FindMonthlyByEmployee(ctx context.Context, employeeID string, on time.Time) ([]Assignment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindMonthlyByEmployee loads the MONTHLY assignments whose window covers on,
// with their definition.
func (r *repository) FindMonthlyByEmployee(ctx context.Context, employeeID string, on time.Time) ([]Assignment, error) {
	var assignments []Assignment
	err := r.db.WithContext(ctx).
		Preload("Definition").
		Where("employee_id = ?", employeeID).
		Where("frequency = ?", paycalc.FrequencyMonthly).
		Where("start_date <= ?", on).
		Where("end_date IS NULL OR end_date >= ?", on).
		Order("start_date ASC").
		Find(&assignments).Error
	return assignments, err
}
