package payrollparam

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payrollparam_repo.go -destination=mock/payrollparam_repo_mock.go -package=mock
type Repository interface {
	FindActiveParameters(ctx context.Context, on time.Time) ([]PayrollParameter, error)
	FindActiveTaxBrackets(ctx context.Context, on time.Time) ([]TaxBracket, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveParameters(ctx context.Context, on time.Time) ([]PayrollParameter, error) {
	var params []PayrollParameter
	err := r.db.WithContext(ctx).
		Where("start_date <= ?", on).
		Where("end_date IS NULL OR end_date >= ?", on).
		Order("code ASC, start_date ASC").
		Find(&params).Error
	return params, err
}

func (r *repository) FindActiveTaxBrackets(ctx context.Context, on time.Time) ([]TaxBracket, error) {
	var brackets []TaxBracket
	err := r.db.WithContext(ctx).
		Where("start_date <= ?", on).
		Where("end_date IS NULL OR end_date >= ?", on).
		Order("ordre ASC").
		Find(&brackets).Error
	return brackets, err
}
