package contract

import (
	"context"
	"errors"

	contracterrors "go-paie/internal/contract/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=contract_repo.go -destination=mock/contract_repo_mock.go -package=mock
type Repository interface {
	FindActiveByEmployee(ctx context.Context, employeeID string) (*Contract, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindActiveByEmployee returns the most recently started RUNNING contract.
// Several RUNNING contracts for one employee is a data error; the latest one
// wins so the calculation stays deterministic.
func (r *repository) FindActiveByEmployee(ctx context.Context, employeeID string) (*Contract, error) {
	var c Contract
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusRunning).
		Order("start_date DESC").
		Order("created_at DESC").
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, contracterrors.ErrNoActiveContract
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
