package payslip

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertColumns are rewritten when a DRAFT already exists for the period.
var upsertColumns = []string{
	"base_salary",
	"bonuses",
	"bonus_lines",
	"gross_salary",
	"assiette_cotisations",
	"employee_contributions",
	"total_employee_contributions",
	"taxable_salary",
	"income_tax",
	"net_salary",
	"employer_contributions",
	"total_employer_contributions",
	"total_cost",
	"status",
	"updated_at",
}

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, payslip *Payslip) (bool, error)
	FindAllByPeriod(ctx context.Context, month, year int) ([]Payslip, error)
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// Upsert inserts the payslip or overwrites the DRAFT stored for the same
// period. It reports false when the stored row is no longer a DRAFT; that
// row is left untouched. On success payslip.ID holds the stored row's id.
func (r *repository) Upsert(ctx context.Context, payslip *Payslip) (bool, error) {
	res := r.conn(ctx).
		Omit(clause.Associations).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "employee_id"}, {Name: "month"}, {Name: "year"}},
				Where: clause.Where{Exprs: []clause.Expression{
					clause.Eq{Column: clause.Column{Table: "payslips", Name: "status"}, Value: StatusDraft},
				}},
				DoUpdates: clause.AssignmentColumns(upsertColumns),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}}},
		).
		Create(payslip)
	if res.Error != nil {
		return false, mapRepositoryError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) FindAllByPeriod(ctx context.Context, month, year int) ([]Payslip, error) {
	var payslips []Payslip
	err := r.conn(ctx).
		Preload("Employee").
		Where("month = ? AND year = ?", month, year).
		Order("created_at ASC").
		Find(&payslips).Error
	return payslips, mapRepositoryError(err)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.conn(ctx).
		Preload("Employee").
		First(&payslip, "id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &payslip, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
	var payslip Payslip
	err := r.conn(ctx).
		Preload("Employee").
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Take(&payslip).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &payslip, nil
}
