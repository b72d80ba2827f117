package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]Company, error)
	FindByCode(ctx context.Context, code string) (*Company, error)
	FindInvoices(ctx context.Context, code string) ([]CompanyInvoice, error)
	FindIndustryNames(ctx context.Context, code string) ([]string, error)
	Create(ctx context.Context, comp *Company) error
	UpdateByCode(ctx context.Context, lookupCode string, comp *Company) (int64, error)
	DeleteByCode(ctx context.Context, code string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var comps []Company
	err := r.db.WithContext(ctx).
		Order("code").
		Find(&comps).Error
	return comps, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).
		First(&comp, "code = ?", code).Error
	return &comp, err
}

func (r *repository) FindInvoices(ctx context.Context, code string) ([]CompanyInvoice, error) {
	var invs []CompanyInvoice
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, amt, paid, add_date, paid_date
		FROM invoices
		WHERE comp_code = ?
		ORDER BY id
	`, code).Scan(&invs).Error
	return invs, err
}

func (r *repository) FindIndustryNames(ctx context.Context, code string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.industry
		FROM industries i
		JOIN companies_industries ci ON ci.ind_code = i.code
		WHERE ci.comp_code = ?
		ORDER BY i.industry
	`, code).Scan(&names).Error
	return names, err
}

func (r *repository) Create(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

// UpdateByCode replaces the row selected by lookupCode with comp, including
// its primary key. Returns the number of rows matched so callers can decide
// the not-found case.
func (r *repository) UpdateByCode(ctx context.Context, lookupCode string, comp *Company) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Company{}).
		Where("code = ?", lookupCode).
		Updates(map[string]any{
			"code":        comp.Code,
			"name":        comp.Name,
			"description": comp.Description,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&Company{})
	return res.RowsAffected, res.Error
}
