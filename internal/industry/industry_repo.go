package industry

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=industry_repo.go -destination=mock/industry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAllWithCompanies(ctx context.Context) ([]IndustryCompanyRow, error)
	Create(ctx context.Context, ind *Industry) error
	IndustryExists(ctx context.Context, code string) (bool, error)
	CompanyExists(ctx context.Context, code string) (bool, error)
	CreateAssociation(ctx context.Context, assoc *CompanyIndustry) error
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

// FindAllWithCompanies returns every industry with its member company codes
// in one joined query instead of a query per industry.
func (r *repository) FindAllWithCompanies(ctx context.Context) ([]IndustryCompanyRow, error) {
	var rows []IndustryCompanyRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.code, i.industry, ci.comp_code
		FROM industries i
		LEFT JOIN companies_industries ci ON ci.ind_code = i.code
		ORDER BY i.code, ci.comp_code
	`).Scan(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, ind *Industry) error {
	return r.db.WithContext(ctx).Create(ind).Error
}

func (r *repository) IndustryExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM industries WHERE code = ?)`, code).
		Scan(&exists).Error
	return exists, err
}

func (r *repository) CompanyExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM companies WHERE code = ?)`, code).
		Scan(&exists).Error
	return exists, err
}

func (r *repository) CreateAssociation(ctx context.Context, assoc *CompanyIndustry) error {
	return r.db.WithContext(ctx).Create(assoc).Error
}
