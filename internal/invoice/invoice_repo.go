package invoice

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=invoice_repo.go -destination=mock/invoice_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]Invoice, error)
	FindWithCompany(ctx context.Context, id int) (*InvoiceCompany, error)
	Create(ctx context.Context, inv *Invoice) error
	UpdatePayment(ctx context.Context, id int, amt float64, paid bool) (*UpdatedInvoice, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
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

func (r *repository) FindAll(ctx context.Context) ([]Invoice, error) {
	var invs []Invoice
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&invs).Error
	return invs, err
}

func (r *repository) FindWithCompany(ctx context.Context, id int) (*InvoiceCompany, error) {
	var row InvoiceCompany
	res := r.db.WithContext(ctx).Raw(`
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON i.comp_code = c.code
		WHERE i.id = ?
	`, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) Create(ctx context.Context, inv *Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

// UpdatePayment replaces amt and paid and derives paid_date in the same
// statement, so two concurrent updates cannot race on a stale read:
//   - paid=false always clears paid_date
//   - paid=true stamps now() only when the invoice was unpaid
//   - otherwise the existing paid_date is preserved
// now() is stable within the statement, so comparing the returned paid_date
// against it tells us whether this statement set it.
func (r *repository) UpdatePayment(ctx context.Context, id int, amt float64, paid bool) (*UpdatedInvoice, error) {
	var row UpdatedInvoice
	res := r.db.WithContext(ctx).Raw(`
		UPDATE invoices
		SET amt = ?,
		    paid = ?,
		    paid_date = CASE
		        WHEN NOT ? THEN NULL
		        WHEN paid_date IS NULL THEN now()
		        ELSE paid_date
		    END
		WHERE id = ?
		RETURNING id, comp_code, amt, paid, add_date, paid_date,
		          (paid AND paid_date = now()) AS newly_paid
	`, amt, paid, paid, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) DeleteByID(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Invoice{})
	return res.RowsAffected, res.Error
}
