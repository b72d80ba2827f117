package invoice

import "time"

type Invoice struct {
	ID       int       `gorm:"primaryKey"`
	CompCode string    `gorm:"size:64;not null"`
	Amt      float64   `gorm:"not null"`
	Paid     bool      `gorm:"not null;default:false"`
	AddDate  time.Time `gorm:"not null;default:now()"`
	PaidDate *time.Time
}

// InvoiceCompany is the joined row for an invoice detail: the invoice plus
// its owning company's columns.
type InvoiceCompany struct {
	ID          int
	Amt         float64
	Paid        bool
	AddDate     time.Time
	PaidDate    *time.Time
	Code        string
	Name        string
	Description string
}

// UpdatedInvoice is the row returned by the conditional payment update.
// NewlyPaid is true only when this statement set paid_date, which is what
// drives the invoice.paid event.
type UpdatedInvoice struct {
	ID        int
	CompCode  string
	Amt       float64
	Paid      bool
	AddDate   time.Time
	PaidDate  *time.Time
	NewlyPaid bool
}
