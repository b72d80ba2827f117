package company

import "time"

type Company struct {
	Code        string `gorm:"primaryKey;size:64"`
	Name        string `gorm:"size:255;not null"`
	Description string
}

// CompanyInvoice is the invoice projection attached to a company detail:
// id, amt, paid, add_date, paid_date only, never the nested company.
type CompanyInvoice struct {
	ID       int
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}
