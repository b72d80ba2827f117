package company

import "time"

type CreateCompanyRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCompanyRequest replaces the full row. The route parameter selects
// the row; Code is the row's new identity and may differ from it.
type UpdateCompanyRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type InvoiceSummary struct {
	ID       int        `json:"id"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type CompanyDetailResponse struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Invoices    []InvoiceSummary `json:"invoices"`
	Industries  []string         `json:"industries"`
}
