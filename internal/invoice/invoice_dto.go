package invoice

import "time"

// Amt and Paid are pointers so explicit zero values (0, false) survive
// required-binding.
type CreateInvoiceRequest struct {
	CompCode string   `json:"comp_code" binding:"required"`
	Amt      *float64 `json:"amt" binding:"required"`
}

// UpdateInvoiceRequest carries the full payment state.
type UpdateInvoiceRequest struct {
	Amt  *float64 `json:"amt" binding:"required"`
	Paid *bool    `json:"paid" binding:"required"`
}

type InvoiceResponse struct {
	ID       int        `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type CompanyInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type InvoiceDetailResponse struct {
	ID       int         `json:"id"`
	Amt      float64     `json:"amt"`
	Paid     bool        `json:"paid"`
	AddDate  time.Time   `json:"add_date"`
	PaidDate *time.Time  `json:"paid_date"`
	Company  CompanyInfo `json:"company"`
}
