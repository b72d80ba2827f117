package events

import "time"

const InvoiceLifecycleTopic = "billing.invoice.lifecycle.v1"

const (
	InvoiceCreatedEventType = "invoice.created"
	InvoicePaidEventType    = "invoice.paid"
)

type InvoiceCreatedEvent struct {
	EventType  string    `json:"event_type"`
	InvoiceID  int       `json:"invoice_id"`
	CompCode   string    `json:"comp_code"`
	Amt        float64   `json:"amt"`
	OccurredAt time.Time `json:"occurred_at"`
}

type InvoicePaidEvent struct {
	EventType  string    `json:"event_type"`
	InvoiceID  int       `json:"invoice_id"`
	CompCode   string    `json:"comp_code"`
	Amt        float64   `json:"amt"`
	PaidDate   time.Time `json:"paid_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
