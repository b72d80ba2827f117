package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"biztime/internal/events"
	invoiceerrors "biztime/internal/invoice/errors"
	"biztime/internal/messaging/kafka"
	"biztime/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=invoice_service.go -destination=mock/invoice_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]InvoiceResponse, error)
	Get(ctx context.Context, id int) (InvoiceDetailResponse, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	Update(ctx context.Context, id int, req UpdateInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
}

// NewServiceWithOutbox appends invoice lifecycle events to the outbox in the
// same transaction as the row change. A nil outbox skips the append.
func NewServiceWithOutbox(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox}
}

func (s *service) List(ctx context.Context) ([]InvoiceResponse, error) {
	invs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(invs), nil
}

func (s *service) Get(ctx context.Context, id int) (InvoiceDetailResponse, error) {
	row, err := s.repo.FindWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceDetailResponse{}, invoiceerrors.NotFound(id)
		}
		return InvoiceDetailResponse{}, err
	}

	return InvoiceDetailResponse{
		ID:       row.ID,
		Amt:      row.Amt,
		Paid:     row.Paid,
		AddDate:  row.AddDate,
		PaidDate: row.PaidDate,
		Company: CompanyInfo{
			Code:        row.Code,
			Name:        row.Name,
			Description: row.Description,
		},
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return InvoiceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inv := &Invoice{
		CompCode: req.CompCode,
		Amt:      *req.Amt,
	}

	if err := qtx.Create(ctx, inv); err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.InvoiceCreatedEvent{
			EventType:  events.InvoiceCreatedEventType,
			InvoiceID:  inv.ID,
			CompCode:   inv.CompCode,
			Amt:        inv.Amt,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.appendOutboxEvent(ctx, tx, inv.ID, events.InvoiceCreatedEventType, event); err != nil {
			return InvoiceResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return InvoiceResponse{}, err
	}

	return mapToResponse(*inv), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateInvoiceRequest) (InvoiceResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return InvoiceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.UpdatePayment(ctx, id, *req.Amt, *req.Paid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceResponse{}, invoiceerrors.NotFound(id)
		}
		return InvoiceResponse{}, err
	}

	if row.NewlyPaid && s.outbox != nil && row.PaidDate != nil {
		event := events.InvoicePaidEvent{
			EventType:  events.InvoicePaidEventType,
			InvoiceID:  row.ID,
			CompCode:   row.CompCode,
			Amt:        row.Amt,
			PaidDate:   *row.PaidDate,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.appendOutboxEvent(ctx, tx, row.ID, events.InvoicePaidEventType, event); err != nil {
			return InvoiceResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return InvoiceResponse{}, err
	}

	return InvoiceResponse{
		ID:       row.ID,
		CompCode: row.CompCode,
		Amt:      row.Amt,
		Paid:     row.Paid,
		AddDate:  row.AddDate,
		PaidDate: row.PaidDate,
	}, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return invoiceerrors.NotFound(id)
	}

	return tx.Commit().Error
}

func (s *service) appendOutboxEvent(
	ctx context.Context,
	tx *gorm.DB,
	invoiceID int,
	eventType string,
	payload any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "invoice",
		AggregateID:   strconv.Itoa(invoiceID),
		EventType:     eventType,
		Topic:         events.InvoiceLifecycleTopic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	}

	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, event)
}

func mapToResponse(inv Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

func mapToListResponse(invs []Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invs))
	for i, inv := range invs {
		res[i] = mapToResponse(inv)
	}
	return res
}
