package invoice_test

import (
	"context"
	"testing"
	"time"

	"biztime/internal/invoice"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (invoice.Repository, sqlmock.Sqlmock, func()) {
	db, sqlMock, _ := sqlmock.New()
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)

	return invoice.NewRepository(gdb), sqlMock, func() { db.Close() }
}

// updatePaymentQuery pins the three CASE arms of the payment statement:
// unpay clears paid_date, first payment stamps now(), re-payment keeps the
// existing stamp. A rewrite that loses an arm fails the match.
const updatePaymentQuery = `(?s)UPDATE invoices` +
	`.*paid_date = CASE` +
	`.*WHEN NOT .* THEN NULL` +
	`.*WHEN paid_date IS NULL THEN now\(\)` +
	`.*ELSE paid_date` +
	`.*RETURNING .*\(paid AND paid_date = now\(\)\) AS newly_paid`

func TestInvoiceRepository_UpdatePayment(t *testing.T) {
	repo, sqlMock, cleanup := setupRepoTest(t)
	defer cleanup()

	ctx := context.Background()
	addDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("returns newly_paid when the statement stamps paid_date", func(t *testing.T) {
		paidDate := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
		sqlMock.ExpectQuery(updatePaymentQuery).
			WithArgs(100.0, true, true, 1).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "comp_code", "amt", "paid", "add_date", "paid_date", "newly_paid",
			}).AddRow(1, "apple", 100.0, true, addDate, paidDate, true))

		row, err := repo.UpdatePayment(ctx, 1, 100, true)

		assert.NoError(t, err)
		assert.True(t, row.NewlyPaid)
		assert.NotNil(t, row.PaidDate)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("unpaying clears paid_date", func(t *testing.T) {
		sqlMock.ExpectQuery(updatePaymentQuery).
			WithArgs(100.0, false, false, 1).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "comp_code", "amt", "paid", "add_date", "paid_date", "newly_paid",
			}).AddRow(1, "apple", 100.0, false, addDate, nil, false))

		row, err := repo.UpdatePayment(ctx, 1, 100, false)

		assert.NoError(t, err)
		assert.False(t, row.NewlyPaid)
		assert.Nil(t, row.PaidDate)
	})

	t.Run("no matched row is ErrRecordNotFound", func(t *testing.T) {
		sqlMock.ExpectQuery(updatePaymentQuery).
			WithArgs(100.0, true, true, 42).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "comp_code", "amt", "paid", "add_date", "paid_date", "newly_paid",
			}))

		_, err := repo.UpdatePayment(ctx, 42, 100, true)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestInvoiceRepository_FindWithCompany(t *testing.T) {
	repo, sqlMock, cleanup := setupRepoTest(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("joins the owning company", func(t *testing.T) {
		addDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		sqlMock.ExpectQuery("SELECT i.id").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "amt", "paid", "add_date", "paid_date", "code", "name", "description",
			}).AddRow(1, 100.0, false, addDate, nil, "apple", "Apple", "Maker of OSX."))

		row, err := repo.FindWithCompany(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "apple", row.Code)
		assert.Equal(t, 100.0, row.Amt)
	})

	t.Run("no row is ErrRecordNotFound", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT i.id").
			WithArgs(99999).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "amt", "paid", "add_date", "paid_date", "code", "name", "description",
			}))

		_, err := repo.FindWithCompany(ctx, 99999)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
