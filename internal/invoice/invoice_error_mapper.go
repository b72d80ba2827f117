package invoice

import (
	"errors"
	"strings"

	invoiceerrors "biztime/internal/invoice/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23503" {
			return invoiceerrors.ErrUnknownCompany
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint") {
		return invoiceerrors.ErrUnknownCompany
	}

	return err
}
