package company

import (
	"errors"
	"strings"

	companyerrors "biztime/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return companyerrors.ErrDuplicateCode
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return companyerrors.ErrDuplicateCode
	}

	return err
}
