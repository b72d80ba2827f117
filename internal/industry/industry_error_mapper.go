package industry

import (
	"errors"
	"strings"

	industryerrors "biztime/internal/industry/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "companies_industries") {
				return industryerrors.ErrDuplicateAssociation
			}
			return industryerrors.ErrDuplicateCode
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return industryerrors.ErrDuplicateCode
	}

	return err
}
