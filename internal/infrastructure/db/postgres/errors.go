package postgres

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var constraintFields = map[string]string{
	idxDoctorEmail:  "email",
	idxDoctorPhone:  "phone_number",
	idxPatientEmail: "email",
	idxPatientPhone: "phone_number",
	idxPillboxOwner: "owner_id",
}

// translateWrite maps insert/update failures to domain errors. missing is the
// reference reported when a foreign key rejects the row; nil when the row
// has no outgoing foreign key.
func translateWrite(err error, entity domain.Entity, missing *domain.ReferenceNotFoundError) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &domain.ConstraintViolationError{Entity: entity, Field: constraintFields[pgErr.ConstraintName]}
		case codeForeignKeyViolation:
			if missing != nil {
				return missing
			}
		}
	}
	return translateCommon(err)
}

// translateDelete maps delete failures; a foreign-key violation means rows
// still point at the record.
func translateDelete(err error, entity domain.Entity, id int64) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return &domain.StillReferencedError{Entity: entity, ID: id}
	}
	return translateCommon(err)
}

func translateCommon(err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}
