package postgres

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

func TestTranslateWrite_UniqueViolation(t *testing.T) {
	cases := map[string]string{
		idxDoctorEmail:  "email",
		idxDoctorPhone:  "phone_number",
		idxPillboxOwner: "owner_id",
		"unknown_key":   "",
	}
	for constraint, field := range cases {
		err := translateWrite(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: constraint}, domain.EntityDoctor, nil)
		var cv *domain.ConstraintViolationError
		if !errors.As(err, &cv) {
			t.Fatalf("%s: expected ConstraintViolationError, got %v", constraint, err)
		}
		if cv.Field != field || cv.Entity != domain.EntityDoctor {
			t.Fatalf("%s: unexpected payload %+v", constraint, cv)
		}
	}
}

func TestTranslateWrite_ForeignKeyViolation(t *testing.T) {
	missing := domain.NotFound(domain.EntityPatient, 12)
	wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{Code: codeForeignKeyViolation})

	err := translateWrite(wrapped, domain.EntityPillbox, missing)
	if err != missing {
		t.Fatalf("expected the missing reference, got %v", err)
	}

	// Without a reference to report the driver error passes through.
	raw := &pgconn.PgError{Code: codeForeignKeyViolation}
	if err := translateWrite(raw, domain.EntityPillbox, nil); err != raw {
		t.Fatalf("expected raw error, got %v", err)
	}
}

func TestTranslateDelete_StillReferenced(t *testing.T) {
	err := translateDelete(&pgconn.PgError{Code: codeForeignKeyViolation}, domain.EntityPatient, 4)
	var sr *domain.StillReferencedError
	if !errors.As(err, &sr) || sr.ID != 4 || sr.Entity != domain.EntityPatient {
		t.Fatalf("expected StillReferencedError for patient 4, got %v", err)
	}
}

func TestTranslateCommon_Unavailable(t *testing.T) {
	err := translateCommon(fmt.Errorf("query: %w", driver.ErrBadConn))
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}

	other := errors.New("syntax error")
	if got := translateCommon(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
