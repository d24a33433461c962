package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

// CredentialIssuer produces a one-time plaintext credential and its hash.
type CredentialIssuer interface {
	Issue() (plaintext, hash string, err error)
}

type nopAuditLog struct{}

func (nopAuditLog) Record(context.Context, domain.RecordEvent) error { return nil }

// NopAuditLog discards every record event.
var NopAuditLog ports.AuditLog = nopAuditLog{}

// audit writes a record event; failures are logged and swallowed.
func audit(ctx context.Context, log ports.AuditLog, logger zerolog.Logger, ev domain.RecordEvent) {
	if log == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC()
	if err := log.Record(ctx, ev); err != nil {
		logger.Warn().Err(err).
			Str("entity", ev.Entity.String()).
			Int64("id", ev.RecordID).
			Str("action", string(ev.Action)).
			Msg("failed to record audit event")
	}
}

var (
	_ ports.DoctorService  = (*DoctorService)(nil)
	_ ports.PatientService = (*PatientService)(nil)
	_ ports.PillboxService = (*PillboxService)(nil)
)
