package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

type DoctorService struct {
	repo   ports.DoctorRepository
	issuer CredentialIssuer
	audit  ports.AuditLog
	logger zerolog.Logger
}

func NewDoctorService(repo ports.DoctorRepository, issuer CredentialIssuer, audit ports.AuditLog, logger zerolog.Logger) *DoctorService {
	if audit == nil {
		audit = NopAuditLog
	}
	return &DoctorService{repo: repo, issuer: issuer, audit: audit, logger: logger}
}

// CreateDoctor issues a credential, persists the doctor with its hash and
// returns the stored record together with the plaintext.
func (s *DoctorService) CreateDoctor(ctx context.Context, in ports.ContactInput) (*ports.CreatedDoctor, error) {
	plain, hash, err := s.issuer.Issue()
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Doctor{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create doctor")
		return nil, fmt.Errorf("create doctor: %w", err)
	}

	s.logger.Info().Int64("doctor_id", created.ID).Msg("doctor created")
	audit(ctx, s.audit, s.logger, domain.RecordEvent{Entity: domain.EntityDoctor, RecordID: created.ID, Action: domain.ActionCreated})

	return &ports.CreatedDoctor{Doctor: created, Password: plain}, nil
}

func (s *DoctorService) GetDoctor(ctx context.Context, id int64) (*domain.Doctor, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *DoctorService) ListDoctors(ctx context.Context) ([]*domain.Doctor, error) {
	ds, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return ds, nil
}

// UpdateDoctor overwrites the contact fields of an existing doctor. The id and
// credential hash are left untouched.
func (s *DoctorService) UpdateDoctor(ctx context.Context, id int64, in ports.ContactInput) (*domain.Doctor, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}

	d.FirstName = in.FirstName
	d.LastName = in.LastName
	d.Email = in.Email
	d.PhoneNumber = in.PhoneNumber

	updated, err := s.repo.Update(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}

	s.logger.Info().Int64("doctor_id", id).Msg("doctor updated")
	audit(ctx, s.audit, s.logger, domain.RecordEvent{Entity: domain.EntityDoctor, RecordID: id, Action: domain.ActionUpdated})
	return updated, nil
}

// DeleteDoctor removes an existing doctor. A doctor that still has patients
// is rejected with *domain.StillReferencedError and left in place.
func (s *DoctorService) DeleteDoctor(ctx context.Context, id int64) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if len(d.Patients) > 0 {
		return fmt.Errorf("delete doctor: %w", &domain.StillReferencedError{Entity: domain.EntityDoctor, ID: id})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}

	s.logger.Info().Int64("doctor_id", id).Msg("doctor deleted")
	audit(ctx, s.audit, s.logger, domain.RecordEvent{Entity: domain.EntityDoctor, RecordID: id, Action: domain.ActionDeleted})
	return nil
}
