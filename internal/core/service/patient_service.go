package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

type PatientService struct {
	repo   ports.PatientRepository
	issuer CredentialIssuer
	audit  ports.AuditLog
	logger zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, issuer CredentialIssuer, audit ports.AuditLog, logger zerolog.Logger) *PatientService {
	if audit == nil {
		audit = NopAuditLog
	}
	return &PatientService{repo: repo, issuer: issuer, audit: audit, logger: logger}
}

// CreatePatient persists a patient with a freshly issued credential. The
// doctor reference is stored as given; only the store's foreign key can
// reject it.
func (s *PatientService) CreatePatient(ctx context.Context, in ports.PatientInput) (*ports.CreatedPatient, error) {
	plain, hash, err := s.issuer.Issue()
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Patient{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
		DoctorID:     in.DoctorID,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("doctor_id", in.DoctorID).Msg("failed to create patient")
		return nil, fmt.Errorf("create patient: %w", err)
	}

	s.logger.Info().Int64("patient_id", created.ID).Int64("doctor_id", created.DoctorID).Msg("patient created")
	audit(ctx, s.audit, s.logger, domain.RecordEvent{
		Entity:   domain.EntityPatient,
		RecordID: created.ID,
		Action:   domain.ActionCreated,
		RefID:    created.DoctorID,
	})

	return &ports.CreatedPatient{Patient: created, Password: plain}, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id int64) (*domain.Patient, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *PatientService) ListPatients(ctx context.Context) ([]*domain.Patient, error) {
	ps, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return ps, nil
}

// UpdatePatient overwrites contact fields and re-points the doctor reference.
func (s *PatientService) UpdatePatient(ctx context.Context, id int64, in ports.PatientInput) (*domain.Patient, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Email = in.Email
	p.PhoneNumber = in.PhoneNumber
	p.DoctorID = in.DoctorID

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	s.logger.Info().Int64("patient_id", id).Int64("doctor_id", in.DoctorID).Msg("patient updated")
	audit(ctx, s.audit, s.logger, domain.RecordEvent{
		Entity:   domain.EntityPatient,
		RecordID: id,
		Action:   domain.ActionUpdated,
		RefID:    in.DoctorID,
	})
	return updated, nil
}

func (s *PatientService) DeletePatient(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}

	s.logger.Info().Int64("patient_id", id).Msg("patient deleted")
	audit(ctx, s.audit, s.logger, domain.RecordEvent{Entity: domain.EntityPatient, RecordID: id, Action: domain.ActionDeleted})
	return nil
}
