package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pillbox-tracker/records-api/internal/core/credential"
	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

func annLee() ports.ContactInput {
	return ports.ContactInput{FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", PhoneNumber: "555-0001"}
}

func newDoctorFixture() (*DoctorService, *memStore, *recordingAudit) {
	db := newMemStore()
	audit := &recordingAudit{}
	svc := NewDoctorService(&stubDoctorRepo{db: db}, testIssuer(), audit, discardLogger)
	return svc, db, audit
}

func TestDoctorService_Create_Success(t *testing.T) {
	svc, db, audit := newDoctorFixture()

	res, err := svc.CreateDoctor(context.Background(), annLee())
	if err != nil {
		t.Fatalf("CreateDoctor returned error: %v", err)
	}
	if res.Doctor.ID != 1 {
		t.Fatalf("expected id 1, got %d", res.Doctor.ID)
	}
	if len(res.Password) != credential.Length {
		t.Fatalf("expected %d-char credential, got %q", credential.Length, res.Password)
	}
	for _, s := range credential.Specials() {
		if !strings.ContainsRune(res.Password, s) {
			t.Fatalf("credential %q missing special %q", res.Password, s)
		}
	}

	stored := db.doctors[1]
	if stored.PasswordHash == res.Password {
		t.Fatalf("plaintext must never be stored")
	}
	if !credential.Verify(stored.PasswordHash, res.Password) {
		t.Fatalf("stored hash does not verify against issued credential")
	}
	if stored.FirstName != "Ann" || stored.LastName != "Lee" || stored.Email != "ann@x.com" || stored.PhoneNumber != "555-0001" {
		t.Fatalf("unexpected stored doctor: %+v", stored)
	}

	if len(audit.events) != 1 || audit.events[0].Action != domain.ActionCreated || audit.events[0].RecordID != 1 {
		t.Fatalf("unexpected audit events: %+v", audit.events)
	}
	if audit.events[0].OccurredAt.IsZero() {
		t.Fatalf("expected audit timestamp")
	}
}

func TestDoctorService_Create_IssuerFailure(t *testing.T) {
	db := newMemStore()
	svc := NewDoctorService(&stubDoctorRepo{db: db}, failingIssuer{}, nil, discardLogger)

	if _, err := svc.CreateDoctor(context.Background(), annLee()); err == nil {
		t.Fatalf("expected error when credential issuance fails")
	}
	if len(db.doctors) != 0 {
		t.Fatalf("no doctor should be persisted without a credential")
	}
}

func TestDoctorService_Create_DuplicatePropagates(t *testing.T) {
	dup := &domain.ConstraintViolationError{Entity: domain.EntityDoctor, Field: "email"}
	svc := NewDoctorService(&stubDoctorRepo{db: newMemStore(), createErr: dup}, testIssuer(), nil, discardLogger)

	_, err := svc.CreateDoctor(context.Background(), annLee())
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestDoctorService_Create_AuditFailureIsNotFatal(t *testing.T) {
	db := newMemStore()
	audit := &recordingAudit{err: errors.New("mongo down")}
	svc := NewDoctorService(&stubDoctorRepo{db: db}, testIssuer(), audit, discardLogger)

	if _, err := svc.CreateDoctor(context.Background(), annLee()); err != nil {
		t.Fatalf("audit failure must not fail the create: %v", err)
	}
	if len(db.doctors) != 1 {
		t.Fatalf("expected doctor to be persisted")
	}
}

func TestDoctorService_Get_ReturnsPersistedFields(t *testing.T) {
	svc, _, _ := newDoctorFixture()
	created, _ := svc.CreateDoctor(context.Background(), annLee())

	got, err := svc.GetDoctor(context.Background(), created.Doctor.ID)
	if err != nil {
		t.Fatalf("GetDoctor returned error: %v", err)
	}
	if got.FirstName != "Ann" || got.Email != "ann@x.com" || got.PasswordHash != created.Doctor.PasswordHash {
		t.Fatalf("unexpected doctor: %+v", got)
	}
}

func TestDoctorService_Get_NotFound(t *testing.T) {
	svc, _, _ := newDoctorFixture()

	_, err := svc.GetDoctor(context.Background(), 42)
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
	var rnf *domain.ReferenceNotFoundError
	if !errors.As(err, &rnf) || rnf.Entity != domain.EntityDoctor || rnf.ID != 42 {
		t.Fatalf("unexpected error payload: %v", err)
	}
}

func TestDoctorService_List(t *testing.T) {
	svc, _, _ := newDoctorFixture()
	_, _ = svc.CreateDoctor(context.Background(), annLee())
	_, _ = svc.CreateDoctor(context.Background(), ports.ContactInput{FirstName: "Bo", LastName: "Ng", Email: "bo@x.com", PhoneNumber: "555-0002"})

	all, err := svc.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("ListDoctors returned error: %v", err)
	}
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Fatalf("unexpected doctors: %+v", all)
	}
}

func TestDoctorService_Update_KeepsIdentityAndCredential(t *testing.T) {
	svc, db, audit := newDoctorFixture()
	created, _ := svc.CreateDoctor(context.Background(), annLee())
	hash := db.doctors[created.Doctor.ID].PasswordHash

	updated, err := svc.UpdateDoctor(context.Background(), created.Doctor.ID, ports.ContactInput{
		FirstName: "Ann", LastName: "Lee-Park", Email: "ann.park@x.com", PhoneNumber: "555-0009",
	})
	if err != nil {
		t.Fatalf("UpdateDoctor returned error: %v", err)
	}
	if updated.ID != created.Doctor.ID {
		t.Fatalf("identity changed: %d -> %d", created.Doctor.ID, updated.ID)
	}
	if updated.LastName != "Lee-Park" || updated.Email != "ann.park@x.com" || updated.PhoneNumber != "555-0009" {
		t.Fatalf("fields not overwritten: %+v", updated)
	}
	if db.doctors[created.Doctor.ID].PasswordHash != hash {
		t.Fatalf("credential hash must not change on update")
	}
	if last := audit.events[len(audit.events)-1]; last.Action != domain.ActionUpdated {
		t.Fatalf("expected updated audit event, got %+v", last)
	}
}

func TestDoctorService_Update_NotFound(t *testing.T) {
	svc, _, _ := newDoctorFixture()

	if _, err := svc.UpdateDoctor(context.Background(), 9, annLee()); !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestDoctorService_Delete(t *testing.T) {
	svc, db, _ := newDoctorFixture()
	created, _ := svc.CreateDoctor(context.Background(), annLee())

	if err := svc.DeleteDoctor(context.Background(), created.Doctor.ID); err != nil {
		t.Fatalf("DeleteDoctor returned error: %v", err)
	}
	if len(db.doctors) != 0 {
		t.Fatalf("expected doctor to be removed")
	}
	if _, err := svc.GetDoctor(context.Background(), created.Doctor.ID); !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound after delete, got %v", err)
	}
}

func TestDoctorService_Delete_RejectedWhilePatientsRemain(t *testing.T) {
	svc, db, audit := newDoctorFixture()
	created, _ := svc.CreateDoctor(context.Background(), annLee())
	db.patients[1] = domain.Patient{ID: 1, FirstName: "Sam", DoctorID: created.Doctor.ID}

	err := svc.DeleteDoctor(context.Background(), created.Doctor.ID)
	var ref *domain.StillReferencedError
	if !errors.As(err, &ref) || ref.Entity != domain.EntityDoctor || ref.ID != created.Doctor.ID {
		t.Fatalf("expected StillReferencedError for doctor %d, got %v", created.Doctor.ID, err)
	}
	if _, ok := db.doctors[created.Doctor.ID]; !ok {
		t.Fatalf("doctor must stay in place")
	}
	if len(audit.events) != 1 {
		t.Fatalf("expected only the create event, got %d", len(audit.events))
	}
}

func TestDoctorService_Delete_NotFound(t *testing.T) {
	svc, _, audit := newDoctorFixture()

	if err := svc.DeleteDoctor(context.Background(), 5); !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
	if len(audit.events) != 0 {
		t.Fatalf("no audit event expected for a failed delete")
	}
}
