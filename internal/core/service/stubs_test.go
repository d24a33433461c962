package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pillbox-tracker/records-api/internal/core/credential"
	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory store shared by the stub repositories
// ---------------------------------------------------------------------------

type memStore struct {
	doctors   map[int64]domain.Doctor
	patients  map[int64]domain.Patient
	pillboxes map[int64]domain.Pillbox
	nextID    map[domain.Entity]int64
}

func newMemStore() *memStore {
	return &memStore{
		doctors:   make(map[int64]domain.Doctor),
		patients:  make(map[int64]domain.Patient),
		pillboxes: make(map[int64]domain.Pillbox),
		nextID:    make(map[domain.Entity]int64),
	}
}

func (m *memStore) assign(e domain.Entity) int64 {
	m.nextID[e]++
	return m.nextID[e]
}

func (m *memStore) pillboxOf(patientID int64) *domain.Pillbox {
	for _, pb := range m.pillboxes {
		if pb.OwnerID == patientID {
			clone := pb
			return &clone
		}
	}
	return nil
}

func (m *memStore) patientView(p domain.Patient) *domain.Patient {
	p.Pillbox = m.pillboxOf(p.ID)
	return &p
}

func (m *memStore) doctorView(d domain.Doctor) *domain.Doctor {
	d.Patients = nil
	for _, id := range sortedKeys(m.patients) {
		if p := m.patients[id]; p.DoctorID == d.ID {
			d.Patients = append(d.Patients, *m.patientView(p))
		}
	}
	return &d
}

func sortedKeys[V any](in map[int64]V) []int64 {
	keys := make([]int64, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type stubDoctorRepo struct {
	db        *memStore
	createErr error
}

func (r *stubDoctorRepo) Create(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	row := *d
	row.ID = r.db.assign(domain.EntityDoctor)
	r.db.doctors[row.ID] = row
	return r.db.doctorView(row), nil
}

func (r *stubDoctorRepo) FindByID(_ context.Context, id int64) (*domain.Doctor, error) {
	d, ok := r.db.doctors[id]
	if !ok {
		return nil, domain.NotFound(domain.EntityDoctor, id)
	}
	return r.db.doctorView(d), nil
}

func (r *stubDoctorRepo) List(_ context.Context) ([]*domain.Doctor, error) {
	out := make([]*domain.Doctor, 0, len(r.db.doctors))
	for _, id := range sortedKeys(r.db.doctors) {
		out = append(out, r.db.doctorView(r.db.doctors[id]))
	}
	return out, nil
}

func (r *stubDoctorRepo) Update(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	row, ok := r.db.doctors[d.ID]
	if !ok {
		return nil, domain.NotFound(domain.EntityDoctor, d.ID)
	}
	row.FirstName, row.LastName, row.Email, row.PhoneNumber = d.FirstName, d.LastName, d.Email, d.PhoneNumber
	r.db.doctors[d.ID] = row
	return r.db.doctorView(row), nil
}

func (r *stubDoctorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.doctors[id]; !ok {
		return domain.NotFound(domain.EntityDoctor, id)
	}
	delete(r.db.doctors, id)
	return nil
}

type stubPatientRepo struct {
	db        *memStore
	createErr error
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	row := *p
	row.ID = r.db.assign(domain.EntityPatient)
	r.db.patients[row.ID] = row
	return r.db.patientView(row), nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id int64) (*domain.Patient, error) {
	p, ok := r.db.patients[id]
	if !ok {
		return nil, domain.NotFound(domain.EntityPatient, id)
	}
	return r.db.patientView(p), nil
}

func (r *stubPatientRepo) List(_ context.Context) ([]*domain.Patient, error) {
	out := make([]*domain.Patient, 0, len(r.db.patients))
	for _, id := range sortedKeys(r.db.patients) {
		out = append(out, r.db.patientView(r.db.patients[id]))
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	row, ok := r.db.patients[p.ID]
	if !ok {
		return nil, domain.NotFound(domain.EntityPatient, p.ID)
	}
	row.FirstName, row.LastName, row.Email, row.PhoneNumber = p.FirstName, p.LastName, p.Email, p.PhoneNumber
	row.DoctorID = p.DoctorID
	r.db.patients[p.ID] = row
	return r.db.patientView(row), nil
}

func (r *stubPatientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.patients[id]; !ok {
		return domain.NotFound(domain.EntityPatient, id)
	}
	delete(r.db.patients, id)
	return nil
}

type stubPillboxRepo struct {
	db *memStore
	// failAfter, when positive, makes Create fail once that many inserts succeeded.
	failAfter int
	creates   int
}

var errStoreDown = errors.New("connection reset")

func (r *stubPillboxRepo) Create(_ context.Context) (*domain.Pillbox, error) {
	if r.failAfter > 0 && r.creates >= r.failAfter {
		return nil, errStoreDown
	}
	r.creates++
	pb := domain.Pillbox{ID: r.db.assign(domain.EntityPillbox), OwnerID: domain.Unowned}
	r.db.pillboxes[pb.ID] = pb
	clone := pb
	return &clone, nil
}

func (r *stubPillboxRepo) FindByID(_ context.Context, id int64) (*domain.Pillbox, error) {
	pb, ok := r.db.pillboxes[id]
	if !ok {
		return nil, domain.NotFound(domain.EntityPillbox, id)
	}
	return &pb, nil
}

func (r *stubPillboxRepo) List(_ context.Context) ([]*domain.Pillbox, error) {
	out := make([]*domain.Pillbox, 0, len(r.db.pillboxes))
	for _, id := range sortedKeys(r.db.pillboxes) {
		pb := r.db.pillboxes[id]
		out = append(out, &pb)
	}
	return out, nil
}

func (r *stubPillboxRepo) AssignOwner(_ context.Context, id, ownerID int64) (*domain.Pillbox, error) {
	pb, ok := r.db.pillboxes[id]
	if !ok {
		return nil, domain.NotFound(domain.EntityPillbox, id)
	}
	pb.OwnerID = ownerID
	r.db.pillboxes[id] = pb
	return &pb, nil
}

func (r *stubPillboxRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.pillboxes[id]; !ok {
		return domain.NotFound(domain.EntityPillbox, id)
	}
	delete(r.db.pillboxes, id)
	return nil
}

// ---------------------------------------------------------------------------
// Collaborator stubs
// ---------------------------------------------------------------------------

type recordingAudit struct {
	events []domain.RecordEvent
	err    error
}

func (a *recordingAudit) Record(_ context.Context, ev domain.RecordEvent) error {
	a.events = append(a.events, ev)
	return a.err
}

type failingIssuer struct{}

func (failingIssuer) Issue() (string, string, error) {
	return "", "", errors.New("entropy exhausted")
}

type stubReplay struct {
	keys      map[string][]int64
	recallErr error
}

func newStubReplay() *stubReplay {
	return &stubReplay{keys: make(map[string][]int64)}
}

func (s *stubReplay) Recall(_ context.Context, key string) ([]int64, bool, error) {
	if s.recallErr != nil {
		return nil, false, s.recallErr
	}
	ids, ok := s.keys[key]
	return ids, ok, nil
}

func (s *stubReplay) Remember(_ context.Context, key string, ids []int64) error {
	s.keys[key] = append([]int64(nil), ids...)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func testIssuer() *credential.Issuer {
	return credential.NewIssuer(bcrypt.MinCost)
}
