package handler

import (
	"context"
	"iter"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

type stubDoctorService struct {
	createFn func(ctx context.Context, in ports.ContactInput) (*ports.CreatedDoctor, error)
	getFn    func(ctx context.Context, id int64) (*domain.Doctor, error)
	listFn   func(ctx context.Context) ([]*domain.Doctor, error)
	updateFn func(ctx context.Context, id int64, in ports.ContactInput) (*domain.Doctor, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubDoctorService) CreateDoctor(ctx context.Context, in ports.ContactInput) (*ports.CreatedDoctor, error) {
	return s.createFn(ctx, in)
}

func (s *stubDoctorService) GetDoctor(ctx context.Context, id int64) (*domain.Doctor, error) {
	return s.getFn(ctx, id)
}

func (s *stubDoctorService) ListDoctors(ctx context.Context) ([]*domain.Doctor, error) {
	return s.listFn(ctx)
}

func (s *stubDoctorService) UpdateDoctor(ctx context.Context, id int64, in ports.ContactInput) (*domain.Doctor, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubDoctorService) DeleteDoctor(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubPatientService struct {
	createFn func(ctx context.Context, in ports.PatientInput) (*ports.CreatedPatient, error)
	getFn    func(ctx context.Context, id int64) (*domain.Patient, error)
	listFn   func(ctx context.Context) ([]*domain.Patient, error)
	updateFn func(ctx context.Context, id int64, in ports.PatientInput) (*domain.Patient, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubPatientService) CreatePatient(ctx context.Context, in ports.PatientInput) (*ports.CreatedPatient, error) {
	return s.createFn(ctx, in)
}

func (s *stubPatientService) GetPatient(ctx context.Context, id int64) (*domain.Patient, error) {
	return s.getFn(ctx, id)
}

func (s *stubPatientService) ListPatients(ctx context.Context) ([]*domain.Patient, error) {
	return s.listFn(ctx)
}

func (s *stubPatientService) UpdatePatient(ctx context.Context, id int64, in ports.PatientInput) (*domain.Patient, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubPatientService) DeletePatient(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubPillboxService struct {
	createFn func(ctx context.Context, in ports.CreatePillboxesInput) iter.Seq2[*domain.Pillbox, error]
	getFn    func(ctx context.Context, id int64) (*domain.Pillbox, error)
	listFn   func(ctx context.Context) ([]*domain.Pillbox, error)
	assignFn func(ctx context.Context, id, ownerID int64) (*domain.Pillbox, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubPillboxService) CreatePillboxes(ctx context.Context, in ports.CreatePillboxesInput) iter.Seq2[*domain.Pillbox, error] {
	return s.createFn(ctx, in)
}

func (s *stubPillboxService) GetPillbox(ctx context.Context, id int64) (*domain.Pillbox, error) {
	return s.getFn(ctx, id)
}

func (s *stubPillboxService) ListPillboxes(ctx context.Context) ([]*domain.Pillbox, error) {
	return s.listFn(ctx)
}

func (s *stubPillboxService) AssignOwner(ctx context.Context, id, ownerID int64) (*domain.Pillbox, error) {
	return s.assignFn(ctx, id, ownerID)
}

func (s *stubPillboxService) DeletePillbox(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// newContext builds an echo context for method/target with an optional JSON
// body and named path parameters given as name, value pairs.
func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
