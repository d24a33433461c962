package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pillbox-tracker/records-api/internal/api/metrics"
	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

// PatientHandler handles HTTP requests for patient records.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

var patientLabel = domain.EntityPatient.String()

// Create handles POST /patients/create.
//
// @Summary      Creation of a patient in the database
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      201   {object}  patientCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /patients/create [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req patientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.CreatePatient(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(patientLabel).Inc()
	metrics.CredentialsIssuedTotal.WithLabelValues(patientLabel).Inc()

	p := created.Patient
	return c.JSON(http.StatusCreated, patientCreatedResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		DoctorID:    p.DoctorID,
		Password:    created.Password,
	})
}

// List handles GET /patients/read/all.
//
// @Summary      Retrieving all patients in the database
// @Tags         patients
// @Produce      json
// @Success      200  {array}   patientResponse
// @Router       /patients/read/all [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]patientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /patients/read/:id.
//
// @Summary      Retrieving patient by id
// @Tags         patients
// @Produce      json
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  patientDetailResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/read/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.service.GetPatient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPatientDetailResponse(p))
}

// Update handles PUT /patients/updated/:id.
//
// @Summary      Update of the patient by id
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Patient id"
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      202   {object}  patientDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /patients/updated/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req patientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.UpdatePatient(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	metrics.RecordsUpdatedTotal.WithLabelValues(patientLabel).Inc()
	return c.JSON(http.StatusAccepted, toPatientDetailResponse(p))
}

// Delete handles DELETE /patients/delete/:id.
//
// @Summary      Removal of the patient by id
// @Tags         patients
// @Param        id   path  int  true  "Patient id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /patients/delete/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePatient(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(patientLabel).Inc()
	return c.NoContent(http.StatusNoContent)
}
