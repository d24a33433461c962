package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pillbox-tracker/records-api/internal/api/metrics"
	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

// DoctorHandler handles HTTP requests for doctor records.
type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

var doctorLabel = domain.EntityDoctor.String()

// Create handles POST /doctors/create.
//
// @Summary      Creation of a doctor in the database
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Param        body  body      doctorRequest  true  "Doctor details"
// @Success      201   {object}  doctorCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /doctors/create [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	var req doctorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.CreateDoctor(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(doctorLabel).Inc()
	metrics.CredentialsIssuedTotal.WithLabelValues(doctorLabel).Inc()

	d := created.Doctor
	return c.JSON(http.StatusCreated, doctorCreatedResponse{
		ID:          d.ID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Password:    created.Password,
	})
}

// List handles GET /doctors/read/all.
//
// @Summary      Retrieving all doctors in the database
// @Tags         doctors
// @Produce      json
// @Success      200  {array}   doctorResponse
// @Failure      503  {object}  errorResponse
// @Router       /doctors/read/all [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]doctorResponse, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, toDoctorResponse(d))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /doctors/read/:id.
//
// @Summary      Retrieving doctor by id
// @Tags         doctors
// @Produce      json
// @Param        id   path      int  true  "Doctor id"
// @Success      200  {object}  doctorDetailResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /doctors/read/{id} [get]
func (h *DoctorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	d, err := h.service.GetDoctor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDoctorDetailResponse(d))
}

// Update handles PUT /doctors/updated/:id.
//
// @Summary      Update of the doctor by id
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Doctor id"
// @Param        body  body      doctorRequest  true  "Doctor details"
// @Success      202   {object}  doctorResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /doctors/updated/{id} [put]
func (h *DoctorHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req doctorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	d, err := h.service.UpdateDoctor(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	metrics.RecordsUpdatedTotal.WithLabelValues(doctorLabel).Inc()
	return c.JSON(http.StatusAccepted, toDoctorResponse(d))
}

// Delete handles DELETE /doctors/delete/:id.
//
// @Summary      Removal of the doctor by id
// @Tags         doctors
// @Param        id   path  int  true  "Doctor id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /doctors/delete/{id} [delete]
func (h *DoctorHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteDoctor(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(doctorLabel).Inc()
	return c.NoContent(http.StatusNoContent)
}
