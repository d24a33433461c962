package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pillbox-tracker/records-api/internal/api/metrics"
	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

const headerIdempotencyKey = "Idempotency-Key"

// PillboxHandler handles HTTP requests for pillbox records.
type PillboxHandler struct {
	service  ports.PillboxService
	batchMax int
}

// NewPillboxHandler builds the handler. batchMax bounds how_many on bulk
// creation.
func NewPillboxHandler(service ports.PillboxService, batchMax int) *PillboxHandler {
	return &PillboxHandler{service: service, batchMax: batchMax}
}

var pillboxLabel = domain.EntityPillbox.String()

// Create handles POST /pillboxes/create/:how_many.
//
// The records are committed one by one. When a step fails the error is
// returned and the pillboxes committed before it are kept.
//
// @Summary      Creation of one or many pillboxes in the database
// @Tags         pillboxes
// @Produce      json
// @Param        how_many         path      int     true   "Number of pillboxes to create"
// @Param        Idempotency-Key  header    string  false  "Replays a previous complete batch created with the same key"
// @Success      201              {array}   pillboxResponse
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      503              {object}  errorResponse
// @Router       /pillboxes/create/{how_many} [post]
func (h *PillboxHandler) Create(c echo.Context) error {
	howMany, err := strconv.Atoi(c.Param("how_many"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "how_many must be an integer")
	}
	if howMany < 0 || howMany > h.batchMax {
		return echo.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("how_many must be within [0, %d]", h.batchMax))
	}
	metrics.PillboxBatchSize.Observe(float64(howMany))

	replayed := false
	seq := h.service.CreatePillboxes(c.Request().Context(), ports.CreatePillboxesInput{
		Count:          howMany,
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
		OnReplay:       func() { replayed = true },
	})

	out := make([]pillboxResponse, 0, howMany)
	var seqErr error
	for p, err := range seq {
		if err != nil {
			seqErr = err
			break
		}
		out = append(out, *toPillboxResponse(p))
	}
	if replayed {
		metrics.PillboxReplaysTotal.Inc()
	} else {
		metrics.RecordsCreatedTotal.WithLabelValues(pillboxLabel).Add(float64(len(out)))
	}
	if seqErr != nil {
		return seqErr
	}

	return c.JSON(http.StatusCreated, out)
}

// List handles GET /pillboxes/read/all.
//
// @Summary      Retrieving all pillboxes in the database
// @Tags         pillboxes
// @Produce      json
// @Success      200  {array}  pillboxResponse
// @Router       /pillboxes/read/all [get]
func (h *PillboxHandler) List(c echo.Context) error {
	pillboxes, err := h.service.ListPillboxes(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]pillboxResponse, 0, len(pillboxes))
	for _, p := range pillboxes {
		out = append(out, *toPillboxResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /pillboxes/read/:id.
//
// @Summary      Retrieving pillbox by id
// @Tags         pillboxes
// @Produce      json
// @Param        id   path      int  true  "Pillbox id"
// @Success      200  {object}  pillboxDetailResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /pillboxes/read/{id} [get]
func (h *PillboxHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.service.GetPillbox(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pillboxDetailResponse{OwnerID: p.OwnerID})
}

// Update handles PUT /pillboxes/updated/:id. owner_id must name an existing
// patient.
//
// @Summary      Assign the owner of a pillbox
// @Tags         pillboxes
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Pillbox id"
// @Param        body  body      pillboxUpdateRequest  true  "Owner"
// @Success      202   {object}  pillboxDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /pillboxes/updated/{id} [put]
func (h *PillboxHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req pillboxUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.AssignOwner(c.Request().Context(), id, *req.OwnerID)
	if err != nil {
		return err
	}
	metrics.RecordsUpdatedTotal.WithLabelValues(pillboxLabel).Inc()
	return c.JSON(http.StatusAccepted, pillboxDetailResponse{OwnerID: p.OwnerID})
}

// Delete handles DELETE /pillboxes/delete/:id.
//
// @Summary      Removal of the pillbox by id
// @Tags         pillboxes
// @Param        id   path  int  true  "Pillbox id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /pillboxes/delete/{id} [delete]
func (h *PillboxHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePillbox(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(pillboxLabel).Inc()
	return c.NoContent(http.StatusNoContent)
}
