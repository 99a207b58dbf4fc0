package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/applyflow/outreach-system/internal/core/domain"
	"github.com/applyflow/outreach-system/internal/core/ports"
)

// OperationHandler exposes a user's bulk-send history.
type OperationHandler struct {
	service ports.OperationService
}

func NewOperationHandler(service ports.OperationService) *OperationHandler {
	return &OperationHandler{service: service}
}

// List handles GET /api/operations/.
//
// @Summary      List the caller's past bulk-send operations
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   operationSummaryResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/operations/ [get]
func (h *OperationHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOperationSummaries(summaries))
}

// Get handles GET /api/operations/:operation_id.
//
// @Summary      Get one operation by id
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Param        operation_id  path      string  true  "Operation id"
// @Success      200           {object}  operationResponse
// @Failure      401           {object}  map[string]string
// @Failure      404           {object}  map[string]string
// @Router       /api/operations/{operation_id} [get]
func (h *OperationHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	op, err := h.service.GetByID(c.Request().Context(), c.Param("operation_id"), userID)
	if err != nil {
		if errors.Is(err, domain.ErrOperationNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "operation not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toOperationResponse(op))
}
