package handler

import (
	"log/slog"
	"net/http"

	"costbook/internal/delivery/http/response"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupplierHandler holds dependencies for supplier-related handlers.
type SupplierHandler struct {
	uc     usecase.SupplierUsecase
	logger *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles supplier creation.
func (h *SupplierHandler) Create(c echo.Context) error {
	var input *usecase.SupplierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Insert(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Supplier created successfully")
}

// Update handles supplier updates.
func (h *SupplierHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid supplier id")
	}

	var input *usecase.SupplierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Supplier updated successfully")
}

// Delete handles supplier deletion.
func (h *SupplierHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid supplier id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Supplier deleted successfully")
}

// Get returns one supplier.
func (h *SupplierHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid supplier id")
	}

	output, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// List returns the authenticated client's suppliers.
func (h *SupplierHandler) List(c echo.Context) error {
	outputs, err := h.uc.FindByClient(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}
