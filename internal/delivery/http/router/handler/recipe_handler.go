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

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles recipe creation, version #1 included.
func (h *RecipeHandler) Create(c echo.Context) error {
	var input *usecase.RecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Insert(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Recipe created successfully")
}

// Update handles recipe updates.
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}

	var input *usecase.RecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recipe updated successfully")
}

// Delete soft-deletes a recipe.
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe deleted successfully")
}

// RefreshPrices recomputes a recipe's item costs from live component prices.
func (h *RecipeHandler) RefreshPrices(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}

	output, err := h.uc.RefreshPrices(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recipe prices refreshed successfully")
}

// Get returns one recipe with freshly computed financials.
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}

	output, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// List returns the authenticated client's recipes.
func (h *RecipeHandler) List(c echo.Context) error {
	outputs, err := h.uc.FindByClient(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// ListVersions returns a recipe's history, most recent first.
func (h *RecipeHandler) ListVersions(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}

	outputs, err := h.uc.FindVersions(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// GetVersion returns one snapshot of a recipe's history.
func (h *RecipeHandler) GetVersion(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}
	versionID, err := uuid.Parse(c.Param("versionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid version id")
	}

	output, err := h.uc.FindVersionByID(c.Request().Context(), recipeID, versionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// RestoreVersion overwrites the live recipe from a historical snapshot.
func (h *RecipeHandler) RestoreVersion(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}
	versionID, err := uuid.Parse(c.Param("versionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid version id")
	}

	output, err := h.uc.RestoreVersion(c.Request().Context(), recipeID, versionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recipe restored successfully")
}
