package handler

import (
	"io"
	"log/slog"
	"net/http"

	"costbook/internal/delivery/http/response"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxImageSize bounds ingredient image uploads at 5 MiB.
const maxImageSize = 5 << 20

// IngredientHandler holds dependencies for ingredient-related handlers.
type IngredientHandler struct {
	uc     usecase.IngredientUsecase
	logger *slog.Logger
}

// NewIngredientHandler is the constructor for IngredientHandler, injected by Fx.
func NewIngredientHandler(uc usecase.IngredientUsecase, logger *slog.Logger) *IngredientHandler {
	return &IngredientHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles ingredient creation.
func (h *IngredientHandler) Create(c echo.Context) error {
	var input *usecase.IngredientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Insert(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Ingredient created successfully")
}

// Update handles ingredient updates.
func (h *IngredientHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ingredient id")
	}

	var input *usecase.IngredientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Ingredient updated successfully")
}

// Delete handles ingredient deletion.
func (h *IngredientHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ingredient id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ingredient deleted successfully")
}

// Get returns one ingredient.
func (h *IngredientHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ingredient id")
	}

	output, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// List returns the authenticated client's ingredients.
func (h *IngredientHandler) List(c echo.Context) error {
	outputs, err := h.uc.FindByClient(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// UploadImage accepts a multipart form with an "image" file and stores it
// as the ingredient's picture.
func (h *IngredientHandler) UploadImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ingredient id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}
	if fileHeader.Size > maxImageSize {
		return response.BadRequest(c, "INVALID_INPUT", "Image file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		return errors.Wrap(err, "read uploaded image")
	}

	contentType := fileHeader.Header.Get("Content-Type")

	output, err := h.uc.UploadImage(c.Request().Context(), id, data, contentType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Image uploaded successfully")
}
