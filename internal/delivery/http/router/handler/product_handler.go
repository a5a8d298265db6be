package handler

import (
	"log/slog"
	"net/http"

	"costbook/internal/delivery/http/response"
	"costbook/internal/domain/service"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	recipeUc usecase.RecipeUsecase
	qrSvc    service.QRCodeService
	logger   *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(recipeUc usecase.RecipeUsecase, qrSvc service.QRCodeService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		recipeUc: recipeUc,
		qrSvc:    qrSvc,
		logger:   logger,
	}
}

// QRCode renders a PNG QR code carrying a product reference. The product
// shares its identity with its recipe, so resolving the recipe first gives
// unknown and deleted products the same not-found behavior as the rest of
// the API.
func (h *ProductHandler) QRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	if _, err := h.recipeUc.FindByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrSvc.GenerateProductQR(id)
	if err != nil {
		return errors.Wrap(err, "generate product QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
