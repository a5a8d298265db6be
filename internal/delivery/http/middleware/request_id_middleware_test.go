package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "costbook/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDTestContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRequestIDMiddleware_PropagatesClientHeader(t *testing.T) {
	c, rec := newRequestIDTestContext(t, "client-supplied-id")
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seenInContext string
	handler := mw.Process(func(c echo.Context) error {
		seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-supplied-id", seenInContext)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-supplied-id", deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_GeneratesIDWhenHeaderMissing(t *testing.T) {
	c, rec := newRequestIDTestContext(t, "")
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seenInContext string
	handler := mw.Process(func(c echo.Context) error {
		seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seenInContext)
	assert.Equal(t, seenInContext, rec.Header().Get(deliverycontext.HeaderXRequestID))
}
