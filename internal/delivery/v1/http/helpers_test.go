package http

import (
	"net/http"
	"testing"

	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPResponse(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "not found hides internals",
			err:      e.Wrap("SELECT failed", e.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "not found",
		},
		{
			name:     "authentication keeps the reason",
			err:      e.Wrap("signature has expired, login again", e.ErrAuthenticationFailed),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "signature has expired, login again",
		},
		{
			name:     "permission denied",
			err:      e.Wrap("not the owner", e.ErrPermissionDenied),
			wantCode: http.StatusForbidden,
			wantMsg:  "permission denied",
		},
		{
			name:     "upstream client error",
			err:      e.Wrap("No such price", e.ErrUpstreamClient),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid request: No such price",
		},
		{
			name:     "upstream client error wrapped by usecase",
			err:      e.Wrap("CheckoutUseCase.CreateCheckoutSession", e.Wrap("No such price", e.ErrUpstreamClient)),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid request: No such price",
		},
		{
			name:     "expired token wrapped by usecase",
			err:      e.Wrap("IdentityUseCase.VendorProfile", e.Wrap("signature has expired, login again", e.ErrAuthenticationFailed)),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "signature has expired, login again",
		},
		{
			name:     "upstream server error",
			err:      e.Wrap("api_error", e.ErrUpstreamServer),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Error: api_error",
		},
		{
			name:     "bad request",
			err:      e.Wrap("category", e.ErrStatusBadRequest),
			wantCode: http.StatusBadRequest,
			wantMsg:  "bad request",
		},
		{
			name:     "unknown errors stay opaque",
			err:      e.Wrap("pool exhausted", e.ErrTransactionNotFound),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tc.err)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestDetailOf(t *testing.T) {
	t.Run("strips sentinel suffix", func(t *testing.T) {
		err := e.Wrap("token malformed", e.ErrAuthenticationFailed)
		assert.Equal(t, "token malformed", detailOf(err, e.ErrAuthenticationFailed))
	})

	t.Run("bare sentinel", func(t *testing.T) {
		assert.Equal(t, "authentication failed", detailOf(e.ErrAuthenticationFailed, e.ErrAuthenticationFailed))
	})

	t.Run("skips outer wrap layers", func(t *testing.T) {
		err := e.Wrap("outer", e.Wrap("middle", e.Wrap("No such price", e.ErrUpstreamClient)))
		assert.Equal(t, "No such price", detailOf(err, e.ErrUpstreamClient))
	})
}
