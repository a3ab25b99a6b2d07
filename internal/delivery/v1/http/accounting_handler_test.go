package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountingRouter(t *testing.T, accounting *mockAccountingUC) *chi.Mux {
	t.Helper()
	return newTestRouter(newTestTokens(t), func(v1 chi.Router) {
		registerAccountingRoutes(v1, NewAccountingHandler(accounting, nopLogger{}))
	})
}

func TestAccountingHandler_CreateEntry(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var gotReq *usecase.EntryReq
		accounting := &mockAccountingUC{
			createFn: func(_ context.Context, req *usecase.EntryReq) (*usecase.EntryInfo, error) {
				gotReq = req
				return &usecase.EntryInfo{
					ID:          1,
					EntryDate:   req.EntryDate,
					Description: req.Description,
					Amount:      req.Amount,
					IsExpense:   req.IsExpense,
				}, nil
			},
		}
		router := newAccountingRouter(t, accounting)

		body := `{"entry_date": "2025-03-01", "description": "office rent", "amount": "1200.50", "is_expense": true}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/accounting/create/", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, gotReq)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), gotReq.EntryDate)
		assert.True(t, gotReq.Amount.Equal(decimal.RequireFromString("1200.50")))

		var resp EntryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "2025-03-01", resp.EntryDate)
		assert.Equal(t, "1200.50", resp.Amount)
		assert.True(t, resp.IsExpense)
	})

	t.Run("malformed date", func(t *testing.T) {
		router := newAccountingRouter(t, &mockAccountingUC{})

		body := `{"entry_date": "01.03.2025", "description": "x", "amount": "1"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/accounting/create/", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ValidationResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.Errors["entry_date"], "2006-01-02")
	})
}

func TestAccountingHandler_ListEntries(t *testing.T) {
	accounting := &mockAccountingUC{
		listFn: func(context.Context) ([]usecase.EntryInfo, error) {
			return []usecase.EntryInfo{
				{
					ID:          2,
					EntryDate:   time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
					Description: "sale",
					Amount:      decimal.RequireFromString("19.99"),
				},
				{
					ID:          1,
					EntryDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
					Description: "office rent",
					Amount:      decimal.RequireFromString("1200.5"),
					IsExpense:   true,
				},
			}, nil
		},
	}
	router := newAccountingRouter(t, accounting)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounting/list/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []EntryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2025-03-02", resp[0].EntryDate)
	assert.Equal(t, "19.99", resp[0].Amount)
	assert.Equal(t, "2025-03-01", resp[1].EntryDate)
	assert.Equal(t, "1200.50", resp[1].Amount)
}

func TestAccountingHandler_Balance(t *testing.T) {
	accounting := &mockAccountingUC{
		balanceFn: func(context.Context) (*usecase.BalanceRes, error) {
			return usecase.NewBalanceRes(
				decimal.RequireFromString("150.00"),
				decimal.RequireFromString("40.50"),
			), nil
		},
	}
	router := newAccountingRouter(t, accounting)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounting/balance/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"income": "150.00", "expenses": "40.50", "balance": "109.50"}`, rec.Body.String())
}
