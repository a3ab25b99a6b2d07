package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ananas-shop/commerce-backend/internal/auth"
	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRouter(t *testing.T, catalog *mockCatalogUC) (*chi.Mux, *auth.TokenService) {
	t.Helper()
	tokens := newTestTokens(t)
	router := newTestRouter(tokens, func(v1 chi.Router) {
		registerProductRoutes(v1,
			NewProductHandler(catalog, nopLogger{}),
			NewCartHandler(&mockCartUC{}, nopLogger{}),
			NewCheckoutHandler(&mockCheckoutUC{}, nopLogger{}),
		)
	})
	return router, tokens
}

func TestProductHandler_ListProducts(t *testing.T) {
	lamp := usecase.NewProductInfo(5, 10, 1, "light", "lamp", "warm", 1999)

	t.Run("filters are passed through", func(t *testing.T) {
		var gotReq *usecase.ListProductsReq
		catalog := &mockCatalogUC{
			listFn: func(_ context.Context, req *usecase.ListProductsReq) ([]usecase.ProductInfo, error) {
				gotReq = req
				return []usecase.ProductInfo{lamp}, nil
			},
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product/list/?category=1&price=1999", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotReq)
		require.NotNil(t, gotReq.Filter.CategoryID)
		assert.Equal(t, int64(1), *gotReq.Filter.CategoryID)
		require.NotNil(t, gotReq.Filter.Price)
		assert.Equal(t, int64(1999), *gotReq.Filter.Price)

		var resp []ProductResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "lamp", resp[0].Name)
		assert.Equal(t, "light", resp[0].CategoryName)
	})

	t.Run("malformed filter", func(t *testing.T) {
		router, _ := newProductRouter(t, &mockCatalogUC{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product/list/?category=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	lamp := usecase.NewProductInfo(5, 10, 1, "light", "lamp", "", 1999)
	catalog := &mockCatalogUC{
		getFn: func(_ context.Context, id int64) (*usecase.ProductInfo, error) {
			if id != 5 {
				return nil, e.Wrap("product", e.ErrNotFound)
			}
			return &lamp, nil
		},
	}
	router, _ := newProductRouter(t, catalog)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product/5/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ProductResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, int64(1999), resp.Price)
	})

	t.Run("not found body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product/404/", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "not found", resp.Message)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product/abc/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		catalog := &mockCatalogUC{
			createFn: func(_ context.Context, req *usecase.ProductReq) (*usecase.ProductInfo, error) {
				info := usecase.NewProductInfo(1, req.VendorID, req.CategoryID, "light", req.Name, req.Description, req.Price)
				return &info, nil
			},
		}
		router, _ := newProductRouter(t, catalog)

		body := `{"vendor_id": 10, "category_id": 1, "name": "lamp", "price": 1999}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/product/create/", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp ProductResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "lamp", resp.Name)
	})

	t.Run("validation errors as field map", func(t *testing.T) {
		catalog := &mockCatalogUC{
			createFn: func(context.Context, *usecase.ProductReq) (*usecase.ProductInfo, error) {
				v := e.NewValidationError()
				v.Addf("name", "name is required")
				v.Addf("price", "price must be non-negative")
				return nil, v
			},
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/product/create/", strings.NewReader(`{}`)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ValidationResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "name is required", resp.Errors["name"])
		assert.Equal(t, "price must be non-negative", resp.Errors["price"])
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newProductRouter(t, &mockCatalogUC{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/product/create/", strings.NewReader(`{broken`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_CreateCategory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		catalog := &mockCatalogUC{
			createCategoryFn: func(_ context.Context, name string) (*usecase.CategoryInfo, error) {
				return &usecase.CategoryInfo{ID: 3, Name: name}, nil
			},
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/product/create/category/", strings.NewReader(`{"name": "lighting"}`)))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp CategoryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(3), resp.ID)
		assert.Equal(t, "lighting", resp.Name)
	})

	t.Run("blank name", func(t *testing.T) {
		catalog := &mockCatalogUC{
			createCategoryFn: func(context.Context, string) (*usecase.CategoryInfo, error) {
				v := e.NewValidationError()
				v.Addf("name", "name is required")
				return nil, v
			},
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/product/create/category/", strings.NewReader(`{"name": ""}`)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ValidationResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "name is required", resp.Errors["name"])
	})
}

func TestProductHandler_UpdateProductIdentity(t *testing.T) {
	var gotIdent *auth.Identity
	catalog := &mockCatalogUC{
		updateFn: func(_ context.Context, ident *auth.Identity, _ int64, req *usecase.ProductReq) (*usecase.ProductInfo, error) {
			gotIdent = ident
			info := usecase.NewProductInfo(5, req.VendorID, req.CategoryID, "light", req.Name, "", req.Price)
			return &info, nil
		},
	}
	router, tokens := newProductRouter(t, catalog)

	pair, err := tokens.IssuePair(10, true)
	require.NoError(t, err)

	body := `{"vendor_id": 10, "category_id": 1, "name": "lamp v2", "price": 2099}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/product/5/update/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotIdent)
	assert.Equal(t, int64(10), gotIdent.ID)
	assert.True(t, gotIdent.IsVendor)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		catalog := &mockCatalogUC{
			deleteFn: func(context.Context, *auth.Identity, int64) error { return nil },
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/product/5/delete/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("permission denied", func(t *testing.T) {
		catalog := &mockCatalogUC{
			deleteFn: func(context.Context, *auth.Identity, int64) error {
				return e.Wrap("not the owner", e.ErrPermissionDenied)
			},
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/product/5/delete/", nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "permission denied", resp.Message)
	})

	t.Run("missing credential", func(t *testing.T) {
		catalog := &mockCatalogUC{
			deleteFn: func(context.Context, *auth.Identity, int64) error {
				return e.Wrap("credential required", e.ErrAuthenticationFailed)
			},
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/product/5/delete/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "credential required", resp.Message)
	})
}

func TestProductHandler_Statistics(t *testing.T) {
	t.Run("aggregates", func(t *testing.T) {
		maxPrice, minPrice, avgPrice := int64(2000), int64(100), 1050.0
		catalog := &mockCatalogUC{
			statsFn: func(context.Context) (*usecase.ProductStatistics, error) {
				return &usecase.ProductStatistics{MaxPrice: &maxPrice, MinPrice: &minPrice, AvgPrice: &avgPrice}, nil
			},
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product/statistics/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp StatisticsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(2000), *resp.MaxPrice)
		assert.Equal(t, int64(100), *resp.MinPrice)
		assert.Equal(t, 1050.0, *resp.AvgPrice)
	})

	t.Run("empty catalog serializes nulls", func(t *testing.T) {
		catalog := &mockCatalogUC{
			statsFn: func(context.Context) (*usecase.ProductStatistics, error) {
				return &usecase.ProductStatistics{}, nil
			},
		}
		router, _ := newProductRouter(t, catalog)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product/statistics/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"max_price": null, "min_price": null, "avg_price": null}`, rec.Body.String())
	})
}
