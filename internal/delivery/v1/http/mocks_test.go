package http

import (
	"context"

	"github.com/ananas-shop/commerce-backend/internal/auth"
	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// Моки делегируют в func-поля; незаполненный метод возвращает not found,
// чтобы случайный вызов был виден в тесте.

type mockCatalogUC struct {
	listFn   func(ctx context.Context, req *usecase.ListProductsReq) ([]usecase.ProductInfo, error)
	searchFn func(ctx context.Context, query string) ([]usecase.ProductInfo, error)
	getFn    func(ctx context.Context, id int64) (*usecase.ProductInfo, error)
	createFn func(ctx context.Context, req *usecase.ProductReq) (*usecase.ProductInfo, error)
	updateFn func(ctx context.Context, ident *auth.Identity, id int64, req *usecase.ProductReq) (*usecase.ProductInfo, error)
	deleteFn func(ctx context.Context, ident *auth.Identity, id int64) error
	statsFn  func(ctx context.Context) (*usecase.ProductStatistics, error)

	createCategoryFn func(ctx context.Context, name string) (*usecase.CategoryInfo, error)
}

func (m *mockCatalogUC) ListProducts(ctx context.Context, req *usecase.ListProductsReq) ([]usecase.ProductInfo, error) {
	if m.listFn == nil {
		return nil, e.ErrNotFound
	}
	return m.listFn(ctx, req)
}

func (m *mockCatalogUC) SearchProducts(ctx context.Context, query string) ([]usecase.ProductInfo, error) {
	if m.searchFn == nil {
		return nil, e.ErrNotFound
	}
	return m.searchFn(ctx, query)
}

func (m *mockCatalogUC) GetProduct(ctx context.Context, id int64) (*usecase.ProductInfo, error) {
	if m.getFn == nil {
		return nil, e.ErrNotFound
	}
	return m.getFn(ctx, id)
}

func (m *mockCatalogUC) CreateProduct(ctx context.Context, req *usecase.ProductReq) (*usecase.ProductInfo, error) {
	if m.createFn == nil {
		return nil, e.ErrNotFound
	}
	return m.createFn(ctx, req)
}

func (m *mockCatalogUC) UpdateProduct(ctx context.Context, ident *auth.Identity, id int64, req *usecase.ProductReq) (*usecase.ProductInfo, error) {
	if m.updateFn == nil {
		return nil, e.ErrNotFound
	}
	return m.updateFn(ctx, ident, id, req)
}

func (m *mockCatalogUC) DeleteProduct(ctx context.Context, ident *auth.Identity, id int64) error {
	if m.deleteFn == nil {
		return e.ErrNotFound
	}
	return m.deleteFn(ctx, ident, id)
}

func (m *mockCatalogUC) Statistics(ctx context.Context) (*usecase.ProductStatistics, error) {
	if m.statsFn == nil {
		return nil, e.ErrNotFound
	}
	return m.statsFn(ctx)
}

func (m *mockCatalogUC) CreateCategory(ctx context.Context, name string) (*usecase.CategoryInfo, error) {
	if m.createCategoryFn == nil {
		return nil, e.ErrNotFound
	}
	return m.createCategoryFn(ctx, name)
}

type mockCartUC struct {
	getFn     func(ctx context.Context, customerID int64) (*usecase.CartRes, error)
	replaceFn func(ctx context.Context, customerID int64, productIDs []int64) (*usecase.CartContentsRes, error)
}

func (m *mockCartUC) GetCart(ctx context.Context, customerID int64) (*usecase.CartRes, error) {
	if m.getFn == nil {
		return nil, e.ErrNotFound
	}
	return m.getFn(ctx, customerID)
}

func (m *mockCartUC) ReplaceCart(ctx context.Context, customerID int64, productIDs []int64) (*usecase.CartContentsRes, error) {
	if m.replaceFn == nil {
		return nil, e.ErrNotFound
	}
	return m.replaceFn(ctx, customerID, productIDs)
}

type mockIdentityUC struct {
	loginFn            func(ctx context.Context, req *usecase.LoginReq) (*auth.TokenPair, error)
	registerVendorFn   func(ctx context.Context, req *usecase.RegisterVendorReq) (*usecase.VendorInfo, error)
	registerCustomerFn func(ctx context.Context, req *usecase.RegisterCustomerReq) (*usecase.CustomerInfo, error)
	vendorProfileFn    func(ctx context.Context, token string) (*usecase.VendorProfileRes, error)
}

func (m *mockIdentityUC) Login(ctx context.Context, req *usecase.LoginReq) (*auth.TokenPair, error) {
	if m.loginFn == nil {
		return nil, e.ErrAuthenticationFailed
	}
	return m.loginFn(ctx, req)
}

func (m *mockIdentityUC) RegisterVendor(ctx context.Context, req *usecase.RegisterVendorReq) (*usecase.VendorInfo, error) {
	if m.registerVendorFn == nil {
		return nil, e.ErrNotFound
	}
	return m.registerVendorFn(ctx, req)
}

func (m *mockIdentityUC) RegisterCustomer(ctx context.Context, req *usecase.RegisterCustomerReq) (*usecase.CustomerInfo, error) {
	if m.registerCustomerFn == nil {
		return nil, e.ErrNotFound
	}
	return m.registerCustomerFn(ctx, req)
}

func (m *mockIdentityUC) ListVendors(context.Context) ([]usecase.VendorInfo, error) {
	return []usecase.VendorInfo{}, nil
}

func (m *mockIdentityUC) ListCustomers(context.Context) ([]usecase.CustomerInfo, error) {
	return []usecase.CustomerInfo{}, nil
}

func (m *mockIdentityUC) CountVendors(context.Context) (int64, error) {
	return 0, nil
}

func (m *mockIdentityUC) CountCustomers(context.Context) (int64, error) {
	return 0, nil
}

func (m *mockIdentityUC) VendorProfile(ctx context.Context, token string) (*usecase.VendorProfileRes, error) {
	if m.vendorProfileFn == nil {
		return nil, e.ErrNotFound
	}
	return m.vendorProfileFn(ctx, token)
}

func (m *mockIdentityUC) UpdateVendorProfile(context.Context, string, *usecase.VendorProfileReq) (*usecase.VendorInfo, error) {
	return nil, e.ErrNotFound
}

func (m *mockIdentityUC) DeleteVendorProfile(context.Context, string) error {
	return e.ErrNotFound
}

func (m *mockIdentityUC) VendorDetail(context.Context, int64) (*usecase.VendorProfileRes, error) {
	return nil, e.ErrNotFound
}

type mockCheckoutUC struct {
	createFn func(ctx context.Context, productID int64) (*usecase.CheckoutSessionRes, error)
}

func (m *mockCheckoutUC) CreateCheckoutSession(ctx context.Context, productID int64) (*usecase.CheckoutSessionRes, error) {
	if m.createFn == nil {
		return nil, e.ErrNotFound
	}
	return m.createFn(ctx, productID)
}

type mockAccountingUC struct {
	listFn    func(ctx context.Context) ([]usecase.EntryInfo, error)
	createFn  func(ctx context.Context, req *usecase.EntryReq) (*usecase.EntryInfo, error)
	balanceFn func(ctx context.Context) (*usecase.BalanceRes, error)
}

func (m *mockAccountingUC) ListEntries(ctx context.Context) ([]usecase.EntryInfo, error) {
	if m.listFn == nil {
		return []usecase.EntryInfo{}, nil
	}
	return m.listFn(ctx)
}

func (m *mockAccountingUC) CreateEntry(ctx context.Context, req *usecase.EntryReq) (*usecase.EntryInfo, error) {
	if m.createFn == nil {
		return nil, e.ErrNotFound
	}
	return m.createFn(ctx, req)
}

func (m *mockAccountingUC) Balance(ctx context.Context) (*usecase.BalanceRes, error) {
	if m.balanceFn == nil {
		return nil, e.ErrNotFound
	}
	return m.balanceFn(ctx)
}
