package usecase

import (
	"context"

	"github.com/ananas-shop/commerce-backend/internal/auth"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error)
	SearchProducts(ctx context.Context, query string) ([]ProductInfo, error)
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	CreateProduct(ctx context.Context, req *ProductReq) (*ProductInfo, error)
	UpdateProduct(ctx context.Context, ident *auth.Identity, id int64, req *ProductReq) (*ProductInfo, error)
	DeleteProduct(ctx context.Context, ident *auth.Identity, id int64) error
	Statistics(ctx context.Context) (*ProductStatistics, error)
	CreateCategory(ctx context.Context, name string) (*CategoryInfo, error)
}

type CartUC interface {
	GetCart(ctx context.Context, customerID int64) (*CartRes, error)
	ReplaceCart(ctx context.Context, customerID int64, productIDs []int64) (*CartContentsRes, error)
}

type IdentityUC interface {
	Login(ctx context.Context, req *LoginReq) (*auth.TokenPair, error)
	RegisterVendor(ctx context.Context, req *RegisterVendorReq) (*VendorInfo, error)
	RegisterCustomer(ctx context.Context, req *RegisterCustomerReq) (*CustomerInfo, error)
	ListVendors(ctx context.Context) ([]VendorInfo, error)
	ListCustomers(ctx context.Context) ([]CustomerInfo, error)
	CountVendors(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	VendorProfile(ctx context.Context, token string) (*VendorProfileRes, error)
	UpdateVendorProfile(ctx context.Context, token string, req *VendorProfileReq) (*VendorInfo, error)
	DeleteVendorProfile(ctx context.Context, token string) error
	VendorDetail(ctx context.Context, id int64) (*VendorProfileRes, error)
}

type CheckoutUC interface {
	CreateCheckoutSession(ctx context.Context, productID int64) (*CheckoutSessionRes, error)
}

type AccountingUC interface {
	ListEntries(ctx context.Context) ([]EntryInfo, error)
	CreateEntry(ctx context.Context, req *EntryReq) (*EntryInfo, error)
	Balance(ctx context.Context) (*BalanceRes, error)
}
