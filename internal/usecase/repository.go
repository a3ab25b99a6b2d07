package usecase

import (
	"context"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error)
	SearchByName(ctx context.Context, query string) ([]ProductInfo, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]ProductInfo, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	Statistics(ctx context.Context) (*ProductStatistics, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	Update(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Vendor, error)
	List(ctx context.Context) ([]domain.Vendor, error)
	Count(ctx context.Context) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type CartRepository interface {
	Create(ctx context.Context, customerID int64) (*domain.Cart, error)
	GetByCustomerID(ctx context.Context, customerID int64) (*domain.Cart, error)
	ReplaceProducts(ctx context.Context, cartID int64, productIDs []int64) error
}

type AccountingRepository interface {
	Create(ctx context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error)
	List(ctx context.Context) ([]domain.AccountingEntry, error)
	Sums(ctx context.Context) (income, expenses decimal.Decimal, err error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
