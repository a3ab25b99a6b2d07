package usecase

import (
	"context"
	"time"

	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/ananas-shop/commerce-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CartUseCase реализует бизнес-логику корзины покупателя.
type CartUseCase struct {
	cartRepo     CartRepository
	customerRepo CustomerRepository
	productRepo  ProductRepository
	cacheRepo    CacheRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	customerRepo CustomerRepository,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		cacheRepo:    cacheRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// GetCart возвращает корзину покупателя, развёрнутую до полного профиля
// и полного списка товаров. Регистрация всегда создаёт корзину, но отсутствие
// строки всё равно возвращается как not found.
func (c *CartUseCase) GetCart(ctx context.Context, customerID int64) (*CartRes, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	customer, err := c.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := c.expandProducts(ctx, cart.ProductIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CartRes{
		ID: cart.ID,
		Customer: CustomerInfo{
			ID:          customer.ID,
			Email:       customer.Email,
			Name:        customer.Name,
			SecondName:  customer.SecondName,
			PhoneNumber: customer.PhoneNumber,
			CardNumber:  customer.CardNumber,
			Address:     customer.Address,
			PostCode:    customer.PostCode,
			IsVendor:    customer.IsVendor,
		},
		Products: products,
	}, nil
}

// ReplaceCart полностью заменяет содержимое корзины заданным набором товаров.
func (c *CartUseCase) ReplaceCart(ctx context.Context, customerID int64, productIDs []int64) (*CartContentsRes, error) {
	const op = "CartUseCase.ReplaceCart"

	cart, err := c.cartRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.validateProductIDs(ctx, productIDs); err != nil {
		return nil, err
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	if err = c.cartRepo.ReplaceProducts(ctx, cart.ID, productIDs); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CartContentsRes{
		ID:         cart.ID,
		CustomerID: customerID,
		ProductIDs: productIDs,
	}, nil
}

// expandProducts собирает товары корзины, сначала из кэша, остальное из БД
// с фоновым дозаполнением кэша.
func (c *CartUseCase) expandProducts(ctx context.Context, ids []int64) ([]ProductInfo, error) {
	const op = "CartUseCase.expandProducts"

	if len(ids) == 0 {
		return []ProductInfo{}, nil
	}

	cached, err := c.cacheRepo.GetProducts(ctx, ids)
	if err != nil {
		cached = nil
	}

	var nonCacheable []int64
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			nonCacheable = append(nonCacheable, id)
		}
	}

	var fromDB []ProductInfo
	if len(nonCacheable) > 0 {
		fromDB, err = c.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, err
		}

		// Фоновое добавление товаров в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProducts(bgCtx, fromDB); err != nil {
				c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbMap := make(map[int64]ProductInfo, len(fromDB))
	for _, info := range fromDB {
		dbMap[info.ID] = info
	}

	result := make([]ProductInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := cached[id]; ok {
			result = append(result, info)
		} else if info, ok := dbMap[id]; ok {
			result = append(result, info)
		}
	}

	return result, nil
}

// validateProductIDs проверяет, что все переданные товары существуют.
func (c *CartUseCase) validateProductIDs(ctx context.Context, ids []int64) error {
	v := e.NewValidationError()

	for _, id := range ids {
		if id <= 0 {
			v.Addf("products", "product ids must be positive")
			return v.OrNil()
		}
	}

	if len(ids) == 0 {
		return nil
	}

	infos, err := c.productRepo.GetProductsInfo(ctx, ids)
	if err != nil {
		return err
	}

	known := make(map[int64]struct{}, len(infos))
	for _, info := range infos {
		known[info.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			v.Addf("products", "product %d does not exist", id)
		}
	}

	return v.OrNil()
}
