package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/ananas-shop/commerce-backend/internal/auth"
	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/ananas-shop/commerce-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CatalogUseCase реализует бизнес-логику каталога товаров.
// Мутации пишут outbox-событие в одной транзакции с изменением строки.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	vendorRepo   VendorRepository
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	vendorRepo VendorRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		vendorRepo:   vendorRepo,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// ListProducts возвращает товары с необязательными фильтрами по категории и
// точной цене.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, &req.Filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// SearchProducts ищет товары по подстроке имени без учёта регистра.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, query string) ([]ProductInfo, error) {
	const op = "CatalogUseCase.SearchProducts"

	products, err := c.productRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает один товар, сначала заглядывая в кэш.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "CatalogUseCase.GetProduct"

	cached, err := c.cacheRepo.GetProducts(ctx, []int64{id})
	if err == nil {
		if product, ok := cached[id]; ok {
			return &product, nil
		}
	}

	infos, err := c.productRepo.GetProductsInfo(ctx, []int64{id})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(infos) == 0 {
		return nil, e.Wrap(op, e.ErrNotFound)
	}
	product := infos[0]

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProducts(bgCtx, infos); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return &product, nil
}

// CreateProduct создаёт товар после валидации и пишет событие каталога
// в той же транзакции.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *ProductReq) (*ProductInfo, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := c.validateProduct(ctx, req); err != nil {
		return nil, err
	}

	product := domain.NewProduct(req.VendorID, req.CategoryID, req.Name, req.Description, req.Price)

	created, err := c.mutate(ctx, ProductCreated, func(txCtx context.Context) (*domain.Product, error) {
		return c.productRepo.Create(txCtx, product)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.productInfo(ctx, created.ID)
}

// UpdateProduct полностью заменяет представление товара. Требуются роль
// продавца и владение целевым товаром.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, ident *auth.Identity, id int64, req *ProductReq) (*ProductInfo, error) {
	const op = "CatalogUseCase.UpdateProduct"

	existing, err := c.authorizeMutation(ctx, ident, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.validateProduct(ctx, req); err != nil {
		return nil, err
	}

	product := domain.NewProduct(req.VendorID, req.CategoryID, req.Name, req.Description, req.Price)
	product.ID = existing.ID

	updated, err := c.mutate(ctx, ProductUpdated, func(txCtx context.Context) (*domain.Product, error) {
		return c.productRepo.Update(txCtx, product)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.productInfo(ctx, updated.ID)
}

// DeleteProduct удаляет товар. Требуются роль продавца и владение.
// Отсутствие строки — ошибка, а не тихий успех.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, ident *auth.Identity, id int64) error {
	const op = "CatalogUseCase.DeleteProduct"

	existing, err := c.authorizeMutation(ctx, ident, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	_, err = c.mutate(ctx, ProductDeleted, func(txCtx context.Context) (*domain.Product, error) {
		if err := c.productRepo.Delete(txCtx, existing.ID); err != nil {
			return nil, err
		}
		return existing, nil
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Statistics возвращает SQL-агрегаты max/min/avg по ценам каталога.
func (c *CatalogUseCase) Statistics(ctx context.Context) (*ProductStatistics, error) {
	const op = "CatalogUseCase.Statistics"

	stats, err := c.productRepo.Statistics(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return stats, nil
}

// CreateCategory создаёт категорию по имени. Повторное создание с тем же
// именем возвращает существующую строку.
func (c *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*CategoryInfo, error) {
	const op = "CatalogUseCase.CreateCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		v := e.NewValidationError()
		v.Addf("name", "name is required")
		return nil, v
	}

	var err error

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

	var category *domain.Category
	category, err = c.categoryRepo.Create(ctx, domain.NewCategory(name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryInfo{ID: category.ID, Name: category.Name}, nil
}

// authorizeMutation проверяет роль продавца и владение товаром, возвращая
// существующую строку.
func (c *CatalogUseCase) authorizeMutation(ctx context.Context, ident *auth.Identity, id int64) (*domain.Product, error) {
	if err := auth.VendorRequired(ident); err != nil {
		return nil, err
	}

	existing, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.OwnerOrReadOnly(ident, existing.VendorID, true); err != nil {
		return nil, err
	}

	return existing, nil
}

// mutate выполняет мутацию товара и запись outbox-события в одной транзакции,
// после коммита инвалидируя кэш.
func (c *CatalogUseCase) mutate(ctx context.Context, eventType OutboxEventType, fn func(ctx context.Context) (*domain.Product, error)) (*domain.Product, error) {
	var err error

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	var product *domain.Product
	product, err = fn(ctx)
	if err != nil {
		return nil, err
	}

	var payload []byte
	payload, err = c.eventPayload(eventType, product)
	if err != nil {
		return nil, err
	}

	_, err = c.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), eventType, product.ID, payload))
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	if cacheErr := c.cacheRepo.DeleteProducts(ctx, []int64{product.ID}); cacheErr != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", cacheErr)
	}

	return product, nil
}

// eventPayload сериализует событие каталога для публикации в Kafka.
func (c *CatalogUseCase) eventPayload(eventType OutboxEventType, product *domain.Product) ([]byte, error) {
	return json.Marshal(struct {
		EventType  OutboxEventType `json:"event_type"`
		ProductID  int64           `json:"product_id"`
		VendorID   int64           `json:"vendor_id"`
		CategoryID int64           `json:"category_id"`
		Name       string          `json:"name"`
		Price      int64           `json:"price"`
		OccurredAt int64           `json:"occurred_at"`
	}{
		EventType:  eventType,
		ProductID:  product.ID,
		VendorID:   product.VendorID,
		CategoryID: product.CategoryID,
		Name:       product.Name,
		Price:      product.Price,
		OccurredAt: time.Now().UTC().UnixNano(),
	})
}

// productInfo перечитывает товар вместе с названием категории.
func (c *CatalogUseCase) productInfo(ctx context.Context, id int64) (*ProductInfo, error) {
	infos, err := c.productRepo.GetProductsInfo(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, e.ErrNotFound
	}

	return &infos[0], nil
}

// validateProduct проверяет поля и существование продавца и категории,
// накапливая ошибки по полям.
func (c *CatalogUseCase) validateProduct(ctx context.Context, req *ProductReq) error {
	v := e.NewValidationError()

	if strings.TrimSpace(req.Name) == "" {
		v.Addf("name", "name is required")
	}
	if req.Price < 0 {
		v.Addf("price", "price must be non-negative")
	}

	if req.VendorID <= 0 {
		v.Addf("vendor", "vendor is required")
	} else if _, err := c.vendorRepo.GetByID(ctx, req.VendorID); err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			return err
		}
		v.Addf("vendor", "vendor %d does not exist", req.VendorID)
	}

	if req.CategoryID <= 0 {
		v.Addf("category", "category is required")
	} else {
		exists, err := c.categoryRepo.Exists(ctx, req.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			v.Addf("category", "category %d does not exist", req.CategoryID)
		}
	}

	return v.OrNil()
}
