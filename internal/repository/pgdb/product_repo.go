package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/internal/repository/pgdb/converter"
	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет товар в рамках транзакции из контекста.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (vendor_id, category_id, name, description, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, vendor_id, category_id, name, description, price, created_at, updated_at;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query,
		product.VendorID, product.CategoryID, product.Name, product.Description, product.Price,
	).Scan(
		&model.ID, &model.VendorID, &model.CategoryID,
		&model.Name, &model.Description, &model.Price,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update полностью заменяет представление товара в рамках транзакции из контекста.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET vendor_id = $2, category_id = $3, name = $4, description = $5, price = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, vendor_id, category_id, name, description, price, created_at, updated_at;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query,
		product.ID, product.VendorID, product.CategoryID,
		product.Name, product.Description, product.Price,
	).Scan(
		&model.ID, &model.VendorID, &model.CategoryID,
		&model.Name, &model.Description, &model.Price,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Delete удаляет товар в рамках транзакции из контекста.
// Отсутствие строки возвращается как not found, а не как тихий успех.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

// GetByID возвращает товар по идентификатору.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, vendor_id, category_id, name, description, price, created_at, updated_at
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.VendorID, &model.CategoryID,
		&model.Name, &model.Description, &model.Price,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// List возвращает товары с необязательными фильтрами по категории и точной цене.
func (p *ProductRepo) List(ctx context.Context, filter *usecase.ProductFilter) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.vendor_id, pr.category_id, cat.name, pr.name, pr.description, pr.price
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
	`

	var (
		args    []any
		clauses []string
	)
	if filter != nil && filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clauses = append(clauses, "pr.category_id = $"+strconv.Itoa(len(args)))
	}
	if filter != nil && filter.Price != nil {
		args = append(args, *filter.Price)
		clauses = append(clauses, "pr.price = $"+strconv.Itoa(len(args)))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY pr.id"

	return p.queryInfos(ctx, query, args...)
}

// SearchByName ищет товары по подстроке имени без учёта регистра.
func (p *ProductRepo) SearchByName(ctx context.Context, search string) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.vendor_id, pr.category_id, cat.name, pr.name, pr.description, pr.price
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.name ILIKE '%' || $1 || '%'
		ORDER BY pr.id;
	`

	return p.queryInfos(ctx, query, search)
}

// ListByVendor возвращает товары одного продавца.
func (p *ProductRepo) ListByVendor(ctx context.Context, vendorID int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.vendor_id, pr.category_id, cat.name, pr.name, pr.description, pr.price
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.vendor_id = $1
		ORDER BY pr.id;
	`

	return p.queryInfos(ctx, query, vendorID)
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам,
// включая название категории.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.vendor_id, pr.category_id, cat.name, pr.name, pr.description, pr.price
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ANY($1);
	`

	return p.queryInfos(ctx, query, ids)
}

// Statistics возвращает SQL-агрегаты max/min/avg по ценам каталога.
// На пустом каталоге агрегаты равны NULL.
func (p *ProductRepo) Statistics(ctx context.Context) (*usecase.ProductStatistics, error) {
	query := `
		SELECT MAX(price), MIN(price), AVG(price)
		FROM products;
	`

	var stats usecase.ProductStatistics
	err := p.pool.QueryRow(ctx, query).Scan(&stats.MaxPrice, &stats.MinPrice, &stats.AvgPrice)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &stats, nil
}

func (p *ProductRepo) queryInfos(ctx context.Context, query string, args ...any) ([]usecase.ProductInfo, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var info usecase.ProductInfo
		if err := rows.Scan(
			&info.ID, &info.VendorID, &info.CategoryID,
			&info.CategoryName, &info.Name, &info.Description, &info.Price,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}

	return result, nil
}
