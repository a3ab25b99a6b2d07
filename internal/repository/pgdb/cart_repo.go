package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo реализует репозиторий корзин поверх PostgreSQL. Состав корзины
// хранится в таблице связей cart_products.
type CartRepo struct {
	pool *pgxpool.Pool
}

func NewCartRepo(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// Create создаёт пустую корзину внутри текущей транзакции: корзина появляется
// в той же транзакции, что и сам покупатель.
func (c *CartRepo) Create(ctx context.Context, customerID int64) (*domain.Cart, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cart := domain.NewCart(customerID)

	query := `INSERT INTO carts (customer_id) VALUES ($1) RETURNING id;`
	if err := tx.QueryRow(ctx, query, customerID).Scan(&cart.ID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cart.ProductIDs = make([]int64, 0)

	return cart, nil
}

func (c *CartRepo) GetByCustomerID(ctx context.Context, customerID int64) (*domain.Cart, error) {
	cart := domain.NewCart(customerID)

	query := `SELECT id FROM carts WHERE customer_id = $1`
	if err := c.pool.QueryRow(ctx, query, customerID).Scan(&cart.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	rows, err := c.pool.Query(ctx,
		`SELECT product_id FROM cart_products WHERE cart_id = $1 ORDER BY product_id`, cart.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	cart.ProductIDs = make([]int64, 0)
	for rows.Next() {
		var productID int64
		if err := rows.Scan(&productID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cart.ProductIDs = append(cart.ProductIDs, productID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}

	return cart, nil
}

// ReplaceProducts заменяет состав корзины целиком внутри текущей транзакции.
func (c *CartRepo) ReplaceProducts(ctx context.Context, cartID int64, productIDs []int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_products WHERE cart_id = $1`, cartID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	for _, productID := range productIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO cart_products (cart_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			cartID, productID)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}
