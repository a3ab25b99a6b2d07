package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/internal/repository/pgdb/converter"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует репозиторий покупателей поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{pool: pool, conv: conv}
}

const customerColumns = `id, email, name, second_name, phone_number, card_number,
	address, post_code, password_hash, is_vendor, created_at, updated_at`

// Create вставляет покупателя внутри текущей транзакции: регистрация создаёт
// покупателя и его корзину атомарно. Нарушение уникальности email
// возвращается как e.ErrEmailTaken.
func (c *CustomerRepo) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO customers (email, name, second_name, phone_number, card_number,
			address, post_code, password_hash, is_vendor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + customerColumns + `;
	`

	row := tx.QueryRow(ctx, query,
		customer.Email, customer.Name, customer.SecondName, customer.PhoneNumber,
		customer.CardNumber, customer.Address, customer.PostCode,
		customer.PasswordHash, customer.IsVendor,
	)

	model, err := scanCustomer(row)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := c.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

	model, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := c.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)

	model, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := c.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Customer, 0)
	for rows.Next() {
		model, err := scanCustomer(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *c.conv.ToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CustomerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func scanCustomer(row pgx.Row) (*converter.CustomerModel, error) {
	var model converter.CustomerModel
	err := row.Scan(
		&model.ID, &model.Email, &model.Name, &model.SecondName, &model.PhoneNumber,
		&model.CardNumber, &model.Address, &model.PostCode, &model.PasswordHash,
		&model.IsVendor, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
