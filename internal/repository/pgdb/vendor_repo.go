package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/internal/repository/pgdb/converter"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// VendorRepo реализует репозиторий продавцов поверх PostgreSQL.
type VendorRepo struct {
	pool *pgxpool.Pool
	conv converter.VendorConverter
}

func NewVendorRepo(pool *pgxpool.Pool, conv converter.VendorConverter) *VendorRepo {
	return &VendorRepo{pool: pool, conv: conv}
}

const vendorColumns = `id, email, name, second_name, phone_number, description,
	password_hash, is_vendor, created_at, updated_at`

// Create вставляет продавца. Нарушение уникальности email возвращается
// как e.ErrEmailTaken.
func (v *VendorRepo) Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	query := `
		INSERT INTO vendors (email, name, second_name, phone_number, description, password_hash, is_vendor)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + vendorColumns + `;
	`

	row := v.pool.QueryRow(ctx, query,
		vendor.Email, vendor.Name, vendor.SecondName, vendor.PhoneNumber,
		vendor.Description, vendor.PasswordHash, vendor.IsVendor,
	)

	model, err := scanVendor(row)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(model), nil
}

// Update полностью заменяет профиль продавца.
func (v *VendorRepo) Update(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	query := `
		UPDATE vendors
		SET email = $2, name = $3, second_name = $4, phone_number = $5, description = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + vendorColumns + `;
	`

	row := v.pool.QueryRow(ctx, query,
		vendor.ID, vendor.Email, vendor.Name, vendor.SecondName,
		vendor.PhoneNumber, vendor.Description,
	)

	model, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(model), nil
}

// Delete удаляет продавца. Отсутствие строки — ошибка.
func (v *VendorRepo) Delete(ctx context.Context, id int64) error {
	result, err := v.pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

func (v *VendorRepo) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	row := v.pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)

	model, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(model), nil
}

func (v *VendorRepo) GetByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	row := v.pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE email = $1`, email)

	model, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(model), nil
}

func (v *VendorRepo) List(ctx context.Context) ([]domain.Vendor, error) {
	rows, err := v.pool.Query(ctx, `SELECT `+vendorColumns+` FROM vendors ORDER BY id`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Vendor, 0)
	for rows.Next() {
		model, err := scanVendor(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *v.conv.ToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}

	return result, nil
}

func (v *VendorRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := v.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vendors`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func scanVendor(row pgx.Row) (*converter.VendorModel, error) {
	var model converter.VendorModel
	err := row.Scan(
		&model.ID, &model.Email, &model.Name, &model.SecondName, &model.PhoneNumber,
		&model.Description, &model.PasswordHash, &model.IsVendor,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
