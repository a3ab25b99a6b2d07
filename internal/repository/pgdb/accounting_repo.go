package pgdb

import (
	"context"
	"fmt"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/internal/repository/pgdb/converter"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// AccountingRepo реализует репозиторий бухгалтерской книги поверх PostgreSQL.
type AccountingRepo struct {
	pool *pgxpool.Pool
	conv converter.AccountingEntryConverter
}

func NewAccountingRepo(pool *pgxpool.Pool, conv converter.AccountingEntryConverter) *AccountingRepo {
	return &AccountingRepo{pool: pool, conv: conv}
}

const accountingColumns = `id, entry_date, description, amount, is_expense, created_at`

func (a *AccountingRepo) Create(ctx context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error) {
	query := `
		INSERT INTO accounting_entries (entry_date, description, amount, is_expense)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + accountingColumns + `;
	`

	row := a.pool.QueryRow(ctx, query,
		entry.EntryDate, entry.Description, entry.Amount, entry.IsExpense)

	model, err := scanAccountingEntry(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(model), nil
}

// List возвращает записи книги, новые первыми.
func (a *AccountingRepo) List(ctx context.Context) ([]domain.AccountingEntry, error) {
	query := `SELECT ` + accountingColumns + ` FROM accounting_entries ORDER BY entry_date DESC, id DESC`

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.AccountingEntry, 0)
	for rows.Next() {
		model, err := scanAccountingEntry(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *a.conv.ToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}

	return result, nil
}

// Sums агрегирует доходы и расходы одним запросом.
func (a *AccountingRepo) Sums(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN NOT is_expense THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN is_expense THEN amount ELSE 0 END), 0) AS expenses
		FROM accounting_entries;
	`

	var income, expenses decimal.Decimal
	if err := a.pool.QueryRow(ctx, query).Scan(&income, &expenses); err != nil {
		return decimal.Zero, decimal.Zero, e.Wrap(whereami.WhereAmI(), err)
	}

	return income, expenses, nil
}

func scanAccountingEntry(row pgx.Row) (*converter.AccountingEntryModel, error) {
	var model converter.AccountingEntryModel
	err := row.Scan(
		&model.ID, &model.EntryDate, &model.Description,
		&model.Amount, &model.IsExpense, &model.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
