package usecase

import (
	"context"
	"strings"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
)

// Точность бухгалтерской книги: 2 десятичных знака, не более 10 цифр всего.
const (
	amountScale     = 2
	amountMaxDigits = 10
)

// AccountingUseCase реализует минимальную бухгалтерскую книгу.
type AccountingUseCase struct {
	repo   AccountingRepository
	logger logger.Logger
}

func NewAccountingUC(repo AccountingRepository, logger logger.Logger) *AccountingUseCase {
	return &AccountingUseCase{repo: repo, logger: logger}
}

// ListEntries возвращает записи книги, новые первыми.
func (a *AccountingUseCase) ListEntries(ctx context.Context) ([]EntryInfo, error) {
	const op = "AccountingUseCase.ListEntries"

	entries, err := a.repo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infos := make([]EntryInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, entryInfo(&entry))
	}

	return infos, nil
}

// CreateEntry создаёт ручную запись книги после валидации.
func (a *AccountingUseCase) CreateEntry(ctx context.Context, req *EntryReq) (*EntryInfo, error) {
	const op = "AccountingUseCase.CreateEntry"

	if err := validateEntry(req); err != nil {
		return nil, err
	}

	entry, err := a.repo.Create(ctx, domain.NewAccountingEntry(
		req.EntryDate, req.Description, req.Amount, req.IsExpense,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := entryInfo(entry)
	return &info, nil
}

// Balance возвращает суммы прихода и расхода и их разность.
func (a *AccountingUseCase) Balance(ctx context.Context) (*BalanceRes, error) {
	const op = "AccountingUseCase.Balance"

	income, expenses, err := a.repo.Sums(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewBalanceRes(income, expenses), nil
}

// validateEntry проверяет поля записи: сумма неотрицательна, не более
// 2 знаков после запятой и 10 цифр всего.
func validateEntry(req *EntryReq) error {
	v := e.NewValidationError()

	if req.EntryDate.IsZero() {
		v.Addf("date", "date is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		v.Addf("description", "description is required")
	}
	if req.Amount.IsNegative() {
		v.Addf("amount", "amount must be non-negative")
	}
	if req.Amount.Exponent() < -amountScale {
		v.Addf("amount", "amount must have at most %d decimal places", amountScale)
	}
	if req.Amount.NumDigits() > amountMaxDigits {
		v.Addf("amount", "amount must have at most %d digits", amountMaxDigits)
	}

	return v.OrNil()
}

func entryInfo(entry *domain.AccountingEntry) EntryInfo {
	return EntryInfo{
		ID:          entry.ID,
		EntryDate:   entry.EntryDate,
		Description: entry.Description,
		Amount:      entry.Amount,
		IsExpense:   entry.IsExpense,
	}
}
