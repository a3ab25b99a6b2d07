package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingEntry описывает запись бухгалтерской книги.
// Сумма хранится с точностью до 2 знаков, не более 10 значащих цифр.
type AccountingEntry struct {
	ID          int64
	EntryDate   time.Time
	Description string
	Amount      decimal.Decimal
	IsExpense   bool
	CreatedAt   time.Time
}

func NewAccountingEntry(entryDate time.Time, description string, amount decimal.Decimal, isExpense bool) *AccountingEntry {
	return &AccountingEntry{
		EntryDate:   entryDate,
		Description: description,
		Amount:      amount,
		IsExpense:   isExpense,
	}
}
