package http

import (
	"net/http"
	"time"

	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

const entryDateLayout = "2006-01-02"

type AccountingHandler struct {
	accountingUsecase usecase.AccountingUC
	logger            logger.Logger
}

func NewAccountingHandler(accountingUsecase usecase.AccountingUC, logger logger.Logger) *AccountingHandler {
	return &AccountingHandler{accountingUsecase: accountingUsecase, logger: logger}
}

type EntryRequest struct {
	EntryDate   string          `json:"entry_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IsExpense   bool            `json:"is_expense"`
}

// Денежные поля отдаются строками с фиксированными двумя знаками:
// decimal.MarshalJSON отбрасывает хвостовые нули.
type EntryResponse struct {
	ID          int64  `json:"id"`
	EntryDate   string `json:"entry_date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	IsExpense   bool   `json:"is_expense"`
}

type BalanceResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

func toEntryResponse(info *usecase.EntryInfo) *EntryResponse {
	return &EntryResponse{
		ID:          info.ID,
		EntryDate:   info.EntryDate.Format(entryDateLayout),
		Description: info.Description,
		Amount:      info.Amount.StringFixed(2),
		IsExpense:   info.IsExpense,
	}
}

// listEntries
//
//	@Summary	Записи бухгалтерской книги, новые первыми
//	@Tags		accounting
//	@Produce	json
//	@Success	200	{array}	EntryResponse
//	@Router		/accounting/list/ [get]
func (a *AccountingHandler) listEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := a.accountingUsecase.ListEntries(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *toEntryResponse(&entries[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createEntry
//
//	@Summary		Ручная запись в книгу
//	@Description	Сумма принимается с точностью до 2 знаков, не более 10 значащих цифр
//	@Tags			accounting
//	@Accept			json
//	@Produce		json
//	@Param			entry	body		EntryRequest	true	"Запись"
//	@Success		201		{object}	EntryResponse
//	@Failure		400		{object}	ValidationResponse
//	@Router			/accounting/create/ [post]
func (a *AccountingHandler) createEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	var entryDate time.Time
	if req.EntryDate != "" {
		parsed, err := time.Parse(entryDateLayout, req.EntryDate)
		if err != nil {
			validation := newFieldError("entry_date", "must be a date in format %s", entryDateLayout)
			WriteError(w, validation)
			return
		}
		entryDate = parsed
	}

	entry, err := a.accountingUsecase.CreateEntry(r.Context(), &usecase.EntryReq{
		EntryDate:   entryDate,
		Description: req.Description,
		Amount:      req.Amount,
		IsExpense:   req.IsExpense,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toEntryResponse(entry))
}

// balance
//
//	@Summary	Баланс книги: доходы, расходы и разница
//	@Tags		accounting
//	@Produce	json
//	@Success	200	{object}	BalanceResponse
//	@Router		/accounting/balance/ [get]
func (a *AccountingHandler) balance(w http.ResponseWriter, r *http.Request) {
	balance, err := a.accountingUsecase.Balance(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &BalanceResponse{
		Income:   balance.Income.StringFixed(2),
		Expenses: balance.Expenses.StringFixed(2),
		Balance:  balance.Balance.StringFixed(2),
	})
}
