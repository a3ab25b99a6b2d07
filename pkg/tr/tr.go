package tr

import (
	"context"

	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/jackc/pgx/v5"
)

const txKey = "tx"

// CtxWithTx кладёт транзакцию в контекст для передачи в репозитории.
// Значение принимается как any: обёртка транзакционного менеджера отдаёт
// уже начатую pgx.Tx нетипизированно, проверка типа выполняется при чтении.
func CtxWithTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста.
// Репозитории вызывают его только в операциях, которые обязаны
// выполняться внутри транзакции.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txKey).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}

	return tx, nil
}
