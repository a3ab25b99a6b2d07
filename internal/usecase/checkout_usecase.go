package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// CheckoutUseCase делегирует оплату hosted-checkout сессии платёжного
// коллаборатора. Без повторов и без идемпотентности: завершение оплаты
// на этой стороне не подтверждается.
type CheckoutUseCase struct {
	productRepo    ProductRepository
	payment        PaymentInfra
	accountingRepo AccountingRepository
	logger         logger.Logger
}

func NewCheckoutUC(
	productRepo ProductRepository,
	payment PaymentInfra,
	accountingRepo AccountingRepository,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		productRepo:    productRepo,
		payment:        payment,
		accountingRepo: accountingRepo,
		logger:         logger,
	}
}

// CreateCheckoutSession загружает товар, создаёт платёжную сессию с
// количеством 1 и возвращает ответ коллаборатора как есть. Созданная сессия
// фиксируется приходной записью в бухгалтерской книге.
func (c *CheckoutUseCase) CreateCheckoutSession(ctx context.Context, productID int64) (*CheckoutSessionRes, error) {
	const op = "CheckoutUseCase.CreateCheckoutSession"

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	session, err := c.payment.CreateCheckoutSession(ctx, NewCheckoutSessionReq(
		product.ID,
		strconv.FormatInt(product.ID, 10),
		product.Price,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.recordEntry(ctx, product)

	return session, nil
}

// recordEntry пишет приходную запись о созданной сессии. Ошибка записи
// не отменяет уже созданную сессию, только логируется.
func (c *CheckoutUseCase) recordEntry(ctx context.Context, product *domain.Product) {
	const op = "CheckoutUseCase.recordEntry"

	amount := decimal.NewFromInt(product.Price).Div(decimal.NewFromInt(100))
	entry := domain.NewAccountingEntry(
		time.Now().UTC(),
		fmt.Sprintf("checkout session for product %d", product.ID),
		amount,
		false,
	)

	if _, err := c.accountingRepo.Create(ctx, entry); err != nil {
		c.logger.Warnf("Failed to record checkout in ledger: %v", e.Wrap(op, err))
	}
}
