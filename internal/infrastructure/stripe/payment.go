package stripe

import (
	"context"
	"errors"

	"github.com/ananas-shop/commerce-backend/internal/cfg"
	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// PaymentInfra создаёт hosted-checkout сессии в Stripe. Ключ передаётся
// клиенту явно, глобальный stripe.Key не используется.
type PaymentInfra struct {
	api    *client.API
	cfg    *cfg.StripeCfg
	logger logger.Logger
}

func NewPaymentInfra(cfg *cfg.StripeCfg, logger logger.Logger) *PaymentInfra {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &PaymentInfra{
		api:    api,
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCheckoutSession создаёт сессию с одной позицией. Ошибки Stripe
// разделяются на клиентские (невалидный запрос) и серверные.
func (p *PaymentInfra) CreateCheckoutSession(ctx context.Context, req *usecase.CheckoutSessionReq) (*usecase.CheckoutSessionRes, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Name),
					},
					UnitAmount: stripe.Int64(req.UnitAmount),
				},
				Quantity: stripe.Int64(req.Quantity),
			},
		},
		SuccessURL: stripe.String(p.cfg.SuccessURL),
		CancelURL:  stripe.String(p.cfg.CancelURL),
	}

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, p.classifyError(err)
	}

	return &usecase.CheckoutSessionRes{
		SessionID: session.ID,
		URL:       session.URL,
		Status:    string(session.Status),
	}, nil
}

// classifyError переводит ошибку Stripe в таксономию приложения:
// invalid_request_error — проблема запроса, остальное — сбой платёжного шлюза.
func (p *PaymentInfra) classifyError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Type == stripe.ErrorTypeInvalidRequest {
			return e.Wrap(stripeErr.Msg, e.ErrUpstreamClient)
		}

		p.logger.Errorf(err, "stripe request failed")
		return e.Wrap(stripeErr.Msg, e.ErrUpstreamServer)
	}

	p.logger.Errorf(err, "stripe request failed: %v", e.Wrap(whereami.WhereAmI(), err))
	return e.Wrap(err.Error(), e.ErrUpstreamServer)
}
