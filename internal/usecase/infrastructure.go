package usecase

import "context"

type PaymentInfra interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionReq) (*CheckoutSessionRes, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
