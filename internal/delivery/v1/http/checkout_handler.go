package http

import (
	"net/http"

	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

type CheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	Status    string `json:"status"`
}

// createCheckoutSession
//
//	@Summary		Создание hosted-checkout сессии
//	@Description	Создаёт платёжную сессию на один товар и отвечает редиректом на её URL
//	@Tags			checkout
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		303	{object}	CheckoutSessionResponse
//	@Failure		400	{object}	ErrorResponse	"Платёжный шлюз отклонил запрос"
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse	"Сбой платёжного шлюза"
//	@Router			/product/create-checkout-session/{id}/ [post]
func (c *CheckoutHandler) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := c.checkoutUsecase.CreateCheckoutSession(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Location", session.URL)
	WriteSuccess(w, http.StatusSeeOther, &CheckoutSessionResponse{
		SessionID: session.SessionID,
		URL:       session.URL,
		Status:    session.Status,
	})
}
