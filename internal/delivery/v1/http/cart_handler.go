package http

import (
	"net/http"

	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type ReplaceCartRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

type CartResponse struct {
	ID       int64             `json:"id"`
	Customer CustomerResponse  `json:"customer"`
	Products []ProductResponse `json:"products"`
}

type CartContentsResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customer_id"`
	ProductIDs []int64 `json:"product_ids"`
}

// getCart
//
//	@Summary		Корзина покупателя
//	@Description	Возвращает корзину с полным профилем покупателя и карточками товаров
//	@Tags			cart
//	@Produce		json
//	@Param			user_id	path		int	true	"ID покупателя"
//	@Success		200		{object}	CartResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/product/cart/{user_id}/ [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseIDParam(r, "user_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := c.cartUsecase.GetCart(r.Context(), customerID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CartResponse{
		ID:       cart.ID,
		Customer: *toCustomerResponse(&cart.Customer),
		Products: toProductResponses(cart.Products),
	})
}

// replaceCart
//
//	@Summary		Замена содержимого корзины
//	@Description	Содержимое корзины заменяется переданным списком товаров целиком
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		int					true	"ID покупателя"
//	@Param			cart	body		ReplaceCartRequest	true	"Новый состав корзины"
//	@Success		200		{object}	CartContentsResponse
//	@Failure		400		{object}	ValidationResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/product/cart/{user_id}/add/ [put]
func (c *CartHandler) replaceCart(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseIDParam(r, "user_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req ReplaceCartRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	contents, err := c.cartUsecase.ReplaceCart(r.Context(), customerID, req.ProductIDs)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CartContentsResponse{
		ID:         contents.ID,
		CustomerID: contents.CustomerID,
		ProductIDs: contents.ProductIDs,
	})
}
