package http

import (
	"net/http"
	"strconv"

	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type ProductRequest struct {
	VendorID    int64  `json:"vendor_id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

type ProductResponse struct {
	ID           int64  `json:"id"`
	VendorID     int64  `json:"vendor_id"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StatisticsResponse struct {
	MaxPrice *int64   `json:"max_price"`
	MinPrice *int64   `json:"min_price"`
	AvgPrice *float64 `json:"avg_price"`
}

func toProductResponse(info *usecase.ProductInfo) *ProductResponse {
	return &ProductResponse{
		ID:           info.ID,
		VendorID:     info.VendorID,
		CategoryID:   info.CategoryID,
		CategoryName: info.CategoryName,
		Name:         info.Name,
		Description:  info.Description,
		Price:        info.Price,
	}
}

func toProductResponses(infos []usecase.ProductInfo) []ProductResponse {
	result := make([]ProductResponse, 0, len(infos))
	for i := range infos {
		result = append(result, *toProductResponse(&infos[i]))
	}
	return result
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает каталог с необязательными фильтрами по категории и цене
//	@Tags			products
//	@Produce		json
//	@Param			category	query		int	false	"ID категории"
//	@Param			price		query		int	false	"Точная цена в центах"
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/product/list/ [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req := &usecase.ListProductsReq{}

	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, e.Wrap("category", e.ErrStatusBadRequest))
			return
		}
		req.Filter.CategoryID = &id
	}

	if raw := r.URL.Query().Get("price"); raw != "" {
		price, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, e.Wrap("price", e.ErrStatusBadRequest))
			return
		}
		req.Filter.Price = &price
	}

	products, err := p.catalogUsecase.ListProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// searchProducts
//
//	@Summary	Поиск товаров по подстроке имени
//	@Tags		products
//	@Produce	json
//	@Param		q	query		string	false	"Поисковая строка"
//	@Success	200	{array}		ProductResponse
//	@Router		/product/search/ [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUsecase.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/product/{id}/ [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создаёт товар с привязкой к продавцу и категории
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ValidationResponse
//	@Router			/product/create/ [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.CreateProduct(r.Context(),
		usecase.NewProductReq(req.VendorID, req.CategoryID, req.Name, req.Description, req.Price))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// createCategory
//
//	@Summary		Создание категории
//	@Description	Повторное создание категории с тем же именем возвращает существующую
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			category	body		CategoryRequest	true	"Категория"
//	@Success		201			{object}	CategoryResponse
//	@Failure		400			{object}	ValidationResponse
//	@Router			/product/create/category/ [post]
func (p *ProductHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := p.catalogUsecase.CreateCategory(r.Context(), req.Name)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &CategoryResponse{ID: category.ID, Name: category.Name})
}

// updateProduct
//
//	@Summary		Полная замена товара
//	@Description	Доступно только продавцу-владельцу
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID товара"
//	@Param			product	body		ProductRequest	true	"Товар"
//	@Success		200		{object}	ProductResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/product/{id}/update/ [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.UpdateProduct(r.Context(), IdentityFromCtx(r.Context()), id,
		usecase.NewProductReq(req.VendorID, req.CategoryID, req.Name, req.Description, req.Price))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Param		id	path	int	true	"ID товара"
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/product/{id}/delete/ [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.catalogUsecase.DeleteProduct(r.Context(), IdentityFromCtx(r.Context()), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// statistics
//
//	@Summary	Агрегаты по ценам каталога
//	@Tags		products
//	@Produce	json
//	@Success	200	{object}	StatisticsResponse
//	@Router		/product/statistics/ [get]
func (p *ProductHandler) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := p.catalogUsecase.Statistics(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &StatisticsResponse{
		MaxPrice: stats.MaxPrice,
		MinPrice: stats.MinPrice,
		AvgPrice: stats.AvgPrice,
	})
}
