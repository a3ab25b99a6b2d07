package http

import (
	"net/http"

	"github.com/ananas-shop/commerce-backend/internal/auth"
	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	identityUsecase usecase.IdentityUC
	logger          logger.Logger
}

func NewUserHandler(identityUsecase usecase.IdentityUC, logger logger.Logger) *UserHandler {
	return &UserHandler{identityUsecase: identityUsecase, logger: logger}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RegisterVendorRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	SecondName  string `json:"second_name"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
	Password    string `json:"password"`
}

type RegisterCustomerRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	SecondName  string `json:"second_name"`
	PhoneNumber string `json:"phone_number"`
	CardNumber  string `json:"card_number"`
	Address     string `json:"address"`
	PostCode    string `json:"post_code"`
	Password    string `json:"password"`
}

type VendorProfileRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	SecondName  string `json:"second_name"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
}

type VendorResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	SecondName  string `json:"second_name"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
	IsVendor    bool   `json:"is_vendor"`
}

type CustomerResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	SecondName  string `json:"second_name"`
	PhoneNumber string `json:"phone_number"`
	CardNumber  string `json:"card_number"`
	Address     string `json:"address"`
	PostCode    string `json:"post_code"`
	IsVendor    bool   `json:"is_vendor"`
}

type VendorProfileResponse struct {
	Vendor   VendorResponse    `json:"vendor"`
	Products []ProductResponse `json:"products"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func toVendorResponse(info *usecase.VendorInfo) *VendorResponse {
	return &VendorResponse{
		ID:          info.ID,
		Email:       info.Email,
		Name:        info.Name,
		SecondName:  info.SecondName,
		PhoneNumber: info.PhoneNumber,
		Description: info.Description,
		IsVendor:    info.IsVendor,
	}
}

func toCustomerResponse(info *usecase.CustomerInfo) *CustomerResponse {
	return &CustomerResponse{
		ID:          info.ID,
		Email:       info.Email,
		Name:        info.Name,
		SecondName:  info.SecondName,
		PhoneNumber: info.PhoneNumber,
		CardNumber:  info.CardNumber,
		Address:     info.Address,
		PostCode:    info.PostCode,
		IsVendor:    info.IsVendor,
	}
}

func toVendorProfileResponse(res *usecase.VendorProfileRes) *VendorProfileResponse {
	return &VendorProfileResponse{
		Vendor:   *toVendorResponse(&res.Vendor),
		Products: toProductResponses(res.Products),
	}
}

// login
//
//	@Summary		Логин
//	@Description	Выдаёт пару access/refresh токенов. Доступно только анонимно.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"Учётные данные"
//	@Success		200			{object}	TokenPairResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Router			/user/login/ [post]
func (u *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := auth.AnonymousOnly(IdentityFromCtx(r.Context())); err != nil {
		WriteError(w, err)
		return
	}

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	pair, err := u.identityUsecase.Login(r.Context(), &usecase.LoginReq{Email: req.Email, Password: req.Password})
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// registerVendor
//
//	@Summary	Регистрация продавца
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		vendor	body		RegisterVendorRequest	true	"Продавец"
//	@Success	201		{object}	VendorResponse
//	@Failure	400		{object}	ValidationResponse
//	@Router		/user/vendor/register/ [post]
func (u *UserHandler) registerVendor(w http.ResponseWriter, r *http.Request) {
	var req RegisterVendorRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	vendor, err := u.identityUsecase.RegisterVendor(r.Context(), &usecase.RegisterVendorReq{
		Email:       req.Email,
		Name:        req.Name,
		SecondName:  req.SecondName,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
		Password:    req.Password,
	})
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toVendorResponse(vendor))
}

// registerCustomer
//
//	@Summary		Регистрация покупателя
//	@Description	Вместе с покупателем атомарно создаётся его корзина
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			customer	body		RegisterCustomerRequest	true	"Покупатель"
//	@Success		201			{object}	CustomerResponse
//	@Failure		400			{object}	ValidationResponse
//	@Router			/user/customer/register/ [post]
func (u *UserHandler) registerCustomer(w http.ResponseWriter, r *http.Request) {
	var req RegisterCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	customer, err := u.identityUsecase.RegisterCustomer(r.Context(), &usecase.RegisterCustomerReq{
		Email:       req.Email,
		Name:        req.Name,
		SecondName:  req.SecondName,
		PhoneNumber: req.PhoneNumber,
		CardNumber:  req.CardNumber,
		Address:     req.Address,
		PostCode:    req.PostCode,
		Password:    req.Password,
	})
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCustomerResponse(customer))
}

// listVendors
//
//	@Summary	Список продавцов
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	VendorResponse
//	@Router		/user/vendor/list/ [get]
func (u *UserHandler) listVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := u.identityUsecase.ListVendors(r.Context())
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		result = append(result, *toVendorResponse(&vendors[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// listCustomers
//
//	@Summary	Список покупателей
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	CustomerResponse
//	@Router		/user/customer/list/ [get]
func (u *UserHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := u.identityUsecase.ListCustomers(r.Context())
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		result = append(result, *toCustomerResponse(&customers[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// countVendors
//
//	@Summary	Количество продавцов
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	CountResponse
//	@Router		/user/vendor/count/ [get]
func (u *UserHandler) countVendors(w http.ResponseWriter, r *http.Request) {
	count, err := u.identityUsecase.CountVendors(r.Context())
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CountResponse{Count: count})
}

// countCustomers
//
//	@Summary	Количество покупателей
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	CountResponse
//	@Router		/user/customer/count/ [get]
func (u *UserHandler) countCustomers(w http.ResponseWriter, r *http.Request) {
	count, err := u.identityUsecase.CountCustomers(r.Context())
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CountResponse{Count: count})
}

// vendorProfile
//
//	@Summary		Профиль продавца по токену
//	@Description	Токен передаётся path-параметром, профиль включает товары продавца
//	@Tags			users
//	@Produce		json
//	@Param			token	path		string	true	"Access-токен"
//	@Success		200		{object}	VendorProfileResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/user/vendor/profile/{token}/ [get]
func (u *UserHandler) vendorProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := u.identityUsecase.VendorProfile(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toVendorProfileResponse(profile))
}

// updateVendorProfile
//
//	@Summary	Полная замена профиля продавца
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		token	path		string					true	"Access-токен"
//	@Param		profile	body		VendorProfileRequest	true	"Профиль"
//	@Success	200		{object}	VendorResponse
//	@Failure	400		{object}	ValidationResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/user/vendor/profile/{token}/ [put]
func (u *UserHandler) updateVendorProfile(w http.ResponseWriter, r *http.Request) {
	var req VendorProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	vendor, err := u.identityUsecase.UpdateVendorProfile(r.Context(), chi.URLParam(r, "token"), &usecase.VendorProfileReq{
		Email:       req.Email,
		Name:        req.Name,
		SecondName:  req.SecondName,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
	})
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toVendorResponse(vendor))
}

// deleteVendorProfile
//
//	@Summary	Удаление профиля продавца
//	@Tags		users
//	@Param		token	path	string	true	"Access-токен"
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Router		/user/vendor/profile/{token}/ [delete]
func (u *UserHandler) deleteVendorProfile(w http.ResponseWriter, r *http.Request) {
	if err := u.identityUsecase.DeleteVendorProfile(r.Context(), chi.URLParam(r, "token")); err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// vendorDetail
//
//	@Summary	Публичная карточка продавца с его товарами
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"ID продавца"
//	@Success	200	{object}	VendorProfileResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/user/vendor/detail/{id}/ [get]
func (u *UserHandler) vendorDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	profile, err := u.identityUsecase.VendorDetail(r.Context(), id)
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toVendorProfileResponse(profile))
}
