package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/ananas-shop/commerce-backend/internal/auth"
	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/ananas-shop/commerce-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// IdentityUseCase реализует регистрацию, логин и работу с профилями.
// Регистрация покупателя и создание его корзины атомарны: покупатель без
// корзины — недопустимое состояние.
type IdentityUseCase struct {
	vendorRepo   VendorRepository
	customerRepo CustomerRepository
	cartRepo     CartRepository
	productRepo  ProductRepository
	tokens       *auth.TokenService
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewIdentityUC(
	vendorRepo VendorRepository,
	customerRepo CustomerRepository,
	cartRepo CartRepository,
	productRepo ProductRepository,
	tokens *auth.TokenService,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *IdentityUseCase {
	return &IdentityUseCase{
		vendorRepo:   vendorRepo,
		customerRepo: customerRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		tokens:       tokens,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// Login сверяет email и пароль с хранимым хэшем и выдаёт пару токенов.
// Email ищется сначала среди продавцов, затем среди покупателей.
func (i *IdentityUseCase) Login(ctx context.Context, req *LoginReq) (*auth.TokenPair, error) {
	const op = "IdentityUseCase.Login"

	vendor, err := i.vendorRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		if err := auth.CheckPassword(vendor.PasswordHash, req.Password); err != nil {
			return nil, e.Wrap(op, err)
		}
		return i.tokens.IssuePair(vendor.ID, true)
	}
	if !errors.Is(err, e.ErrNotFound) {
		return nil, e.Wrap(op, err)
	}

	customer, err := i.customerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Wrap(op, e.ErrAuthenticationFailed)
		}
		return nil, e.Wrap(op, err)
	}

	if err := auth.CheckPassword(customer.PasswordHash, req.Password); err != nil {
		return nil, e.Wrap(op, err)
	}

	return i.tokens.IssuePair(customer.ID, false)
}

// RegisterVendor создаёт продавца, хэшируя пароль перед сохранением.
func (i *IdentityUseCase) RegisterVendor(ctx context.Context, req *RegisterVendorReq) (*VendorInfo, error) {
	const op = "IdentityUseCase.RegisterVendor"

	if err := validateRegistration(req.Email, req.Name, req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	vendor, err := i.vendorRepo.Create(ctx, domain.NewVendor(
		req.Email, req.Name, req.SecondName, req.PhoneNumber, req.Description, hash,
	))
	if err != nil {
		return nil, emailTakenToValidation(op, err)
	}

	info := vendorInfo(vendor)
	return &info, nil
}

// RegisterCustomer создаёт покупателя и его пустую корзину в одной транзакции.
func (i *IdentityUseCase) RegisterCustomer(ctx context.Context, req *RegisterCustomerReq) (*CustomerInfo, error) {
	const op = "IdentityUseCase.RegisterCustomer"

	if err := validateRegistration(req.Email, req.Name, req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	var customer *domain.Customer
	customer, err = i.customerRepo.Create(ctx, domain.NewCustomer(
		req.Email, req.Name, req.SecondName, req.PhoneNumber,
		req.CardNumber, req.Address, req.PostCode, hash,
	))
	if err != nil {
		return nil, emailTakenToValidation(op, err)
	}

	if _, err = i.cartRepo.Create(ctx, customer.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	info := customerInfo(customer)
	return &info, nil
}

func (i *IdentityUseCase) ListVendors(ctx context.Context) ([]VendorInfo, error) {
	const op = "IdentityUseCase.ListVendors"

	vendors, err := i.vendorRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infos := make([]VendorInfo, 0, len(vendors))
	for idx := range vendors {
		infos = append(infos, vendorInfo(&vendors[idx]))
	}

	return infos, nil
}

func (i *IdentityUseCase) ListCustomers(ctx context.Context) ([]CustomerInfo, error) {
	const op = "IdentityUseCase.ListCustomers"

	customers, err := i.customerRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infos := make([]CustomerInfo, 0, len(customers))
	for idx := range customers {
		infos = append(infos, customerInfo(&customers[idx]))
	}

	return infos, nil
}

func (i *IdentityUseCase) CountVendors(ctx context.Context) (int64, error) {
	return i.vendorRepo.Count(ctx)
}

func (i *IdentityUseCase) CountCustomers(ctx context.Context) (int64, error) {
	return i.customerRepo.Count(ctx)
}

// VendorProfile декодирует токен, загружает продавца по claim'у субъекта и
// вкладывает список его товаров.
func (i *IdentityUseCase) VendorProfile(ctx context.Context, token string) (*VendorProfileRes, error) {
	const op = "IdentityUseCase.VendorProfile"

	vendor, err := i.vendorFromToken(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return i.profileWithProducts(ctx, vendor)
}

// UpdateVendorProfile полностью заменяет профиль продавца, найденного по токену.
func (i *IdentityUseCase) UpdateVendorProfile(ctx context.Context, token string, req *VendorProfileReq) (*VendorInfo, error) {
	const op = "IdentityUseCase.UpdateVendorProfile"

	vendor, err := i.vendorFromToken(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := validateProfile(req); err != nil {
		return nil, err
	}

	vendor.Email = req.Email
	vendor.Name = req.Name
	vendor.SecondName = req.SecondName
	vendor.PhoneNumber = req.PhoneNumber
	vendor.Description = req.Description

	updated, err := i.vendorRepo.Update(ctx, vendor)
	if err != nil {
		return nil, emailTakenToValidation(op, err)
	}

	info := vendorInfo(updated)
	return &info, nil
}

// DeleteVendorProfile удаляет продавца, найденного по токену.
func (i *IdentityUseCase) DeleteVendorProfile(ctx context.Context, token string) error {
	const op = "IdentityUseCase.DeleteVendorProfile"

	vendor, err := i.vendorFromToken(ctx, token)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := i.vendorRepo.Delete(ctx, vendor.ID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// VendorDetail возвращает публичный профиль продавца с вложенными товарами.
func (i *IdentityUseCase) VendorDetail(ctx context.Context, id int64) (*VendorProfileRes, error) {
	const op = "IdentityUseCase.VendorDetail"

	vendor, err := i.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return i.profileWithProducts(ctx, vendor)
}

func (i *IdentityUseCase) vendorFromToken(ctx context.Context, token string) (*domain.Vendor, error) {
	claims, err := i.tokens.Decode(token)
	if err != nil {
		return nil, err
	}

	return i.vendorRepo.GetByID(ctx, claims.UserID)
}

func (i *IdentityUseCase) profileWithProducts(ctx context.Context, vendor *domain.Vendor) (*VendorProfileRes, error) {
	products, err := i.productRepo.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, err
	}

	return &VendorProfileRes{
		Vendor:   vendorInfo(vendor),
		Products: products,
	}, nil
}

// validateRegistration проверяет обязательные поля регистрации.
func validateRegistration(email, name, password string) error {
	v := e.NewValidationError()

	if strings.TrimSpace(email) == "" {
		v.Addf("email", "email is required")
	} else if !strings.Contains(email, "@") {
		v.Addf("email", "email is malformed")
	}
	if strings.TrimSpace(name) == "" {
		v.Addf("name", "name is required")
	}
	if password == "" {
		v.Addf("password", "password is required")
	}

	return v.OrNil()
}

func validateProfile(req *VendorProfileReq) error {
	v := e.NewValidationError()

	if strings.TrimSpace(req.Email) == "" {
		v.Addf("email", "email is required")
	} else if !strings.Contains(req.Email, "@") {
		v.Addf("email", "email is malformed")
	}
	if strings.TrimSpace(req.Name) == "" {
		v.Addf("name", "name is required")
	}

	return v.OrNil()
}

// emailTakenToValidation переводит нарушение уникальности email в ошибку
// валидации по полю.
func emailTakenToValidation(op string, err error) error {
	if errors.Is(err, e.ErrEmailTaken) {
		v := e.NewValidationError()
		v.Addf("email", "email is already registered")
		return v
	}
	return e.Wrap(op, err)
}

func vendorInfo(v *domain.Vendor) VendorInfo {
	return VendorInfo{
		ID:          v.ID,
		Email:       v.Email,
		Name:        v.Name,
		SecondName:  v.SecondName,
		PhoneNumber: v.PhoneNumber,
		Description: v.Description,
		IsVendor:    v.IsVendor,
	}
}

func customerInfo(c *domain.Customer) CustomerInfo {
	return CustomerInfo{
		ID:          c.ID,
		Email:       c.Email,
		Name:        c.Name,
		SecondName:  c.SecondName,
		PhoneNumber: c.PhoneNumber,
		CardNumber:  c.CardNumber,
		Address:     c.Address,
		PostCode:    c.PostCode,
		IsVendor:    c.IsVendor,
	}
}
