package usecase

import (
	"context"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- Logger ---

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// --- Transaction ---

// fakeTx подменяет pgx.Tx в тестах: фиксирует Commit/Rollback, остальные
// методы унаследованного интерфейса не вызываются.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return f.tx, nil
}

func (f *fakeDB) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return f.tx, nil
}

// --- Repositories ---

type mockProductRepo struct {
	products map[int64]*domain.Product
	infos    map[int64]ProductInfo
	byVendor map[int64][]ProductInfo
	stats    *ProductStatistics

	created *domain.Product
	updated *domain.Product
	deleted []int64
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products: map[int64]*domain.Product{},
		infos:    map[int64]ProductInfo{},
		byVendor: map[int64][]ProductInfo{},
	}
}

func (m *mockProductRepo) add(info ProductInfo) {
	m.products[info.ID] = &domain.Product{
		ID:          info.ID,
		VendorID:    info.VendorID,
		CategoryID:  info.CategoryID,
		Name:        info.Name,
		Description: info.Description,
		Price:       info.Price,
	}
	m.infos[info.ID] = info
	m.byVendor[info.VendorID] = append(m.byVendor[info.VendorID], info)
}

func (m *mockProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	created := *product
	created.ID = int64(len(m.products) + 1)
	m.created = &created
	m.add(ProductInfo{
		ID:          created.ID,
		VendorID:    created.VendorID,
		CategoryID:  created.CategoryID,
		Name:        created.Name,
		Description: created.Description,
		Price:       created.Price,
	})
	return &created, nil
}

func (m *mockProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := m.products[product.ID]; !ok {
		return nil, e.ErrNotFound
	}
	m.updated = product
	m.products[product.ID] = product
	info := m.infos[product.ID]
	info.Name, info.Price = product.Name, product.Price
	m.infos[product.ID] = info
	return product, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return e.ErrNotFound
	}
	m.deleted = append(m.deleted, id)
	delete(m.products, id)
	delete(m.infos, id)
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return product, nil
}

func (m *mockProductRepo) List(context.Context, *ProductFilter) ([]ProductInfo, error) {
	result := make([]ProductInfo, 0, len(m.infos))
	for _, info := range m.infos {
		result = append(result, info)
	}
	return result, nil
}

func (m *mockProductRepo) SearchByName(context.Context, string) ([]ProductInfo, error) {
	return m.List(context.Background(), nil)
}

func (m *mockProductRepo) ListByVendor(_ context.Context, vendorID int64) ([]ProductInfo, error) {
	infos := m.byVendor[vendorID]
	if infos == nil {
		infos = []ProductInfo{}
	}
	return infos, nil
}

func (m *mockProductRepo) GetProductsInfo(_ context.Context, ids []int64) ([]ProductInfo, error) {
	result := make([]ProductInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := m.infos[id]; ok {
			result = append(result, info)
		}
	}
	return result, nil
}

func (m *mockProductRepo) Statistics(context.Context) (*ProductStatistics, error) {
	if m.stats == nil {
		return &ProductStatistics{}, nil
	}
	return m.stats, nil
}

type mockCategoryRepo struct {
	existing map[int64]bool
	created  []*domain.Category
}

func (m *mockCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	category.ID = int64(len(m.created) + 100)
	m.created = append(m.created, category)
	m.existing[category.ID] = true
	return category, nil
}

func (m *mockCategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	return m.existing[id], nil
}

type mockVendorRepo struct {
	byID    map[int64]*domain.Vendor
	byEmail map[string]*domain.Vendor

	created     *domain.Vendor
	updated     *domain.Vendor
	deleted     []int64
	createErr   error
	updateErr   error
	emailsTaken map[string]bool
}

func newMockVendorRepo() *mockVendorRepo {
	return &mockVendorRepo{
		byID:        map[int64]*domain.Vendor{},
		byEmail:     map[string]*domain.Vendor{},
		emailsTaken: map[string]bool{},
	}
}

func (m *mockVendorRepo) add(vendor *domain.Vendor) {
	m.byID[vendor.ID] = vendor
	m.byEmail[vendor.Email] = vendor
}

func (m *mockVendorRepo) Create(_ context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.emailsTaken[vendor.Email] {
		return nil, e.ErrEmailTaken
	}
	created := *vendor
	created.ID = int64(len(m.byID) + 1)
	m.created = &created
	m.add(&created)
	return &created, nil
}

func (m *mockVendorRepo) Update(_ context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updated = vendor
	m.add(vendor)
	return vendor, nil
}

func (m *mockVendorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return e.ErrNotFound
	}
	m.deleted = append(m.deleted, id)
	delete(m.byID, id)
	return nil
}

func (m *mockVendorRepo) GetByID(_ context.Context, id int64) (*domain.Vendor, error) {
	vendor, ok := m.byID[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return vendor, nil
}

func (m *mockVendorRepo) GetByEmail(_ context.Context, email string) (*domain.Vendor, error) {
	vendor, ok := m.byEmail[email]
	if !ok {
		return nil, e.ErrNotFound
	}
	return vendor, nil
}

func (m *mockVendorRepo) List(context.Context) ([]domain.Vendor, error) {
	result := make([]domain.Vendor, 0, len(m.byID))
	for _, vendor := range m.byID {
		result = append(result, *vendor)
	}
	return result, nil
}

func (m *mockVendorRepo) Count(context.Context) (int64, error) {
	return int64(len(m.byID)), nil
}

type mockCustomerRepo struct {
	byID    map[int64]*domain.Customer
	byEmail map[string]*domain.Customer

	created     *domain.Customer
	createErr   error
	emailsTaken map[string]bool
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{
		byID:        map[int64]*domain.Customer{},
		byEmail:     map[string]*domain.Customer{},
		emailsTaken: map[string]bool{},
	}
}

func (m *mockCustomerRepo) add(customer *domain.Customer) {
	m.byID[customer.ID] = customer
	m.byEmail[customer.Email] = customer
}

func (m *mockCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.emailsTaken[customer.Email] {
		return nil, e.ErrEmailTaken
	}
	created := *customer
	created.ID = int64(len(m.byID) + 1)
	m.created = &created
	m.add(&created)
	return &created, nil
}

func (m *mockCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	customer, ok := m.byID[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return customer, nil
}

func (m *mockCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	customer, ok := m.byEmail[email]
	if !ok {
		return nil, e.ErrNotFound
	}
	return customer, nil
}

func (m *mockCustomerRepo) List(context.Context) ([]domain.Customer, error) {
	result := make([]domain.Customer, 0, len(m.byID))
	for _, customer := range m.byID {
		result = append(result, *customer)
	}
	return result, nil
}

func (m *mockCustomerRepo) Count(context.Context) (int64, error) {
	return int64(len(m.byID)), nil
}

type mockCartRepo struct {
	byCustomer map[int64]*domain.Cart

	created   []int64
	createErr error
	replaced  map[int64][]int64
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{
		byCustomer: map[int64]*domain.Cart{},
		replaced:   map[int64][]int64{},
	}
}

func (m *mockCartRepo) Create(_ context.Context, customerID int64) (*domain.Cart, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	cart := &domain.Cart{ID: int64(len(m.byCustomer) + 1), CustomerID: customerID, ProductIDs: []int64{}}
	m.created = append(m.created, customerID)
	m.byCustomer[customerID] = cart
	return cart, nil
}

func (m *mockCartRepo) GetByCustomerID(_ context.Context, customerID int64) (*domain.Cart, error) {
	cart, ok := m.byCustomer[customerID]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cart, nil
}

func (m *mockCartRepo) ReplaceProducts(_ context.Context, cartID int64, productIDs []int64) error {
	m.replaced[cartID] = productIDs
	return nil
}

type mockAccountingRepo struct {
	entries   []*domain.AccountingEntry
	income    decimal.Decimal
	expenses  decimal.Decimal
	createErr error
}

func (m *mockAccountingRepo) Create(_ context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *entry
	created.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, &created)
	return &created, nil
}

func (m *mockAccountingRepo) List(context.Context) ([]domain.AccountingEntry, error) {
	result := make([]domain.AccountingEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		result = append(result, *entry)
	}
	return result, nil
}

func (m *mockAccountingRepo) Sums(context.Context) (decimal.Decimal, decimal.Decimal, error) {
	return m.income, m.expenses, nil
}

type mockOutboxRepo struct {
	created   []*OutboxEvent
	processed []int64
	pending   []*OutboxEvent
}

func (m *mockOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.created = append(m.created, event)
	return event, nil
}

func (m *mockOutboxRepo) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*OutboxEvent, error) {
	if len(m.pending) > limit {
		return m.pending[:limit], nil
	}
	return m.pending, nil
}

func (m *mockOutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	m.processed = append(m.processed, id)
	return nil
}

type mockCacheRepo struct {
	cached  map[int64]ProductInfo
	set     [][]ProductInfo
	deleted [][]int64
	getErr  error
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{cached: map[int64]ProductInfo{}}
}

func (m *mockCacheRepo) GetProducts(_ context.Context, ids []int64) (map[int64]ProductInfo, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make(map[int64]ProductInfo)
	for _, id := range ids {
		if info, ok := m.cached[id]; ok {
			result[id] = info
		}
	}
	return result, nil
}

func (m *mockCacheRepo) SetProducts(_ context.Context, products []ProductInfo) error {
	m.set = append(m.set, products)
	return nil
}

func (m *mockCacheRepo) DeleteProducts(_ context.Context, ids []int64) error {
	m.deleted = append(m.deleted, ids)
	return nil
}

// --- Infrastructure ---

type mockPayment struct {
	lastReq *CheckoutSessionReq
	res     *CheckoutSessionRes
	err     error
}

func (m *mockPayment) CreateCheckoutSession(_ context.Context, req *CheckoutSessionReq) (*CheckoutSessionRes, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.res, nil
}
