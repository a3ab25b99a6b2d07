package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// CATALOG

// ProductReq — запрос на создание или полную замену товара.
type ProductReq struct {
	VendorID    int64
	CategoryID  int64
	Name        string
	Description string
	Price       int64 // в центах
}

// ProductFilter — необязательные фильтры списка товаров.
type ProductFilter struct {
	CategoryID *int64
	Price      *int64
}

// ListProductsReq — запрос списка товаров.
type ListProductsReq struct {
	Filter ProductFilter
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID           int64
	VendorID     int64
	CategoryID   int64
	CategoryName string
	Name         string
	Description  string
	Price        int64
}

// ProductStatistics — агрегаты по ценам всего каталога.
// Указатели: при пустом каталоге агрегаты отсутствуют.
type ProductStatistics struct {
	MaxPrice *int64
	MinPrice *int64
	AvgPrice *float64
}

// CategoryInfo — DTO категории для внешнего использования.
type CategoryInfo struct {
	ID   int64
	Name string
}

// CART

// CartRes — корзина, развёрнутая до полного профиля покупателя и полного
// списка товаров.
type CartRes struct {
	ID       int64
	Customer CustomerInfo
	Products []ProductInfo
}

// CartContentsRes — корзина после замены содержимого.
type CartContentsRes struct {
	ID         int64
	CustomerID int64
	ProductIDs []int64
}

// IDENTITY

type LoginReq struct {
	Email    string
	Password string
}

type RegisterVendorReq struct {
	Email       string
	Name        string
	SecondName  string
	PhoneNumber string
	Description string
	Password    string
}

type RegisterCustomerReq struct {
	Email       string
	Name        string
	SecondName  string
	PhoneNumber string
	CardNumber  string
	Address     string
	PostCode    string
	Password    string
}

// VendorProfileReq — полная замена профиля продавца.
type VendorProfileReq struct {
	Email       string
	Name        string
	SecondName  string
	PhoneNumber string
	Description string
}

type VendorInfo struct {
	ID          int64
	Email       string
	Name        string
	SecondName  string
	PhoneNumber string
	Description string
	IsVendor    bool
}

type CustomerInfo struct {
	ID          int64
	Email       string
	Name        string
	SecondName  string
	PhoneNumber string
	CardNumber  string
	Address     string
	PostCode    string
	IsVendor    bool
}

// VendorProfileRes — профиль продавца с вложенным списком его товаров.
type VendorProfileRes struct {
	Vendor   VendorInfo
	Products []ProductInfo
}

// CHECKOUT

// CheckoutSessionReq — запрос на создание hosted-checkout сессии.
// Количество фиксировано и равно 1.
type CheckoutSessionReq struct {
	ProductID  int64
	Name       string
	UnitAmount int64
	Quantity   int64
}

// CheckoutSessionRes — ответ платёжного коллаборатора, возвращаемый клиенту
// без изменений.
type CheckoutSessionRes struct {
	SessionID string
	URL       string
	Status    string
}

// ACCOUNTING

type EntryReq struct {
	EntryDate   time.Time
	Description string
	Amount      decimal.Decimal
	IsExpense   bool
}

type EntryInfo struct {
	ID          int64
	EntryDate   time.Time
	Description string
	Amount      decimal.Decimal
	IsExpense   bool
}

type BalanceRes struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductCreated OutboxEventType = "product_created"
	ProductUpdated OutboxEventType = "product_updated"
	ProductDeleted OutboxEventType = "product_deleted"
)

// OutboxEvent — событие изменения каталога, записываемое в одной транзакции
// с изменением строки товара и публикуемое воркером в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// MAPPERS

func NewProductReq(vendorID, categoryID int64, name, description string, price int64) *ProductReq {
	return &ProductReq{
		VendorID:    vendorID,
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
	}
}

func NewProductInfo(id, vendorID, categoryID int64, categoryName, name, description string, price int64) ProductInfo {
	return ProductInfo{
		ID:           id,
		VendorID:     vendorID,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Name:         name,
		Description:  description,
		Price:        price,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewCheckoutSessionReq(productID int64, name string, unitAmount int64) *CheckoutSessionReq {
	return &CheckoutSessionReq{
		ProductID:  productID,
		Name:       name,
		UnitAmount: unitAmount,
		Quantity:   1,
	}
}

func NewBalanceRes(income, expenses decimal.Decimal) *BalanceRes {
	return &BalanceRes{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}
