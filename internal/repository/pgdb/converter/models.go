package converter

import (
	"time"

	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	VendorID    int64      `db:"vendor_id"`
	CategoryID  int64      `db:"category_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	IsArchived bool       `db:"is_archived"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// VendorModel представляет запись таблицы vendors в PostgreSQL.
type VendorModel struct {
	ID           int64      `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	SecondName   string     `db:"second_name"`
	PhoneNumber  string     `db:"phone_number"`
	Description  string     `db:"description"`
	PasswordHash string     `db:"password_hash"`
	IsVendor     bool       `db:"is_vendor"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID           int64      `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	SecondName   string     `db:"second_name"`
	PhoneNumber  string     `db:"phone_number"`
	CardNumber   string     `db:"card_number"`
	Address      string     `db:"address"`
	PostCode     string     `db:"post_code"`
	PasswordHash string     `db:"password_hash"`
	IsVendor     bool       `db:"is_vendor"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// AccountingEntryModel представляет запись таблицы accounting_entries в PostgreSQL.
type AccountingEntryModel struct {
	ID          int64           `db:"id"`
	EntryDate   time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	IsExpense   bool            `db:"is_expense"`
	CreatedAt   time.Time       `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	ProductID   int64                   `db:"product_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
