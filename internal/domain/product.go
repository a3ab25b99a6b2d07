package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	VendorID    int64
	CategoryID  int64
	Name        string
	Description string
	Price       int64 // Цена хранится в центах
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(vendorID, categoryID int64, name, description string, price int64) *Product {
	return &Product{
		VendorID:    vendorID,
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
	}
}
