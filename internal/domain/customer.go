package domain

import "time"

// Customer описывает покупателя
type Customer struct {
	ID           int64
	Email        string
	Name         string
	SecondName   string
	PhoneNumber  string
	CardNumber   string
	Address      string
	PostCode     string
	PasswordHash string
	IsVendor     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewCustomer(email, name, secondName, phoneNumber, cardNumber, address, postCode, passwordHash string) *Customer {
	return &Customer{
		Email:        email,
		Name:         name,
		SecondName:   secondName,
		PhoneNumber:  phoneNumber,
		CardNumber:   cardNumber,
		Address:      address,
		PostCode:     postCode,
		PasswordHash: passwordHash,
		IsVendor:     false,
	}
}
