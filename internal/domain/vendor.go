package domain

import "time"

// Vendor описывает продавца. Продавец владеет товарами и может изменять
// только свои.
type Vendor struct {
	ID           int64
	Email        string
	Name         string
	SecondName   string
	PhoneNumber  string
	Description  string
	PasswordHash string
	IsVendor     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewVendor(email, name, secondName, phoneNumber, description, passwordHash string) *Vendor {
	return &Vendor{
		Email:        email,
		Name:         name,
		SecondName:   secondName,
		PhoneNumber:  phoneNumber,
		Description:  description,
		PasswordHash: passwordHash,
		IsVendor:     true,
	}
}
