package domain

import "time"

// Category описывает категорию товара. Архивная категория остаётся
// в базе ради существующих товаров, но новые в неё не добавляются.
type Category struct {
	ID         int64
	Name       string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewCategory(name string) *Category {
	return &Category{
		Name: name,
	}
}
