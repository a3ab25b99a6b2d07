package domain

// Cart описывает корзину покупателя. У каждого покупателя ровно одна корзина,
// она создаётся в той же транзакции, что и сам покупатель.
type Cart struct {
	ID         int64
	CustomerID int64
	ProductIDs []int64
}

func NewCart(customerID int64) *Cart {
	return &Cart{
		CustomerID: customerID,
	}
}
