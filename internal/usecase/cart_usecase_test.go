package usecase

import (
	"context"
	"testing"

	"github.com/ananas-shop/commerce-backend/internal/domain"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture() (*CartUseCase, *mockCartRepo, *mockCustomerRepo, *mockProductRepo, *mockCacheRepo, *fakeDB) {
	cartRepo := newMockCartRepo()
	customerRepo := newMockCustomerRepo()
	productRepo := newMockProductRepo()
	cacheRepo := newMockCacheRepo()
	db := newFakeDB()

	uc := NewCartUC(cartRepo, customerRepo, productRepo, cacheRepo, db, nopLogger{})
	return uc, cartRepo, customerRepo, productRepo, cacheRepo, db
}

func TestCartUseCase_GetCart(t *testing.T) {
	uc, cartRepo, customerRepo, productRepo, cacheRepo, _ := newCartFixture()

	customerRepo.add(&domain.Customer{ID: 7, Email: "buyer@example.com", Name: "Buyer"})
	cartRepo.byCustomer[7] = &domain.Cart{ID: 3, CustomerID: 7, ProductIDs: []int64{5, 6}}
	productRepo.add(NewProductInfo(6, 10, 1, "light", "torch", "", 500))
	cacheRepo.cached[5] = NewProductInfo(5, 10, 1, "light", "lamp", "", 1999)

	cart, err := uc.GetCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cart.ID)
	assert.Equal(t, "buyer@example.com", cart.Customer.Email)

	// порядок товаров соответствует порядку идентификаторов в корзине
	require.Len(t, cart.Products, 2)
	assert.Equal(t, "lamp", cart.Products[0].Name)
	assert.Equal(t, "torch", cart.Products[1].Name)
}

func TestCartUseCase_GetCartEmpty(t *testing.T) {
	uc, cartRepo, customerRepo, _, _, _ := newCartFixture()

	customerRepo.add(&domain.Customer{ID: 7, Email: "buyer@example.com"})
	cartRepo.byCustomer[7] = &domain.Cart{ID: 3, CustomerID: 7, ProductIDs: []int64{}}

	cart, err := uc.GetCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, cart.Products)
	assert.NotNil(t, cart.Products)
}

func TestCartUseCase_GetCartUnknownCustomer(t *testing.T) {
	uc, _, _, _, _, _ := newCartFixture()

	_, err := uc.GetCart(context.Background(), 404)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCartUseCase_ReplaceCart(t *testing.T) {
	uc, cartRepo, _, productRepo, _, db := newCartFixture()

	cartRepo.byCustomer[7] = &domain.Cart{ID: 3, CustomerID: 7, ProductIDs: []int64{}}
	productRepo.add(NewProductInfo(5, 10, 1, "light", "lamp", "", 1999))
	productRepo.add(NewProductInfo(6, 10, 1, "light", "torch", "", 500))

	contents, err := uc.ReplaceCart(context.Background(), 7, []int64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, int64(3), contents.ID)
	assert.Equal(t, int64(7), contents.CustomerID)
	assert.Equal(t, []int64{5, 6}, contents.ProductIDs)

	assert.Equal(t, []int64{5, 6}, cartRepo.replaced[3])
	assert.True(t, db.tx.committed)
}

func TestCartUseCase_ReplaceCartValidation(t *testing.T) {
	uc, cartRepo, _, productRepo, _, _ := newCartFixture()

	cartRepo.byCustomer[7] = &domain.Cart{ID: 3, CustomerID: 7, ProductIDs: []int64{}}
	productRepo.add(NewProductInfo(5, 10, 1, "light", "lamp", "", 1999))

	t.Run("unknown product", func(t *testing.T) {
		_, err := uc.ReplaceCart(context.Background(), 7, []int64{5, 999})

		var v *e.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Contains(t, v.Fields["products"], "999 does not exist")
	})

	t.Run("non-positive id", func(t *testing.T) {
		_, err := uc.ReplaceCart(context.Background(), 7, []int64{0})

		var v *e.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Contains(t, v.Fields["products"], "must be positive")
	})

	t.Run("empty set clears the cart", func(t *testing.T) {
		contents, err := uc.ReplaceCart(context.Background(), 7, []int64{})
		require.NoError(t, err)
		assert.Empty(t, contents.ProductIDs)
		assert.Empty(t, cartRepo.replaced[3])
	})
}

func TestCartUseCase_ReplaceCartUnknownCustomer(t *testing.T) {
	uc, _, _, _, _, _ := newCartFixture()

	_, err := uc.ReplaceCart(context.Background(), 404, []int64{1})
	assert.ErrorIs(t, err, e.ErrNotFound)
}
