//go:generate goverter gen github.com/ananas-shop/commerce-backend/internal/repository/redis/converter

package converter

import (
	"github.com/ananas-shop/commerce-backend/internal/usecase"
)

// ProductInfoConverter маппит срез товаров между usecase-представлением
// и redis-моделью, сериализуемой в JSON.
//
// goverter:converter
type ProductInfoConverter interface {
	ToRedisModel(entity *usecase.ProductInfo) *ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
	ToArrRedisModel(entities []usecase.ProductInfo) []ProductInfoRedisModel
	ToArrUseCase(models []ProductInfoRedisModel) []usecase.ProductInfo
}
