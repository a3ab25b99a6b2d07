package converter

type ProductInfoRedisModel struct {
	ID           int64  `json:"id"`
	VendorID     int64  `json:"vendor_id"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
}
