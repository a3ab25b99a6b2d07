package http

import (
	_ "github.com/ananas-shop/commerce-backend/docs" // Импорт сгенерированных файлов
	"github.com/ananas-shop/commerce-backend/internal/auth"
	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	tokens *auth.TokenService,
	catalogUC usecase.CatalogUC,
	cartUC usecase.CartUC,
	identityUC usecase.IdentityUC,
	checkoutUC usecase.CheckoutUC,
	accountingUC usecase.AccountingUC,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(IdentityMiddleware(tokens))

		registerProductRoutes(v1,
			NewProductHandler(catalogUC, r.logger),
			NewCartHandler(cartUC, r.logger),
			NewCheckoutHandler(checkoutUC, r.logger),
		)
		registerUserRoutes(v1, NewUserHandler(identityUC, r.logger))
		registerAccountingRoutes(v1, NewAccountingHandler(accountingUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, products *ProductHandler, carts *CartHandler, checkout *CheckoutHandler) {
	router.Route("/product", func(pr chi.Router) {
		pr.Get("/list/", products.listProducts)
		pr.Get("/search/", products.searchProducts)
		pr.Post("/create/", products.createProduct)
		pr.Post("/create/category/", products.createCategory)
		pr.Get("/statistics/", products.statistics)
		pr.Get("/{id}/", products.getProduct)
		pr.Put("/{id}/update/", products.updateProduct)
		pr.Delete("/{id}/delete/", products.deleteProduct)

		pr.Get("/cart/{user_id}/", carts.getCart)
		pr.Put("/cart/{user_id}/add/", carts.replaceCart)

		pr.Post("/create-checkout-session/{id}/", checkout.createCheckoutSession)
	})
}

func registerUserRoutes(router chi.Router, users *UserHandler) {
	router.Route("/user", func(us chi.Router) {
		us.Post("/login/", users.login)
		us.Post("/vendor/register/", users.registerVendor)
		us.Post("/customer/register/", users.registerCustomer)
		us.Get("/vendor/list/", users.listVendors)
		us.Get("/customer/list/", users.listCustomers)
		us.Get("/vendor/count/", users.countVendors)
		us.Get("/customer/count/", users.countCustomers)
		us.Get("/vendor/profile/{token}/", users.vendorProfile)
		us.Put("/vendor/profile/{token}/", users.updateVendorProfile)
		us.Delete("/vendor/profile/{token}/", users.deleteVendorProfile)
		us.Get("/vendor/detail/{id}/", users.vendorDetail)
	})
}

func registerAccountingRoutes(router chi.Router, accounting *AccountingHandler) {
	router.Route("/accounting", func(ac chi.Router) {
		ac.Get("/list/", accounting.listEntries)
		ac.Post("/create/", accounting.createEntry)
		ac.Get("/balance/", accounting.balance)
	})
}
