package main

import (
	"database/sql"
	"log"
	"net/http"

	"freshkart-be/internal/cart"
	"freshkart-be/internal/category"
	"freshkart-be/internal/config"
	"freshkart-be/internal/db"
	"freshkart-be/internal/handler"
	"freshkart-be/internal/logger"
	"freshkart-be/internal/middleware"
	"freshkart-be/internal/order"
	"freshkart-be/internal/payment"
	"freshkart-be/internal/product"
	"freshkart-be/internal/recommend"
	"freshkart-be/internal/user"
)

// Swappable for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	srv := newServer(cfg, database)

	logger.L().Sugar().Infof("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, srv)
}

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, cartRepo, orderRepo)

	recommendRepo := recommend.NewRepository(database)
	recommendSvc := recommend.NewService(recommendRepo, productRepo)

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	mux := handler.Routes(
		&handler.UserHandler{Svc: userSvc},
		&handler.ProductHandler{CategorySvc: categorySvc, ProductSvc: productSvc, RecommendSvc: recommendSvc},
		&handler.CartHandler{Svc: cartSvc, UserSvc: userSvc, ProductSvc: productSvc},
		&handler.OrderHandler{Svc: orderSvc, ProductSvc: productSvc},
		&handler.PaymentHandler{Gateway: gateway},
	)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return middleware.Chain(mux)
}
