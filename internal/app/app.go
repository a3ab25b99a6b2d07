package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ananas-shop/commerce-backend/internal/auth"
	config "github.com/ananas-shop/commerce-backend/internal/cfg"
	v1Http "github.com/ananas-shop/commerce-backend/internal/delivery/v1/http"
	"github.com/ananas-shop/commerce-backend/internal/infrastructure/kafka"
	stripeInfra "github.com/ananas-shop/commerce-backend/internal/infrastructure/stripe"
	"github.com/ananas-shop/commerce-backend/internal/repository/pgdb"
	pgdbConv "github.com/ananas-shop/commerce-backend/internal/repository/pgdb/converter/generated"
	"github.com/ananas-shop/commerce-backend/internal/repository/redis"
	redisConv "github.com/ananas-shop/commerce-backend/internal/repository/redis/converter/generated"
	"github.com/ananas-shop/commerce-backend/internal/usecase"
	"github.com/ananas-shop/commerce-backend/pkg/clients"
	"github.com/ananas-shop/commerce-backend/pkg/closer"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/ananas-shop/commerce-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout   = 10 * time.Second
	ensureTopicWindow = 10 * time.Second
)

// Run собирает все зависимости, запускает HTTP-сервер и outbox-воркер
// и блокируется до сигнала завершения или фатальной ошибки.
func Run(cfg *config.Config, log logger.Logger) error {
	shutdownStack := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	shutdownStack.Add(func(context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	catConv := pgdbConv.NewCategoryConverterImpl()
	vendConv := pgdbConv.NewVendorConverterImpl()
	custConv := pgdbConv.NewCustomerConverterImpl()
	accConv := pgdbConv.NewAccountingEntryConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	vendorRepo := pgdb.NewVendorRepo(db.Pool, vendConv)
	customerRepo := pgdb.NewCustomerRepo(db.Pool, custConv)
	cartRepo := pgdb.NewCartRepo(db.Pool)
	accountingRepo := pgdb.NewAccountingRepo(db.Pool, accConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	shutdownStack.Add(func(context.Context) error {
		return redisClient.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(ensureTopicWindow); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	shutdownStack.Add(func(context.Context) error {
		return producer.Close()
	})

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	worker.Start(workerCtx)
	shutdownStack.Add(func(context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})

	tokens := auth.NewTokenService(cfg.Jwt)
	payment := stripeInfra.NewPaymentInfra(cfg.Stripe, log)

	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, vendorRepo, outboxRepo, cacheRepo, db.Pool, log)
	cartUC := usecase.NewCartUC(cartRepo, customerRepo, productRepo, cacheRepo, db.Pool, log)
	identityUC := usecase.NewIdentityUC(vendorRepo, customerRepo, cartRepo, productRepo, tokens, db.Pool, log)
	checkoutUC := usecase.NewCheckoutUC(productRepo, payment, accountingRepo, log)
	accountingUC := usecase.NewAccountingUC(accountingRepo, log)

	mux := chi.NewRouter()
	router := v1Http.NewRouter(mux, log)
	router.Init(tokens, catalogUC, cartUC, identityUC, checkoutUC, accountingUC)

	httpSrv := v1Http.NewServer(mux, cfg.Http)
	shutdownStack.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := shutdownStack.Close(shutdownCtx); err != nil {
		log.Warnf("%v", err)
	}

	log.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
