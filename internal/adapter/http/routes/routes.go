package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "estimate_engine/docs" // This will be auto-generated
	"estimate_engine/internal/adapter/http/handlers"
	"estimate_engine/internal/adapter/persistence/memory"
	"estimate_engine/internal/adapter/persistence/repository"
	"estimate_engine/internal/infrastructure/config"
	"estimate_engine/internal/infrastructure/database"
	"estimate_engine/internal/infrastructure/document"
	"estimate_engine/internal/infrastructure/lock"
	"estimate_engine/internal/infrastructure/logger"
	"estimate_engine/internal/infrastructure/metrics"
	"estimate_engine/internal/usecase"
	"estimate_engine/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Estimates *handlers.EstimateHandler
	Payments  *handlers.PaymentHandler
	Public    *handlers.PublicEstimateHandler
}

// Run wires the service from cfg and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	h, closeFn, err := buildHandlers(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer closeFn()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           NewRouter(log, m, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting http server", zap.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// NewRouter mounts middleware, docs, metrics and the /v1 routes.
func NewRouter(log *zap.Logger, m *metrics.Metrics, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(logger.GinMiddleware(log))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", m.Handler())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.Estimates, h.Payments)
	addPublicRoutes(v1, h.Public)
	return router
}

// buildHandlers selects storage and locking from cfg. The returned close
// function releases any external connections.
func buildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (Handlers, func(), error) {
	var (
		estimateRepo interfaces.IEstimateRepository
		paymentRepo  interfaces.IPaymentRepository
		locker       interfaces.ILocker
		closers      []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return Handlers{}, nil, err
		}
		estimateRepo = repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
		paymentRepo = repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable, cfg.EstimatesTable)
	default:
		store := memory.NewStore()
		estimateRepo = store.Estimates()
		paymentRepo = store.Payments()
	}

	switch cfg.LockDriver {
	case config.LockRedis:
		client, err := lock.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return Handlers{}, nil, err
		}
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				log.Warn("redis close", zap.Error(err))
			}
		})
		locker = lock.NewRedisLocker(client, cfg.LockTTL, cfg.LockWait, log)
	default:
		locker = lock.NewLocalLocker()
	}
	log.Info("storage configured", zap.String("storage", cfg.StorageDriver), zap.String("lock", cfg.LockDriver))

	opts := []usecase.Option{usecase.WithLogger(log), usecase.WithMetrics(m)}
	renderer := document.NewPDFRenderer(cfg.CompanyName, cfg.CurrencySymbol)
	defaults := usecase.CompanyDefaults{
		TaxRate:      cfg.DefaultTaxRate,
		Terms:        cfg.DefaultTerms,
		ValidityDays: cfg.DefaultValidityDays,
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, renderer, defaults, opts...)
	ledgerUseCase := usecase.NewPaymentLedgerUseCase(paymentRepo, estimateRepo, locker, opts...)
	publicUseCase := usecase.NewPublicApprovalUseCase(estimateRepo, opts...)

	return Handlers{
		Estimates: handlers.NewEstimateHandler(estimateUseCase, cfg.PublicBaseURL),
		Payments:  handlers.NewPaymentHandler(ledgerUseCase, cfg.PublicBaseURL),
		Public:    handlers.NewPublicEstimateHandler(publicUseCase),
	}, closeAll, nil
}
