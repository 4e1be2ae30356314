package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	partnerapp "github.com/estateops/backend/internal/application/partner"
	propertyapp "github.com/estateops/backend/internal/application/property"
	reportapp "github.com/estateops/backend/internal/application/report"
	salesapp "github.com/estateops/backend/internal/application/sales"
	systemapp "github.com/estateops/backend/internal/application/system"
	treasuryapp "github.com/estateops/backend/internal/application/treasury"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/estateops/backend/internal/infrastructure/auth"
	"github.com/estateops/backend/internal/infrastructure/cache"
	"github.com/estateops/backend/internal/infrastructure/config"
	"github.com/estateops/backend/internal/infrastructure/logger"
	"github.com/estateops/backend/internal/infrastructure/persistence"
	"github.com/estateops/backend/internal/interfaces/http/handler"
	"github.com/estateops/backend/internal/interfaces/http/middleware"
	"github.com/estateops/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Back Office API
//	@version		1.0
//	@description	Real estate sales and accounting back office

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting back office backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	safeRepo := persistence.NewGormSafeRepository(db.DB)
	voucherRepo := persistence.NewGormVoucherRepository(db.DB)
	transferRepo := persistence.NewGormTransferRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	installmentRepo := persistence.NewGormInstallmentRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	brokerRepo := persistence.NewGormBrokerRepository(db.DB)
	brokerDueRepo := persistence.NewGormBrokerDueRepository(db.DB)
	partnerRepo := persistence.NewGormPartnerRepository(db.DB)
	partnerDebtRepo := persistence.NewGormPartnerDebtRepository(db.DB)
	systemStore := persistence.NewGormSystemStore(db.DB)

	// Transaction scopes bind multi-aggregate mutations to one database transaction
	treasuryScope := persistence.NewGormTreasuryTransactionScope(db.DB)
	salesScope := persistence.NewGormSalesTransactionScope(db.DB)

	// Idempotency store backs retry-safe voucher and transfer creation.
	// Redis when available, in-process fallback otherwise.
	var idemStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		idemStore = redisStore
		log.Info("Redis idempotency store connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		memStore := cache.NewInMemoryIdempotencyStore()
		defer memStore.Close()
		idemStore = memStore
		log.Info("Using in-memory idempotency store")
	}

	// Initialize application services
	safeService := treasuryapp.NewSafeService(safeRepo, voucherRepo, transferRepo, treasuryScope)
	voucherService := treasuryapp.NewVoucherService(voucherRepo, unitRepo, treasuryScope, idemStore)
	transferService := treasuryapp.NewTransferService(transferRepo, treasuryScope, idemStore)
	unitService := propertyapp.NewUnitService(unitRepo, contractRepo, installmentRepo)
	contractService := salesapp.NewContractService(contractRepo, installmentRepo, customerRepo, brokerRepo, salesScope)
	installmentService := salesapp.NewInstallmentService(installmentRepo, contractRepo, salesScope)
	customerService := partnerapp.NewCustomerService(customerRepo, contractRepo)
	brokerService := partnerapp.NewBrokerService(brokerRepo, brokerDueRepo, contractRepo)
	partnerService := partnerapp.NewPartnerService(partnerRepo, partnerDebtRepo)
	dashboardService := reportapp.NewDashboardService(safeRepo, voucherRepo, unitRepo, installmentRepo)
	reportService := reportapp.NewReportService(db.DB, log)
	systemService := systemapp.NewSystemService(systemStore, log)

	// JWT verification (tokens are issued by the identity service)
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	safeHandler := handler.NewSafeHandler(safeService)
	voucherHandler := handler.NewVoucherHandler(voucherService)
	transferHandler := handler.NewTransferHandler(transferService)
	unitHandler := handler.NewUnitHandler(unitService)
	contractHandler := handler.NewContractHandler(contractService)
	installmentHandler := handler.NewInstallmentHandler(installmentService)
	customerHandler := handler.NewCustomerHandler(customerService)
	brokerHandler := handler.NewBrokerHandler(brokerService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	reportHandler := handler.NewReportHandler(reportService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	systemHandler := handler.NewSystemHandler(systemService)
	healthHandler := handler.NewHealthHandler(db.DB)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler.Health)

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT authentication on API routes. In non-production environments the
	// tenant middleware falls back to the X-Tenant-ID header, so JWT is
	// enforced only in production.
	if cfg.App.Env == "production" {
		jwtConfig := middleware.JWTMiddlewareConfig{
			JWTService: jwtService,
			SkipPaths: []string{
				"/health",
				"/api/v1/health",
			},
			Logger: log,
		}
		engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))
	}

	// Tenant resolution: JWT claims first, X-Tenant-ID header as the
	// development fallback.
	tenantConfig := middleware.DefaultTenantConfig()
	tenantConfig.Required = cfg.App.Env == "production"
	tenantConfig.Logger = log
	engine.Use(middleware.TenantMiddlewareWithConfig(tenantConfig))

	r.Register(safeHandler).
		Register(voucherHandler).
		Register(transferHandler).
		Register(unitHandler).
		Register(contractHandler).
		Register(installmentHandler).
		Register(customerHandler).
		Register(brokerHandler).
		Register(partnerHandler).
		Register(reportHandler).
		Register(dashboardHandler).
		Register(systemHandler).
		Register(healthHandler)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
