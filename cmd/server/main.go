package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/zapateria/backend/internal/application/catalog"
	financeapp "github.com/zapateria/backend/internal/application/finance"
	identityapp "github.com/zapateria/backend/internal/application/identity"
	inventoryapp "github.com/zapateria/backend/internal/application/inventory"
	partnerapp "github.com/zapateria/backend/internal/application/partner"
	reportapp "github.com/zapateria/backend/internal/application/report"
	"github.com/zapateria/backend/internal/domain/identity"
	"github.com/zapateria/backend/internal/domain/shared"
	"github.com/zapateria/backend/internal/infrastructure/auth"
	"github.com/zapateria/backend/internal/infrastructure/config"
	"github.com/zapateria/backend/internal/infrastructure/logger"
	"github.com/zapateria/backend/internal/infrastructure/persistence"
	"github.com/zapateria/backend/internal/interfaces/http/handler"
	"github.com/zapateria/backend/internal/interfaces/http/middleware"
	"github.com/zapateria/backend/internal/interfaces/http/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting zapateria backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, mapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	modelRepo := persistence.NewGormShoeModelRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	batchRepo := persistence.NewGormIntakeBatchRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	withdrawalRepo := persistence.NewGormWithdrawalRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	inventoryTxScope := persistence.NewGormInventoryTransactionScope(db.DB)
	financeTxScope := persistence.NewGormFinanceTransactionScope(db.DB)

	jwtService := auth.NewJWTService(cfg.JWT)

	if err := bootstrapUsers(userRepo, log); err != nil {
		log.Fatal("Failed to bootstrap user accounts", zap.Error(err))
	}

	// Application services
	brandService := catalogapp.NewBrandService(brandRepo)
	modelService := catalogapp.NewShoeModelService(modelRepo, brandRepo, batchRepo)
	warehouseService := partnerapp.NewWarehouseService(warehouseRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	intakeService := inventoryapp.NewIntakeService(modelRepo, batchRepo, warehouseRepo, inventoryTxScope)
	unitService := inventoryapp.NewUnitService(unitRepo, customerRepo, inventoryTxScope)
	withdrawalService := financeapp.NewWithdrawalService(unitRepo, batchRepo, modelRepo, withdrawalRepo, financeTxScope)
	stockService := reportapp.NewStockOverviewService(unitRepo, batchRepo, modelRepo, warehouseRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	brandHandler := handler.NewBrandHandler(brandService)
	modelHandler := handler.NewShoeModelHandler(modelService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	customerHandler := handler.NewCustomerHandler(customerService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	unitHandler := handler.NewUnitHandler(unitService)
	financeHandler := handler.NewFinanceHandler(withdrawalService)
	reportHandler := handler.NewReportHandler(stockService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", healthHandler(db, log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/login",
		},
		Logger: log,
	}))

	r.Register(authHandler)
	r.Register(brandHandler)
	r.Register(modelHandler)
	r.Register(warehouseHandler)
	r.Register(customerHandler)
	r.Register(intakeHandler)
	r.Register(unitHandler)
	r.Register(financeHandler)
	r.Register(reportHandler)
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// bootstrapUsers creates the initial admin and seller accounts on first start.
// The default password must be changed after the first login.
func bootstrapUsers(userRepo identity.UserRepository, log *zap.Logger) error {
	ctx := context.Background()

	seeds := []struct {
		username string
		password string
		role     identity.Role
	}{
		{"admin", "admin123", identity.RoleAdmin},
		{"vendedor", "vendedor123", identity.RoleSeller},
	}

	for _, seed := range seeds {
		_, err := userRepo.FindByUsername(ctx, seed.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		user, err := identity.NewUser(seed.username, seed.password, seed.role)
		if err != nil {
			return err
		}
		if err := userRepo.Save(ctx, user); err != nil {
			return err
		}

		log.Warn("Created default user, change its password",
			zap.String("username", seed.username),
			zap.String("role", string(seed.role)),
		)
	}

	return nil
}

// healthHandler reports service and database health
func healthHandler(db *persistence.Database, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Error("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "down",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "up",
		})
	}
}

// mapGormLogLevel converts the app log level into a GORM log level
func mapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "warn", "error":
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}
