package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/backoffice/backend/internal/application/identity"
	"github.com/backoffice/backend/internal/infrastructure/auth"
	"github.com/backoffice/backend/internal/infrastructure/config"
	"github.com/backoffice/backend/internal/infrastructure/logger"
	"github.com/backoffice/backend/internal/infrastructure/persistence"
	"github.com/backoffice/backend/internal/interfaces/http/handler"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/backoffice/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting back office backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
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

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	permissionRepo := persistence.NewPermissionRepository(db.DB)
	storeRepo := persistence.NewStoreRepository(db.DB)
	supplierRepo := persistence.NewSupplierRepository(db.DB)
	customerTypeRepo := persistence.NewCustomerTypeRepository(db.DB)
	customerRepo := persistence.NewCustomerRepository(db.DB)
	itemCategoryRepo := persistence.NewItemCategoryRepository(db.DB)
	itemUnitRepo := persistence.NewItemUnitRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	purchaseRepo := persistence.NewPurchaseRepository(db.DB)
	purchaseItemRepo := persistence.NewPurchaseItemRepository(db.DB)
	saleRepo := persistence.NewSaleRepository(db.DB)
	saleItemRepo := persistence.NewSaleItemRepository(db.DB)
	accountRepo := persistence.NewAccountRepository(db.DB)
	accountTxRepo := persistence.NewAccountTransactionRepository(db.DB)
	paymentRepo := persistence.NewPaymentRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	userService := identityapp.NewUserService(userRepo)

	// Middleware
	currentUser := middleware.CurrentUser(jwtService, userRepo)

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
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Open routes: health and auth
	open := router.NewRouter(engine)
	open.Register(handler.NewSystemHandler(db, cfg.App.Name, version))
	open.Register(handler.NewAuthHandler(authService, userService, currentUser))
	open.Setup()

	// Authenticated business resources
	api := engine.Group("/api/v1", currentUser)
	for _, h := range []router.RouteRegistrar{
		handler.NewPermissionHandler(permissionRepo),
		handler.NewStoreHandler(storeRepo),
		handler.NewSupplierHandler(supplierRepo),
		handler.NewCustomerTypeHandler(customerTypeRepo),
		handler.NewCustomerHandler(customerRepo, customerTypeRepo),
		handler.NewItemCategoryHandler(itemCategoryRepo),
		handler.NewItemUnitHandler(itemUnitRepo),
		handler.NewItemHandler(itemRepo, itemCategoryRepo, itemUnitRepo),
		handler.NewPurchaseHandler(purchaseRepo, supplierRepo, storeRepo),
		handler.NewPurchaseItemHandler(purchaseItemRepo, purchaseRepo, itemRepo),
		handler.NewSaleHandler(saleRepo, customerRepo, storeRepo),
		handler.NewSaleItemHandler(saleItemRepo, saleRepo, itemRepo),
		handler.NewAccountHandler(accountRepo),
		handler.NewAccountTransactionHandler(accountTxRepo, accountRepo),
		handler.NewPaymentHandler(paymentRepo),
	} {
		h.RegisterRoutes(api)
	}

	// Account administration: superuser checks live in the user service so
	// self-reads on /users/:id stay possible.
	handler.NewUserHandler(userService).RegisterRoutes(api)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
