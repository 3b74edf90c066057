package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/Tanner253/BigsAckies-sub001/internal/application/catalog"
	checkoutapp "github.com/Tanner253/BigsAckies-sub001/internal/application/checkout"
	identityapp "github.com/Tanner253/BigsAckies-sub001/internal/application/identity"
	orderapp "github.com/Tanner253/BigsAckies-sub001/internal/application/order"
	shoppingapp "github.com/Tanner253/BigsAckies-sub001/internal/application/shopping"
	supportapp "github.com/Tanner253/BigsAckies-sub001/internal/application/support"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/auth"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/config"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/logger"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/payment"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/persistence"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/storage"
	"github.com/Tanner253/BigsAckies-sub001/internal/interfaces/http/handler"
	"github.com/Tanner253/BigsAckies-sub001/internal/interfaces/http/middleware"
	"github.com/Tanner253/BigsAckies-sub001/internal/interfaces/http/router"
)

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

	log.Info("Starting Reptile Store Backend",
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
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)
	checkoutScope := persistence.NewGormCheckoutTransactionScope(db.DB)

	// Token blacklist: Redis in normal deployments, in-memory when Redis
	// is not configured (single-instance development setups).
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis not configured, using in-memory token blacklist")
	}

	// Object storage for product images
	var objectStorage catalogapp.ObjectStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("S3 object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("Object storage not configured, product image uploads disabled")
	}

	// Payment provider
	stripeProvider := payment.NewStripeProvider(cfg.Stripe, log)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, objectStorage, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, log)
	cartService := shoppingapp.NewCartService(cartRepo, productRepo, log)
	checkoutService := checkoutapp.NewCheckoutService(checkoutScope, cartRepo, productRepo, stripeProvider, cfg.Stripe.Currency, log)
	orderService := orderapp.NewOrderService(orderRepo, log)
	messageService := supportapp.NewMessageService(messageRepo, userRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)
	messageHandler := handler.NewMessageHandler(messageService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	}
	requireAuth := middleware.JWTAuthMiddleware(jwtConfig)

	// Public authentication routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)

	// Public storefront routes: product and category browsing
	storefrontRoutes := router.NewDomainGroup("storefront", "")
	storefrontRoutes.GET("/products", productHandler.List)
	storefrontRoutes.GET("/products/:id", productHandler.Get)
	storefrontRoutes.GET("/categories", categoryHandler.List)
	storefrontRoutes.GET("/categories/:id", categoryHandler.Get)

	// Support message submission: open to guests, linked to the account
	// when a valid token is presented.
	supportRoutes := router.NewDomainGroup("support", "/messages")
	supportRoutes.Use(middleware.OptionalJWTAuthMiddleware(jwtService))
	supportRoutes.POST("", messageHandler.Submit)

	// Customer routes requiring authentication
	accountRoutes := router.NewDomainGroup("account", "")
	accountRoutes.Use(requireAuth)
	accountRoutes.POST("/auth/logout", authHandler.Logout)
	accountRoutes.GET("/auth/me", authHandler.Me)
	accountRoutes.GET("/cart", cartHandler.Get)
	accountRoutes.POST("/cart/items", cartHandler.AddItem)
	accountRoutes.PUT("/cart/items/:id", cartHandler.UpdateItem)
	accountRoutes.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	accountRoutes.DELETE("/cart", cartHandler.Clear)
	accountRoutes.POST("/checkout/payment-intent", checkoutHandler.CreatePaymentIntent)
	accountRoutes.POST("/checkout/orders", checkoutHandler.CreateOrder)
	accountRoutes.GET("/orders", orderHandler.ListMine)
	accountRoutes.GET("/orders/:id", orderHandler.GetMine)
	accountRoutes.GET("/messages", messageHandler.ListMine)

	// Admin routes
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(requireAuth, middleware.RequireAdmin())
	adminRoutes.POST("/products", productHandler.Create)
	adminRoutes.PUT("/products/:id", productHandler.Update)
	adminRoutes.DELETE("/products/:id", productHandler.Delete)
	adminRoutes.POST("/products/:id/image/upload-url", productHandler.RequestImageUpload)
	adminRoutes.POST("/products/:id/image/confirm", productHandler.ConfirmImageUpload)
	adminRoutes.POST("/categories", categoryHandler.Create)
	adminRoutes.PUT("/categories/:id", categoryHandler.Update)
	adminRoutes.DELETE("/categories/:id", categoryHandler.Delete)
	adminRoutes.GET("/orders", orderHandler.List)
	adminRoutes.GET("/orders/:id", orderHandler.Get)
	adminRoutes.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	adminRoutes.GET("/messages", messageHandler.List)
	adminRoutes.GET("/messages/:id", messageHandler.Get)
	adminRoutes.PUT("/messages/:id/respond", messageHandler.Respond)
	adminRoutes.DELETE("/messages/:id", messageHandler.Delete)
	adminRoutes.GET("/users", userHandler.List)
	adminRoutes.GET("/users/:id", userHandler.Get)
	adminRoutes.POST("/users/:id/promote", userHandler.Promote)
	adminRoutes.DELETE("/users/:id", userHandler.Delete)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(storefrontRoutes).
		Register(supportRoutes).
		Register(accountRoutes).
		Register(adminRoutes).
		Register(systemRoutes)

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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
