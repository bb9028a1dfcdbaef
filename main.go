package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-backend/common/logger"
	"shop-backend/config"
	"shop-backend/controllers"
	"shop-backend/database"
	"shop-backend/kafka"
	"shop-backend/middleware"
	"shop-backend/repository"
	"shop-backend/routes"
	"shop-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg.MongoURL, cfg.MongoDB); err != nil {
		logger.Log.Fatal("mongo connect failed", zap.Error(err))
	}
	defer database.Close()

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx); err != nil {
		cancel()
		logger.Log.Fatal("index creation failed", zap.Error(err))
	}
	cancel()

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("redis connect failed", zap.Error(err))
	}
	defer redisClient.Close()

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)
	cartRepo := repository.NewCartRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)

	// Services
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	mailer := services.NewSMTPMailer(cfg)
	authSvc := services.NewAuthService(userRepo, tokens)
	resetSvc := services.NewPasswordResetService(userRepo, mailer, cfg.ResetTokenTTL, cfg.ResetURLBase)
	productCache := services.NewProductCache(redisClient, cfg.ProductCacheTTL)
	productSvc := services.NewProductService(productRepo, productCache)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(orderRepo, cartRepo, producer)
	orderSvc := services.NewOrderService(orderRepo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(middleware.SecurityHeaders())

	limiter := middleware.NewRateLimiter(rate.Limit(20), 40, 3*time.Minute)
	router.Use(limiter.Middleware())

	routes.Register(router, routes.Deps{
		Tokens:   tokens,
		Auth:     controllers.NewAuthController(authSvc, resetSvc),
		User:     controllers.NewUserController(authSvc),
		Product:  controllers.NewProductController(productSvc),
		Cart:     controllers.NewCartController(cartSvc),
		Checkout: controllers.NewCheckoutController(checkoutSvc),
		Order:    controllers.NewOrderController(orderSvc),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("shutdown error", zap.Error(err))
	}
	logger.Log.Info("server shutdown complete")
}
