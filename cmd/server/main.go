package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/herbalgarden/storefront/internal/cache"
	"github.com/herbalgarden/storefront/internal/config"
	apihttp "github.com/herbalgarden/storefront/internal/http"
	"github.com/herbalgarden/storefront/internal/repository"
	"github.com/herbalgarden/storefront/internal/seed"
	"github.com/herbalgarden/storefront/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := config.Load()

	ctx := context.Background()
	db, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	log.Info().Str("db", cfg.MongoDBName).Msg("connected to MongoDB")

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)

	if err := seed.Run(ctx, productRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to seed products")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")

	catalogCache := cache.NewRedisCache(redisClient)
	catalogService := service.NewCatalogService(productRepo, catalogCache)
	orderService := service.NewOrderService(orderRepo)
	contactService := service.NewContactService(contactRepo)

	if err := catalogService.InvalidateCatalog(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate catalog cache on startup")
	}

	router := apihttp.NewRouter(apihttp.RouterConfig{
		Catalog:  catalogService,
		Orders:   orderService,
		Contacts: contactService,
		Storage: apihttp.PingerFunc(func(ctx context.Context) error {
			return repository.Ping(ctx, db)
		}),
		StaticDir:      cfg.StaticDir,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("storefront API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := db.Client().Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	log.Info().Msg("stopped")
}
