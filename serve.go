package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/cache"
	"github.com/dcode-github/property_listing_card/components"
	"github.com/dcode-github/property_listing_card/config"
	"github.com/dcode-github/property_listing_card/controllers"
	"github.com/dcode-github/property_listing_card/logging"
	"github.com/dcode-github/property_listing_card/repository"
	"github.com/dcode-github/property_listing_card/routes"
	"github.com/dcode-github/property_listing_card/service"
	"github.com/dcode-github/property_listing_card/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	client, err := config.ConnectDB(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("connect to the database: %w", err)
	}
	defer config.CloseDBConnection(client, logger)

	db := client.Database(cfg.Mongo.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	checks := map[string]controllers.Check{
		"mongo": func(ctx context.Context) error { return client.Ping(ctx, nil) },
	}

	var propertyCache cache.PropertyCache = cache.NopCache{}
	redisClient, err := config.InitRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, listing cache disabled", zap.Error(err))
	} else if redisClient != nil {
		defer redisClient.Close()
		propertyCache = cache.NewRedisCache(redisClient, cfg.Redis.TTL, logger)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	renderer, err := components.NewRenderer(cfg.CardOptions())
	if err != nil {
		return err
	}

	properties := repository.NewMongoPropertyRepository(db)
	favorites := repository.NewMongoFavoriteRepository(db)
	tokens := utils.NewTokenIssuer(cfg.Auth.JWTKey, cfg.Auth.TokenTTL, cfg.Auth.Issuer)

	listingService := service.NewListingService(properties, favorites, propertyCache, logger)
	favoriteService := service.NewFavoriteService(favorites, properties, propertyCache, logger)
	defer listingService.Wait()
	defer favoriteService.Wait()

	handler := routes.Handler(routes.Deps{
		Accounts:       service.NewAuthService(repository.NewMongoUserRepository(db), tokens, logger),
		Listings:       listingService,
		Favorites:      favoriteService,
		Toggler:        favoriteService,
		Renderer:       renderer,
		Tokens:         tokens,
		Checks:         checks,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		SessionTTL:     tokens.TTL(),
		Logger:         logger,
	})

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running",
			zap.String("port", cfg.Server.Port),
			zap.String("apiBaseURL", cfg.API.BaseURL),
			zap.String("apiVersion", cfg.API.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server gracefully stopped")
	return nil
}
