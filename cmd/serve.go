package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crmkit/ghl-bridge/internal/config"
	"github.com/crmkit/ghl-bridge/internal/db"
	"github.com/crmkit/ghl-bridge/internal/ghl"
	httpSrv "github.com/crmkit/ghl-bridge/internal/http"
	"github.com/crmkit/ghl-bridge/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}

		logger.Init(cfg.Log.Level)

		// redis is optional: it backs rate limiting and the pipelines cache
		var redisClient *redis.Client
		if cfg.Redis.Addr != "" {
			redisClient, err = db.NewRedisClient(db.RedisOpts{
				Addr:        cfg.Redis.Addr,
				Password:    cfg.Redis.Password,
				DB:          cfg.Redis.DB,
				DialTimeout: cfg.Redis.DialTimeout,
			})
			if err != nil {
				return fmt.Errorf("redis connect: %w", err)
			}
			defer func() { _ = redisClient.Close() }()
		}

		client := ghl.NewClient(ghl.Config{
			BaseURL:       cfg.GHL.BaseURL,
			APIKey:        cfg.GHL.APIKey,
			LocationID:    cfg.GHL.LocationID,
			Version:       cfg.GHL.Version,
			Timeout:       cfg.GHL.Timeout,
			FailThreshold: cfg.GHL.Breaker.FailThreshold,
			OpenFor:       time.Duration(cfg.GHL.Breaker.OpenForMs) * time.Millisecond,
		})

		server := httpSrv.NewServer(cfg, client, redisClient)

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("starting http", zap.String("addr", cfg.HTTP.Addr))
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.Log.Info("signal received, shutting down", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil {
				logger.Log.Error("http server exited", zap.Error(err))
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)

		return nil
	},
}
