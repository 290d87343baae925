// README: Entry point; loads config, builds the tariff table, wires services and serves HTTP until signalled.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tarifa/internal/config"
	httptransport "tarifa/internal/http"
	"tarifa/internal/infra"
	"tarifa/internal/modules/manualquote"
	"tarifa/internal/modules/pricing"
	"tarifa/internal/modules/tariff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := loadTable(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("load tariff table", zap.Error(err))
	}
	logger.Info("tariff table loaded",
		zap.String("source", cfg.TariffSource),
		zap.Int("destinations", table.Len()),
	)

	pricingSvc := pricing.NewService(table, logger)

	var manualQuoteSvc *manualquote.Service
	if cfg.ManualQuotesEnabled() {
		redisClient, err := infra.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatal("connect redis", zap.Error(err))
		}
		defer redisClient.Close()
		manualQuoteSvc = manualquote.NewService(manualquote.NewStore(redisClient), cfg.ManualQuoteTTL(), logger)
	} else {
		logger.Info("manual quote queue disabled; set TARIFA_REDIS_ADDR to enable")
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Pricing:      pricingSvc,
		ManualQuotes: manualQuoteSvc,
		Logger:       logger,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}

// loadTable reads the dataset once at startup; the table is immutable after.
func loadTable(ctx context.Context, cfg config.Config, logger *zap.Logger) (*tariff.Table, error) {
	if cfg.TariffSource != config.TariffSourcePostgres {
		return tariff.NewTable(tariff.DefaultRows())
	}

	db, err := infra.NewDB(ctx, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := tariff.NewStore(db).LoadRows(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("tariff rows read", zap.Int("rows", len(rows)))
	return tariff.NewTable(rows)
}
