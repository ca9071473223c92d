package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ahmed-hessen/E-shop/internal/config"
	apphttp "github.com/Ahmed-hessen/E-shop/internal/http"
	"github.com/Ahmed-hessen/E-shop/internal/metrics"
	"github.com/Ahmed-hessen/E-shop/internal/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config_invalid", slog.Any("err", err))
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Error("db_connect_failed", slog.Any("err", err))
		os.Exit(1)
	}

	st, err := storage.Open(context.Background(), cfg.Storage)
	if err != nil {
		log.Error("storage_init_failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("storage_ready", slog.String("driver", cfg.Storage.Driver))

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			log.Info("metrics_listen", slog.String("addr", cfg.MetricsAddr))
			if err := http.ListenAndServe(cfg.MetricsAddr, m.Handler()); err != nil {
				log.Error("metrics_server_stopped", slog.Any("err", err))
			}
		}()
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Log:     log,
		DB:      db,
		Storage: st,
		Config:  cfg,
		Metrics: m,
	})

	log.Info("http_listen", slog.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		log.Error("http_server_stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
