package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ahmed-hessen/E-shop/internal/config"
	"github.com/Ahmed-hessen/E-shop/internal/dbmigrate"
	"github.com/Ahmed-hessen/E-shop/migrations"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config_invalid", slog.Any("err", err))
		os.Exit(1)
	}

	// schema files hold several statements each
	mc, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		log.Error("dsn_invalid", slog.Any("err", err))
		os.Exit(1)
	}
	mc.MultiStatements = true

	db, err := gorm.Open(gormmysql.Open(mc.FormatDSN()), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		log.Error("db_connect_failed", slog.Any("err", err))
		os.Exit(1)
	}

	n, err := dbmigrate.Apply(context.Background(), db, migrations.FS, log)
	if err != nil {
		log.Error("migrate_failed", slog.Int("applied", n), slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("migrate_done", slog.Int("applied", n))
}
