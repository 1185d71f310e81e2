package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/config"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/repository"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return
	}

	/**********************************************
	 * database
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	/**********************************************
	 * seed
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)
	seed.Run(cfg, repo)
}
