package repository

import (
	"database/sql"
	"errors"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/config"
)

var (
	// ErrCapacityConflict is returned when the in-transaction recheck finds
	// the per-date Assigned cap already reached.
	ErrCapacityConflict = errors.New("daily assignment capacity reached")
	// ErrInsufficientLeave is returned when saving leave dates would push the
	// annual-leave balance below zero.
	ErrInsufficientLeave = errors.New("not enough annual leave remaining")
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}
