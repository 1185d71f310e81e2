package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
)

// GetAvailabilityByUserID is a point lookup of the user's declared record.
// Returns sql.ErrNoRows when the user has never saved one.
func (r *Repository) GetAvailabilityByUserID(userID int64) (*domain.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, status, job_preference, created_at, version
		FROM availability_records
		WHERE user_id = $1
	`

	record := &domain.AvailabilityRecord{
		UserID: userID,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(&record.ID, &record.Status, &record.JobPreference, &record.CreatedAt, &record.Version); err != nil {
		return nil, err
	}

	query = `
		SELECT available_date::text
		FROM availability_record_dates
		WHERE availability_record_id = $1
		ORDER BY available_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, record.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	record.Dates = make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		record.Dates = append(record.Dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return record, nil
}

// ReplaceAvailability overwrites the user's record wholesale: the old record
// and its dates go, the new ones come in, and any leave days are deducted
// from the user's annual-leave balance, all in one transaction. leaveDays of
// zero leaves the balance untouched.
func (r *Repository) ReplaceAvailability(record *domain.AvailabilityRecord, leaveDays int32) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM availability_records WHERE user_id = $1`
	if _, err := tx.ExecContext(ctx, query, record.UserID); err != nil {
		return err
	}

	query = `
		INSERT INTO availability_records (user_id, status, job_preference)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, record.UserID, record.Status, record.JobPreference).Scan(&record.ID, &record.CreatedAt, &record.Version); err != nil {
		return err
	}

	for _, date := range record.Dates {
		query := `
			INSERT INTO availability_record_dates (availability_record_id, available_date)
			VALUES ($1, $2::date)
		`
		if _, err := tx.ExecContext(ctx, query, record.ID, date); err != nil {
			return err
		}
	}

	if leaveDays > 0 {
		query := `
			UPDATE users
			SET annual_leave_remaining = annual_leave_remaining - $1
			WHERE id = $2 AND annual_leave_remaining >= $1
			RETURNING annual_leave_remaining
		`
		var remaining int32
		if err := tx.QueryRowContext(ctx, query, leaveDays, record.UserID).Scan(&remaining); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientLeave
			}
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
