package repository

import (
	"context"
	"time"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
)

const jobColumns = `
	id,
	scheduled_date::text,
	type,
	brand,
	location,
	driver_id,
	driver_name,
	technician_id,
	technician_name,
	allocated_hours,
	status,
	created_at,
	version
`

func scanJob(scan func(dst ...any) error) (*domain.Job, error) {
	job := &domain.Job{}
	dst := []any{
		&job.ID,
		&job.ScheduledDate,
		&job.Type,
		&job.Brand,
		&job.Location,
		&job.DriverID,
		&job.DriverName,
		&job.TechnicianID,
		&job.TechnicianName,
		&job.AllocatedHours,
		&job.Status,
		&job.CreatedAt,
		&job.Version,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) CreateJob(job *domain.Job) error {
	query := `
		INSERT INTO jobs (scheduled_date, type, brand, location, allocated_hours)
		VALUES ($1::date, $2, $3, $4, $5)
		RETURNING id, status, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{job.ScheduledDate, job.Type, job.Brand, job.Location, job.AllocatedHours}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&job.ID, &job.Status, &job.CreatedAt, &job.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetJobByID(id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanJob(r.dbpool.QueryRowContext(ctx, query, id).Scan)
}

func (r *Repository) GetAllJobs() ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY scheduled_date, id`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// GetJobsByAssignee returns every job the user fills either role on.
func (r *Repository) GetJobsByAssignee(userID int64) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE driver_id = $1 OR technician_id = $1 ORDER BY scheduled_date, id`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// CountAssignedOnDate counts jobs already in status Assigned on the given
// date, excluding the job being assigned. This feeds the user-facing
// eligibility check; the binding recheck happens inside AssignStaff.
func (r *Repository) CountAssignedOnDate(date string, excludeJobID int64) (int, error) {
	query := `
		SELECT COUNT(*) FROM jobs
		WHERE scheduled_date = $1::date AND status = 'Assigned' AND id <> $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int
	if err := r.dbpool.QueryRowContext(ctx, query, date, excludeJobID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// AssignStaff writes the assignee reference and name snapshot onto the job
// and moves it to Assigned, inside a transaction that locks the same-date
// Assigned rows and recounts against the cap. Two managers racing on the
// same date cannot both get under the cap: the second blocks on the row
// locks and sees the first one's write.
func (r *Repository) AssignStaff(job *domain.Job, staff *domain.User, role domain.AssignmentRole, allocatedHours int32, capacity int) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery := `
		SELECT COUNT(*) FROM (
			SELECT id FROM jobs
			WHERE scheduled_date = $1::date AND status = 'Assigned' AND id <> $2
			FOR UPDATE
		) locked
	`

	var assignedSameDay int
	if err := tx.QueryRowContext(ctx, lockQuery, job.ScheduledDate, job.ID).Scan(&assignedSameDay); err != nil {
		return err
	}
	if assignedSameDay >= capacity {
		return ErrCapacityConflict
	}

	var query string
	if role == domain.AssignmentRoleDriver {
		query = `
			UPDATE jobs
			SET
				driver_id = $1,
				driver_name = $2,
				allocated_hours = $3,
				status = 'Assigned',
				version = version + 1
			WHERE id = $4 AND version = $5
			RETURNING status, version
		`
	} else {
		query = `
			UPDATE jobs
			SET
				technician_id = $1,
				technician_name = $2,
				allocated_hours = $3,
				status = 'Assigned',
				version = version + 1
			WHERE id = $4 AND version = $5
			RETURNING status, version
		`
	}

	args := []any{staff.ID, staff.FullName, allocatedHours, job.ID, job.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&job.Status, &job.Version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if role == domain.AssignmentRoleDriver {
		job.DriverID = &staff.ID
		job.DriverName = &staff.FullName
	} else {
		job.TechnicianID = &staff.ID
		job.TechnicianName = &staff.FullName
	}
	job.AllocatedHours = allocatedHours

	return nil
}

// UpdateJobStatus writes the job's status and assignee references with a
// version check. Used for the accept/reject/complete transitions; reject
// clears the rejecting staff member's reference before the call.
func (r *Repository) UpdateJobStatus(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET
			driver_id = $1,
			driver_name = $2,
			technician_id = $3,
			technician_name = $4,
			status = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{job.DriverID, job.DriverName, job.TechnicianID, job.TechnicianName, job.Status, job.ID, job.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&job.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteJob(id int64) error {
	query := `
		DELETE FROM jobs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
