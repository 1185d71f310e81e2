package repository

import (
	"context"
	"time"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
)

func (r *Repository) CreateRoute(route *domain.Route) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO routes (route_date, start_location, end_location, assigned_to)
		VALUES ($1::date, $2, $3, $4)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, route.Date, route.StartLocation, route.EndLocation, route.AssignedTo).Scan(&route.ID, &route.CreatedAt, &route.Version); err != nil {
		return err
	}

	for i, assignment := range route.Assignments {
		query := `
			INSERT INTO route_assignments (route_id, position, description)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.ExecContext(ctx, query, route.ID, i, assignment); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetUpcomingRoutesByAssignee returns the user's routes from the given date
// onward, assignments in run order.
func (r *Repository) GetUpcomingRoutesByAssignee(userID int64, from string) ([]*domain.Route, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, route_date::text, start_location, end_location, assigned_to, created_at, version
		FROM routes
		WHERE assigned_to = $1 AND route_date >= $2::date
		ORDER BY route_date, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0)
	for rows.Next() {
		route := &domain.Route{Assignments: make([]string, 0)}
		dst := []any{&route.ID, &route.Date, &route.StartLocation, &route.EndLocation, &route.AssignedTo, &route.CreatedAt, &route.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, route := range routes {
		query := `
			SELECT description FROM route_assignments
			WHERE route_id = $1
			ORDER BY position
		`
		rows, err := r.dbpool.QueryContext(ctx, query, route.ID)
		if err != nil {
			return nil, err
		}

		for rows.Next() {
			var description string
			if err := rows.Scan(&description); err != nil {
				rows.Close()
				return nil, err
			}
			route.Assignments = append(route.Assignments, description)
		}

		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}

	return routes, nil
}
