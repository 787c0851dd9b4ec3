package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fullnessapp/fullness-server/models"
)

// AdminStats gathers the aggregates behind the admin dashboard.
func AdminStats(ctx context.Context, q Querier) (*models.AdminDashboard, error) {
	var stats models.AdminDashboard

	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers); err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*) AS registrations
		FROM users
		GROUP BY month
		ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("fetching registrations by month: %w", err)
	}
	stats.RegistrationsByMonth, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.MonthlyRegistrations])
	if err != nil {
		return nil, fmt.Errorf("fetching registrations by month: %w", err)
	}
	return &stats, nil
}
