package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fullnessapp/fullness-server/models"
)

// incomeReportSelect joins incomes with the owning user and source for the
// display listings.
const incomeReportSelect = `
	SELECT
		users.name AS user_name,
		income_sources.name AS income_source_name,
		incomes.id AS income_id,
		incomes.title AS income_title,
		incomes.date,
		incomes.amount
	FROM incomes
	INNER JOIN income_sources ON incomes.income_source_id = income_sources.id
	INNER JOIN users ON incomes.user_id = users.id
	WHERE incomes.user_id = $1`

// IncomesByMonth returns the user's incomes from the trailing twelve months,
// oldest first.
func IncomesByMonth(ctx context.Context, q Querier, userID int) ([]models.IncomeReportRow, error) {
	twelveMonthsAgo := time.Now().AddDate(0, -12, 0)
	rows, err := q.Query(ctx,
		incomeReportSelect+` AND incomes.date >= $2 ORDER BY incomes.date`,
		userID, twelveMonthsAgo)
	if err != nil {
		return nil, fmt.Errorf("fetching incomes by month: %w", err)
	}
	report, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.IncomeReportRow])
	if err != nil {
		return nil, fmt.Errorf("fetching incomes by month: %w", err)
	}
	return report, nil
}

// IncomesByDateRange returns the user's incomes with date in [start, end]
// inclusive, oldest first.
func IncomesByDateRange(ctx context.Context, q Querier, userID int, start, end models.Date) ([]models.IncomeReportRow, error) {
	rows, err := q.Query(ctx,
		incomeReportSelect+` AND incomes.date >= $2 AND incomes.date <= $3 ORDER BY incomes.date`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching incomes by date range: %w", err)
	}
	report, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.IncomeReportRow])
	if err != nil {
		return nil, fmt.Errorf("fetching incomes by date range: %w", err)
	}
	return report, nil
}

// CurrentIncomeTotal sums the user's income over the trailing month. The sum
// is NULL when nothing matched; that is a valid result, not an error.
func CurrentIncomeTotal(ctx context.Context, q Querier, userID int) (models.IncomeTotal, error) {
	var total models.IncomeTotal
	err := q.QueryRow(ctx, `
		SELECT SUM(amount) AS amount
		FROM incomes
		WHERE user_id = $1
		  AND date >= CURRENT_DATE - INTERVAL '1 month'
		  AND date <= CURRENT_DATE`, userID).Scan(&total.Amount)
	if err != nil {
		return total, fmt.Errorf("fetching current income total: %w", err)
	}
	return total, nil
}

// PreviousIncomeTotal sums the user's income over the window one to two
// months back.
func PreviousIncomeTotal(ctx context.Context, q Querier, userID int) (models.IncomeTotal, error) {
	var total models.IncomeTotal
	err := q.QueryRow(ctx, `
		SELECT SUM(amount) AS amount
		FROM incomes
		WHERE user_id = $1
		  AND date >= CURRENT_DATE - INTERVAL '2 month'
		  AND date < CURRENT_DATE - INTERVAL '1 month'`, userID).Scan(&total.Amount)
	if err != nil {
		return total, fmt.Errorf("fetching previous income total: %w", err)
	}
	return total, nil
}
