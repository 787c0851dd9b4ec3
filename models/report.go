package models

import "github.com/shopspring/decimal"

// IncomeReportRow is one row of the joined income listings
// (incomes-by-month and incomes-by-date). Column aliases match the SQL.
type IncomeReportRow struct {
	UserName         string          `json:"user_name" db:"user_name"`
	IncomeSourceName string          `json:"income_source_name" db:"income_source_name"`
	IncomeID         int             `json:"income_id" db:"income_id"`
	IncomeTitle      string          `json:"income_title" db:"income_title"`
	Date             Date            `json:"date" db:"date"`
	Amount           decimal.Decimal `json:"amount" db:"amount"`
}

// IncomeTotal carries a trailing-window SUM(amount). The sum is NULL when the
// window matched no rows; clients treat null as zero.
type IncomeTotal struct {
	Amount decimal.NullDecimal `json:"amount" db:"amount"`
}

// MonthlyRegistrations is one bucket of the admin dashboard's
// registrations-by-month aggregate.
type MonthlyRegistrations struct {
	Month         string `json:"month" db:"month"`
	Registrations int    `json:"registrations" db:"registrations"`
}

// AdminDashboard is the payload of the protected admin route.
type AdminDashboard struct {
	TotalUsers           int                    `json:"total_users"`
	RegistrationsByMonth []MonthlyRegistrations `json:"registrations_by_month"`
}
