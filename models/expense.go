package models

import "github.com/shopspring/decimal"

type Expense struct {
	ID     int             `json:"id" db:"id"`
	Title  string          `json:"title" db:"title" binding:"required"`
	Date   Date            `json:"date" db:"date" binding:"required"`
	Amount decimal.Decimal `json:"amount" db:"amount" binding:"required"`
	UserID int             `json:"user_id" db:"user_id" binding:"required"`
	TypeID int             `json:"expense_type_id" db:"expense_type_id" binding:"required"`
}
