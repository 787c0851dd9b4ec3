package models

import "github.com/shopspring/decimal"

type Income struct {
	ID       int             `json:"id" db:"id"`
	Title    string          `json:"title" db:"title" binding:"required"`
	Date     Date            `json:"date" db:"date" binding:"required"`
	Amount   decimal.Decimal `json:"amount" db:"amount" binding:"required"`
	UserID   int             `json:"user_id" db:"user_id" binding:"required"`
	SourceID int             `json:"income_source_id" db:"income_source_id" binding:"required"`
}
