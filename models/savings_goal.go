package models

import "github.com/shopspring/decimal"

type SavingsGoal struct {
	ID           int             `json:"id" db:"id"`
	Name         string          `json:"name" db:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount" db:"target_amount" binding:"required"`
	TargetDate   Date            `json:"target_date" db:"target_date" binding:"required"`
	Description  string          `json:"description" db:"description"`
	UserID       int             `json:"user_id" db:"user_id" binding:"required"`
}
