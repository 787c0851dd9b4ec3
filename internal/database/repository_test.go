package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fullnessapp/fullness-server/models"
)

func TestInsertSQL(t *testing.T) {
	assert.Equal(t,
		`INSERT INTO income_sources (name) VALUES ($1) RETURNING *`,
		IncomeSources.insertSQL())

	assert.Equal(t,
		`INSERT INTO incomes (title, date, amount, user_id, income_source_id) VALUES ($1, $2, $3, $4, $5) RETURNING *`,
		Incomes.insertSQL())
}

func TestUpdateSQL(t *testing.T) {
	assert.Equal(t,
		`UPDATE expense_types SET name = $1 WHERE id = $2 RETURNING *`,
		ExpenseTypes.updateSQL())

	assert.Equal(t,
		`UPDATE savings_goals SET name = $1, target_amount = $2, target_date = $3, description = $4, user_id = $5 WHERE id = $6 RETURNING *`,
		SavingsGoals.updateSQL())
}

func TestResourceValuesMatchColumns(t *testing.T) {
	assert.Len(t, IncomeSources.Values(&models.IncomeSource{}), len(IncomeSources.Columns))
	assert.Len(t, ExpenseTypes.Values(&models.ExpenseType{}), len(ExpenseTypes.Columns))
	assert.Len(t, Incomes.Values(&models.Income{}), len(Incomes.Columns))
	assert.Len(t, Expenses.Values(&models.Expense{}), len(Expenses.Columns))
	assert.Len(t, SavingsGoals.Values(&models.SavingsGoal{}), len(SavingsGoals.Columns))
}
