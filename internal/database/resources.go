package database

import "github.com/fullnessapp/fullness-server/models"

// Repository instances for the table-backed resources. Users are handled
// separately in users.go because their reads must exclude the password hash
// and their writes hash it.

var IncomeSources = Resource[models.IncomeSource]{
	Table:   "income_sources",
	Columns: []string{"name"},
	Values: func(s *models.IncomeSource) []any {
		return []any{s.Name}
	},
}

var ExpenseTypes = Resource[models.ExpenseType]{
	Table:   "expense_types",
	Columns: []string{"name"},
	Values: func(t *models.ExpenseType) []any {
		return []any{t.Name}
	},
}

var Incomes = Resource[models.Income]{
	Table:   "incomes",
	Columns: []string{"title", "date", "amount", "user_id", "income_source_id"},
	Values: func(i *models.Income) []any {
		return []any{i.Title, i.Date, i.Amount, i.UserID, i.SourceID}
	},
}

var Expenses = Resource[models.Expense]{
	Table:   "expenses",
	Columns: []string{"title", "date", "amount", "user_id", "expense_type_id"},
	Values: func(e *models.Expense) []any {
		return []any{e.Title, e.Date, e.Amount, e.UserID, e.TypeID}
	},
}

var SavingsGoals = Resource[models.SavingsGoal]{
	Table:   "savings_goals",
	Columns: []string{"name", "target_amount", "target_date", "description", "user_id"},
	Values: func(g *models.SavingsGoal) []any {
		return []any{g.Name, g.TargetAmount, g.TargetDate, g.Description, g.UserID}
	},
}
