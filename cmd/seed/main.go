// Command seed fills the database with generated sample data: a handful of
// users, lookup tables, and a year of incomes and expenses per user.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fullnessapp/fullness-server/internal/auth"
	"github.com/fullnessapp/fullness-server/internal/config"
	"github.com/fullnessapp/fullness-server/internal/database"
	"github.com/fullnessapp/fullness-server/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env not found, using process environment")
	}
	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	userIDs := seedUsers(ctx, pool, 10)
	sourceIDs := seedIncomeSources(ctx, pool)
	typeIDs := seedExpenseTypes(ctx, pool)
	seedIncomes(ctx, pool, userIDs, sourceIDs, 200)
	seedExpenses(ctx, pool, userIDs, typeIDs, 200)
	seedSavingsGoals(ctx, pool, userIDs, 20)

	logger.Info().Int("users", len(userIDs)).Msg("seeding complete")
}

func seedUsers(ctx context.Context, q database.Querier, n int) []int {
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		user, err := database.RegisterUser(ctx, q, database.NewUser{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%d.%s", time.Now().UnixNano(), gofakeit.Email()),
			Password: gofakeit.Password(true, true, true, false, false, 12),
			RoleID:   auth.RoleMember,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("seeding users failed")
		}
		ids = append(ids, user.ID)
	}
	return ids
}

func seedIncomeSources(ctx context.Context, q database.Querier) []int {
	names := []string{"Salary", "Freelance", "Dividends", "Rental", "Other"}
	ids := make([]int, 0, len(names))
	for _, name := range names {
		source, err := database.IncomeSources.Create(ctx, q, &models.IncomeSource{Name: name})
		if err != nil {
			logger.Fatal().Err(err).Msg("seeding income sources failed")
		}
		ids = append(ids, source.ID)
	}
	return ids
}

func seedExpenseTypes(ctx context.Context, q database.Querier) []int {
	names := []string{"Rent", "Groceries", "Transport", "Utilities", "Leisure"}
	ids := make([]int, 0, len(names))
	for _, name := range names {
		t, err := database.ExpenseTypes.Create(ctx, q, &models.ExpenseType{Name: name})
		if err != nil {
			logger.Fatal().Err(err).Msg("seeding expense types failed")
		}
		ids = append(ids, t.ID)
	}
	return ids
}

func seedIncomes(ctx context.Context, q database.Querier, userIDs, sourceIDs []int, n int) {
	for i := 0; i < n; i++ {
		income := &models.Income{
			Title:    gofakeit.JobTitle(),
			Date:     randomDate(365),
			Amount:   randomAmount(100, 5000),
			UserID:   pick(userIDs),
			SourceID: pick(sourceIDs),
		}
		if _, err := database.Incomes.Create(ctx, q, income); err != nil {
			logger.Fatal().Err(err).Msg("seeding incomes failed")
		}
	}
}

func seedExpenses(ctx context.Context, q database.Querier, userIDs, typeIDs []int, n int) {
	for i := 0; i < n; i++ {
		expense := &models.Expense{
			Title:  gofakeit.ProductName(),
			Date:   randomDate(365),
			Amount: randomAmount(5, 800),
			UserID: pick(userIDs),
			TypeID: pick(typeIDs),
		}
		if _, err := database.Expenses.Create(ctx, q, expense); err != nil {
			logger.Fatal().Err(err).Msg("seeding expenses failed")
		}
	}
}

func seedSavingsGoals(ctx context.Context, q database.Querier, userIDs []int, n int) {
	for i := 0; i < n; i++ {
		goal := &models.SavingsGoal{
			Name:         gofakeit.Hobby(),
			TargetAmount: randomAmount(500, 20000),
			TargetDate:   models.Date{Time: time.Now().AddDate(0, rand.Intn(24)+1, 0)},
			Description:  gofakeit.Sentence(6),
			UserID:       pick(userIDs),
		}
		if _, err := database.SavingsGoals.Create(ctx, q, goal); err != nil {
			logger.Fatal().Err(err).Msg("seeding savings goals failed")
		}
	}
}

// randomDate returns a date up to maxDaysAgo days in the past.
func randomDate(maxDaysAgo int) models.Date {
	return models.Date{Time: time.Now().AddDate(0, 0, -rand.Intn(maxDaysAgo))}
}

func randomAmount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(min, max))
}

func pick(ids []int) int {
	return ids[rand.Intn(len(ids))]
}
