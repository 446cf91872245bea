// Package seed loads demo transactions into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/application/usecase/transaction"
	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// randomHistoryDays is how far back random transactions are dated.
const randomHistoryDays = 90

type demoTransaction struct {
	amount      int64
	txType      entity.TransactionType
	category    string
	description string
}

// demoTransactions are dated today so they show up in the current month.
var demoTransactions = []demoTransaction{
	{5000, entity.TransactionTypeIncome, "Salário", "Salário mensal"},
	{150, entity.TransactionTypeExpense, "Alimentação", "Supermercado"},
	{800, entity.TransactionTypeExpense, "Moradia", "Aluguel"},
	{200, entity.TransactionTypeExpense, "Transporte", "Combustível"},
}

// Seeder creates demo data through the create use case so every record passes validation.
type Seeder struct {
	createUseCase *transaction.CreateTransactionUseCase
	clock         adapter.Clock
	faker         *gofakeit.Faker
}

// NewSeeder creates a new Seeder instance.
func NewSeeder(createUseCase *transaction.CreateTransactionUseCase, clock adapter.Clock, faker *gofakeit.Faker) *Seeder {
	return &Seeder{
		createUseCase: createUseCase,
		clock:         clock,
		faker:         faker,
	}
}

// Run creates the demo transactions followed by randomCount random ones.
// It returns the number of transactions created.
func (s *Seeder) Run(ctx context.Context, randomCount int) (int, error) {
	today := s.clock.Now()
	created := 0

	for _, demo := range demoTransactions {
		if _, err := s.createUseCase.Execute(ctx, transaction.CreateTransactionInput{
			Amount:      decimal.NewFromInt(demo.amount),
			Type:        demo.txType,
			Category:    demo.category,
			Description: demo.description,
			Date:        today,
		}); err != nil {
			return created, fmt.Errorf("failed to seed %q: %w", demo.description, err)
		}
		created++
	}

	categories := entity.Categories()
	for i := 0; i < randomCount; i++ {
		category := categories[s.faker.Number(0, len(categories)-1)]
		input := transaction.CreateTransactionInput{
			Amount:      decimal.NewFromFloat(s.faker.Price(5, 3000)).Round(2),
			Type:        category.Type,
			Category:    category.Name,
			Description: s.faker.Company(),
			Date:        s.faker.DateRange(today.AddDate(0, 0, -randomHistoryDays), today).In(today.Location()),
		}
		if _, err := s.createUseCase.Execute(ctx, input); err != nil {
			return created, fmt.Errorf("failed to seed random transaction %d: %w", i, err)
		}
		created++
	}

	slog.Info("Demo data seeded", "count", created)
	return created, nil
}
