// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// GetSummaryOutput represents the output of getting the dashboard summary.
type GetSummaryOutput struct {
	Summary     *entity.DashboardSummary
	PeriodLabel string
}

// GetSummaryUseCase computes the dashboard summary from the full transaction collection.
// The summary is recomputed on every call.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute retrieves every transaction and summarizes it for the current month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.List(ctx, entity.TransactionFilters{})
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load transactions for summary",
			fmt.Errorf("%w: %w", domainerror.ErrSummaryUnavailable, err),
		)
	}

	now := uc.clock.Now()

	return &GetSummaryOutput{
		Summary:     Summarize(transactions, now),
		PeriodLabel: GeneratePeriodLabel(now),
	}, nil
}
