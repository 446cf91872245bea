// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// List retrieves transactions matching the filters, most recent first.
func (r *transactionRepository) List(ctx context.Context, filters entity.TransactionFilters) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})

	if filters.StartDate != nil {
		query = query.Where("date >= ?", filters.StartDate.Format(entity.DateLayout))
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", filters.EndDate.Format(entity.DateLayout))
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", string(*filters.Type))
	}

	var transactionModels []model.TransactionModel
	result := query.
		Order("date DESC, created_at DESC, id ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if !transaction.HasConsistentSign() {
		return domainerror.ErrInconsistentSign
	}

	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// Update merges patch into the stored transaction inside a database transaction.
func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, patch entity.TransactionPatch) (*entity.Transaction, error) {
	var updated *entity.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel model.TransactionModel
		if err := tx.Where("id = ?", id).First(&transactionModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrTransactionNotFound
			}
			return err
		}

		transaction := transactionModel.ToEntity()
		transaction.Apply(patch)
		if !transaction.HasConsistentSign() {
			return domainerror.ErrInconsistentSign
		}

		if err := tx.Save(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		updated = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete permanently removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
