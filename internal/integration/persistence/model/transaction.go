// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Date is kept as YYYY-MM-DD text so range filters compare lexically on every dialect.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Description string          `gorm:"type:varchar(255);not null;default:''"`
	Date        string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	date, _ := entity.ParseDate(m.Date)

	return &entity.Transaction{
		ID:          m.ID,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Category:    m.Category,
		Description: m.Description,
		Date:        date,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		Description: transaction.Description,
		Date:        transaction.Date.Format(entity.DateLayout),
		CreatedAt:   transaction.CreatedAt,
	}
}

// AllModels lists every model managed by AutoMigrate.
func AllModels() []any {
	return []any{&TransactionModel{}}
}
