package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	EntryID       *uuid.UUID      `gorm:"type:uuid;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Type          string          `gorm:"type:varchar(10);not null;index"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description   string          `gorm:"type:varchar(500)"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User  *UserModel  `gorm:"foreignKey:UserID;references:ID"`
	Entry *EntryModel `gorm:"foreignKey:EntryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		EntryID:       m.EntryID,
		Date:          m.Date,
		Type:          entity.TransactionType(m.Type),
		Category:      m.Category,
		Amount:        m.Amount,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		EntryID:       transaction.EntryID,
		Date:          transaction.Date,
		Type:          string(transaction.Type),
		Category:      transaction.Category,
		Amount:        transaction.Amount,
		Description:   transaction.Description,
		PaymentMethod: transaction.PaymentMethod,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
