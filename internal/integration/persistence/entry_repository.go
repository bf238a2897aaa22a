package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daily-ledger/backend/internal/application/adapter"
	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
	"github.com/daily-ledger/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateWithTransactions creates an entry and its linked transactions in a
// single database transaction.
func (r *entryRepository) CreateWithTransactions(ctx context.Context, entry *entity.Entry, transactions []*entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.EntryFromEntity(entry)).Error; err != nil {
			return err
		}
		for _, transaction := range transactions {
			if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByIDAndUser retrieves an entry by ID scoped to the owning user.
func (r *entryRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByFilter retrieves entries matching the filter, newest date first.
func (r *entryRepository) FindByFilter(ctx context.Context, filter adapter.EntryFilter, pagination adapter.EntryPagination) (*entity.EntryListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.EntryModel{}).Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var entryModels []model.EntryModel
	offset := (pagination.Page - 1) * pagination.PageSize
	err := query.
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.Entry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, entryModels[i].ToEntity())
	}

	return &entity.EntryListResult{
		Entries:  entries,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an entry and its linked transactions. The transactions are
// deleted explicitly so the cascade does not depend on database-level
// foreign key enforcement.
func (r *entryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.EntryModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrEntryNotFound
		}
		return tx.Where("entry_id = ?", id).Delete(&model.TransactionModel{}).Error
	})
}
