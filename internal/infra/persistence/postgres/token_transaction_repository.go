package postgres

import (
	"context"
	"time"

	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenTransactionRepository implements the repository.TokenTransactionRepository interface.
type tokenTransactionRepository struct {
	db *gorm.DB
}

// NewTokenTransactionRepository is the constructor for tokenTransactionRepository.
func NewTokenTransactionRepository(db *gorm.DB) repository.TokenTransactionRepository {
	return &tokenTransactionRepository{
		db: db,
	}
}

// Create appends a ledger entry.
func (repo *tokenTransactionRepository) Create(ctx context.Context, tx *entity.TokenTransaction) error {
	txM := fromTokenTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append token transaction")
	}

	tx.CreatedAt = txM.CreatedAt

	return nil
}

// FindByUserID lists a user's ledger entries, newest first.
func (repo *tokenTransactionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.TokenTransaction, error) {
	var txModels []*model.TokenTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list token transactions")
	}

	txs := make([]*entity.TokenTransaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, toTokenTransactionDomain(txM))
	}

	return txs, nil
}

// FindLastByType returns the user's most recent entry of the given type, or
// nil when none exists.
func (repo *tokenTransactionRepository) FindLastByType(ctx context.Context, userID uuid.UUID, txType entity.TransactionType) (*entity.TokenTransaction, error) {
	var txM model.TokenTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(txType)).
		Order("created_at DESC").
		First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find last transaction by type")
	}

	return toTokenTransactionDomain(&txM), nil
}

// ExistsByTypeAndDescription reports whether the user already has an entry
// of the given type whose description contains the substring.
func (repo *tokenTransactionRepository) ExistsByTypeAndDescription(ctx context.Context, userID uuid.UUID, txType entity.TransactionType, substring string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TokenTransactionModel{}).
		Where("user_id = ? AND type = ? AND description LIKE ?", userID, string(txType), "%"+substring+"%").
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check transaction description")
	}

	return count > 0, nil
}

// DeleteByUserID removes a user's entire ledger. Account deletion only.
func (repo *tokenTransactionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.TokenTransactionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete token ledger")
	}

	return nil
}

// SumEarnedSince totals positive amounts created at or after the cutoff.
func (repo *tokenTransactionRepository) SumEarnedSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TokenTransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("amount > 0 AND created_at >= ?", since).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum earned tokens")
	}

	return total, nil
}

func toTokenTransactionDomain(data *model.TokenTransactionModel) *entity.TokenTransaction {
	return &entity.TokenTransaction{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        entity.TransactionType(data.Type),
		Amount:      data.Amount,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func fromTokenTransactionDomain(data *entity.TokenTransaction) *model.TokenTransactionModel {
	return &model.TokenTransactionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        string(data.Type),
		Amount:      data.Amount,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
