package postgres

import (
	"context"

	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// usedEmailRepository implements the repository.UsedEmailRepository interface.
type usedEmailRepository struct {
	db *gorm.DB
}

// NewUsedEmailRepository is the constructor for usedEmailRepository.
func NewUsedEmailRepository(db *gorm.DB) repository.UsedEmailRepository {
	return &usedEmailRepository{
		db: db,
	}
}

// Exists reports whether the normalized email has already claimed a bonus.
func (repo *usedEmailRepository) Exists(ctx context.Context, normalizedEmail string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UsedEmailModel{}).
		Where("normalized_email = ?", normalizedEmail).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check used email")
	}

	return count > 0, nil
}

// Create records a claimed email. A concurrent insert of the same
// normalized email is not an error.
func (repo *usedEmailRepository) Create(ctx context.Context, usedEmail *entity.UsedEmail) error {
	usedEmailM := fromUsedEmailDomain(usedEmail)

	if err := repo.db.WithContext(ctx).Create(usedEmailM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record used email")
	}

	usedEmail.CreatedAt = usedEmailM.CreatedAt

	return nil
}

func fromUsedEmailDomain(data *entity.UsedEmail) *model.UsedEmailModel {
	return &model.UsedEmailModel{
		ID:              data.ID,
		NormalizedEmail: data.NormalizedEmail,
		OriginalEmail:   data.OriginalEmail,
		CreatedAt:       data.CreatedAt,
	}
}
