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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByGoogleID retrieves a user linked to the given Google account.
func (repo *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	return repo.findOne(ctx, "google_id = ? AND google_id <> ''", googleID)
}

// FindByVerificationToken retrieves a user by their pending verification token.
func (repo *userRepository) FindByVerificationToken(ctx context.Context, token string) (*entity.User, error) {
	return repo.findOne(ctx, "verification_token = ? AND verification_token <> ''", token)
}

// FindByResetToken retrieves a user by their password reset token.
func (repo *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	return repo.findOne(ctx, "reset_token = ? AND reset_token <> ''", token)
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user row. Orders and the used-email ledger are untouched.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Count returns the number of user rows.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// CountCreatedSince returns the number of users created at or after the cutoff.
func (repo *userRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent users")
	}

	return count, nil
}

// SumLoginCount totals the login counters across all users.
func (repo *userRepository) SumLoginCount(ctx context.Context) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("COALESCE(SUM(login_count), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum login counts")
	}

	return total, nil
}

// FindRecent lists the most recently created users.
func (repo *userRepository) FindRecent(ctx context.Context, limit int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Name:              data.Name,
		GoogleID:          data.GoogleID,
		IsAdmin:           data.IsAdmin,
		IsGuest:           data.IsGuest,
		TokenBalance:      data.TokenBalance,
		HasGoldenTicket:   data.HasGoldenTicket,
		HasWelcomeBonus:   data.HasWelcomeBonus,
		IsEmailVerified:   data.IsEmailVerified,
		VerificationToken: data.VerificationToken,
		ResetToken:        data.ResetToken,
		ResetTokenExpiry:  data.ResetTokenExpiry,
		LoginCount:        data.LoginCount,
		LastLoginAt:       data.LastLoginAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Name:              data.Name,
		GoogleID:          data.GoogleID,
		IsAdmin:           data.IsAdmin,
		IsGuest:           data.IsGuest,
		TokenBalance:      data.TokenBalance,
		HasGoldenTicket:   data.HasGoldenTicket,
		HasWelcomeBonus:   data.HasWelcomeBonus,
		IsEmailVerified:   data.IsEmailVerified,
		VerificationToken: data.VerificationToken,
		ResetToken:        data.ResetToken,
		ResetTokenExpiry:  data.ResetTokenExpiry,
		LoginCount:        data.LoginCount,
		LastLoginAt:       data.LastLoginAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
