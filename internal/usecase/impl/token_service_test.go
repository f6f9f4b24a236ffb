package impl

import (
	"context"
	"testing"
	"time"

	"sagedo/config"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	mockRepo "sagedo/internal/mocks/repository"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTokenTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Tokens = config.TokensConfig{
		Welcome:    100,
		DailyLogin: 10,
		Referral:   50,
		Survey:     20,
	}

	return cfg
}

func newTokenService(txManager *mockRepo.MockTransactionManager, tokenRepo *mockRepo.MockTokenTransactionRepository) usecase.TokenUsecase {
	return NewTokenService(TokenServiceParams{
		TxManager: txManager,
		TokenRepo: tokenRepo,
		Config:    newTokenTestConfig(),
		Logger:    newDiscardLogger(),
	})
}

func TestTokenService_Earn_WelcomeBonus(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	user := &entity.User{
		ID:              uuid.New(),
		Email:           "ravi@example.com",
		HasWelcomeBonus: true,
		TokenBalance:    0,
	}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)

	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockTokenRepo.EXPECT().
		FindLastByType(ctx, user.ID, entity.TransactionWelcome).
		Return(nil, nil)
	mockTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.TokenTransaction")).
		Return(nil)
	mockUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, 100, updated.TokenBalance)
		}).
		Return(nil)

	tx, err := service.Earn(ctx, usecase.EarnTokensInput{
		UserID: user.ID,
		Type:   entity.TransactionWelcome,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionWelcome, tx.Type)
	assert.Equal(t, 100, tx.Amount)
	assert.Equal(t, "Welcome bonus", tx.Description)
	assert.Equal(t, user.ID, tx.UserID)
}

func TestTokenService_Earn_WelcomeWithoutFlag(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), HasWelcomeBonus: false}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	tx, err := service.Earn(ctx, usecase.EarnTokensInput{
		UserID: user.ID,
		Type:   entity.TransactionWelcome,
	})
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.True(t, errors.Is(err, domainerrors.ErrWelcomeNotEligible))
}

func TestTokenService_Earn_WelcomeAlreadyClaimed(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), HasWelcomeBonus: true}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockTokenRepo.EXPECT().
		FindLastByType(ctx, user.ID, entity.TransactionWelcome).
		Return(&entity.TokenTransaction{ID: uuid.New(), Type: entity.TransactionWelcome}, nil)

	_, err := service.Earn(ctx, usecase.EarnTokensInput{
		UserID: user.ID,
		Type:   entity.TransactionWelcome,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWelcomeNotEligible))
}

func TestTokenService_Earn_DailyLoginClaimedToday(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockTokenRepo.EXPECT().
		FindLastByType(ctx, user.ID, entity.TransactionDailyLogin).
		Return(&entity.TokenTransaction{
			ID:        uuid.New(),
			Type:      entity.TransactionDailyLogin,
			CreatedAt: time.Now(),
		}, nil)

	_, err := service.Earn(ctx, usecase.EarnTokensInput{
		UserID: user.ID,
		Type:   entity.TransactionDailyLogin,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyClaimedToday))
}

func TestTokenService_Earn_DailyLoginNextDay(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), TokenBalance: 40}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockTokenRepo.EXPECT().
		FindLastByType(ctx, user.ID, entity.TransactionDailyLogin).
		Return(&entity.TokenTransaction{
			ID:        uuid.New(),
			Type:      entity.TransactionDailyLogin,
			CreatedAt: time.Now().AddDate(0, 0, -1),
		}, nil)
	mockTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.TokenTransaction")).
		Return(nil)
	mockUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, 50, updated.TokenBalance)
		}).
		Return(nil)

	tx, err := service.Earn(ctx, usecase.EarnTokensInput{
		UserID: user.ID,
		Type:   entity.TransactionDailyLogin,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, tx.Amount)
	assert.Equal(t, "Daily login reward", tx.Description)
}

func TestTokenService_Earn_SelfReferral(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ravi@gmail.com"}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	// The alias form normalizes to the claimant's own address.
	_, err := service.Earn(ctx, usecase.EarnTokensInput{
		UserID:        user.ID,
		Type:          entity.TransactionReferral,
		ReferralEmail: "R.a.v.i+promo@gmail.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfReferral))
}

func TestTokenService_Earn_DuplicateReferral(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ravi@example.com"}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockTokenRepo.EXPECT().
		ExistsByTypeAndDescription(ctx, user.ID, entity.TransactionReferral, "friend@example.com").
		Return(true, nil)

	_, err := service.Earn(ctx, usecase.EarnTokensInput{
		UserID:        user.ID,
		Type:          entity.TransactionReferral,
		ReferralEmail: "Friend@Example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReferral))
}

func TestTokenService_Earn_Referral(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ravi@example.com"}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockTokenRepo.EXPECT().
		ExistsByTypeAndDescription(ctx, user.ID, entity.TransactionReferral, "friend@example.com").
		Return(false, nil)
	mockTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.TokenTransaction")).
		Return(nil)
	mockUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	tx, err := service.Earn(ctx, usecase.EarnTokensInput{
		UserID:        user.ID,
		Type:          entity.TransactionReferral,
		ReferralEmail: "friend@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, tx.Amount)
	assert.Equal(t, "Referral bonus for friend@example.com", tx.Description)
}

func TestTokenService_Earn_InvalidType(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	_, err := service.Earn(context.Background(), usecase.EarnTokensInput{
		UserID: uuid.New(),
		Type:   entity.TransactionSpend,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransactionType))
}

func TestTokenService_Earn_AmountOverCap(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	_, err := service.Earn(context.Background(), usecase.EarnTokensInput{
		UserID: uuid.New(),
		Type:   entity.TransactionDailyLogin,
		Amount: 9999,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTokenService_Transactions(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	service := newTokenService(mockTxManager, mockTokenRepo)

	ctx := context.Background()
	userID := uuid.New()
	ledger := []*entity.TokenTransaction{
		{ID: uuid.New(), UserID: userID, Type: entity.TransactionDailyLogin, Amount: 10},
		{ID: uuid.New(), UserID: userID, Type: entity.TransactionWelcome, Amount: 100},
	}

	mockTokenRepo.EXPECT().FindByUserID(ctx, userID).Return(ledger, nil)

	txs, err := service.Transactions(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, ledger, txs)
}
