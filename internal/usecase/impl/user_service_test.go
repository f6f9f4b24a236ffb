package impl

import (
	"context"
	"testing"
	"time"

	"sagedo/config"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	domainservice "sagedo/internal/domain/service"
	mockRepo "sagedo/internal/mocks/repository"
	mockSvc "sagedo/internal/mocks/service"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	factory   *mockRepo.MockRepositoryFactory
	hasher    *mockSvc.MockPasswordHasher
	oauth     *mockSvc.MockOAuthAuthService
}

func newUserTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin = config.AdminConfig{
		Email:        "admin@sagedo.in",
		PasswordHash: "$admin-bcrypt-hash",
	}

	return cfg
}

func newUserService(t *testing.T, withOAuth bool) (usecase.UserUsecase, *userServiceMocks) {
	mocks := &userServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}

	params := UserServiceParams{
		TxManager: mocks.txManager,
		UserRepo:  mocks.userRepo,
		Hasher:    mocks.hasher,
		Config:    newUserTestConfig(),
		Logger:    newDiscardLogger(),
	}
	if withOAuth {
		mocks.oauth = mockSvc.NewMockOAuthAuthService(t)
		params.GoogleAuthService = mocks.oauth
	}

	return NewUserService(params), mocks
}

func googleUser(id, email, name string, verified bool) *domainservice.OAuthUser {
	return &domainservice.OAuthUser{
		ID:            id,
		Email:         email,
		Name:          name,
		EmailVerified: verified,
	}
}

func TestUserService_Register_FreshEmail(t *testing.T) {
	service, mocks := newUserService(t, false)
	mockUsedEmailRepo := mockRepo.NewMockUsedEmailRepository(t)

	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	expectTransaction(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewUsedEmailRepository().Return(mockUsedEmailRepo)

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ravi@example.com").
		Return(nil, repository.ErrUserNotFound)
	mockUsedEmailRepo.EXPECT().Exists(ctx, "ravi@example.com").Return(false, nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	mockUsedEmailRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UsedEmail")).
		Run(func(_ context.Context, usedEmail *entity.UsedEmail) {
			assert.Equal(t, "ravi@example.com", usedEmail.NormalizedEmail)
		}).
		Return(nil)

	user, err := service.Register(ctx, usecase.RegisterInput{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.True(t, user.HasGoldenTicket)
	assert.True(t, user.HasWelcomeBonus)
	assert.NotEmpty(t, user.VerificationToken)
	assert.False(t, user.IsEmailVerified)
}

func TestUserService_Register_AliasOfUsedEmail(t *testing.T) {
	service, mocks := newUserService(t, false)
	mockUsedEmailRepo := mockRepo.NewMockUsedEmailRepository(t)

	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	expectTransaction(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewUsedEmailRepository().Return(mockUsedEmailRepo)

	// "r.avi+new@gmail.com" collapses to "ravi@gmail.com", which has already
	// claimed the bonus.
	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "r.avi+new@gmail.com").
		Return(nil, repository.ErrUserNotFound)
	mockUsedEmailRepo.EXPECT().Exists(ctx, "ravi@gmail.com").Return(true, nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := service.Register(ctx, usecase.RegisterInput{
		Name:     "Ravi",
		Email:    "r.avi+new@gmail.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.False(t, user.HasGoldenTicket)
	assert.False(t, user.HasWelcomeBonus)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, mocks := newUserService(t, false)
	mockUsedEmailRepo := mockRepo.NewMockUsedEmailRepository(t)

	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	expectTransaction(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewUsedEmailRepository().Return(mockUsedEmailRepo)

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ravi@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "ravi@example.com"}, nil)

	_, err := service.Register(ctx, usecase.RegisterInput{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestUserService_Login_Admin(t *testing.T) {
	service, mocks := newUserService(t, false)

	mocks.hasher.EXPECT().Check("super-secret", "$admin-bcrypt-hash").Return(true)

	user, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    "admin@sagedo.in",
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, user.ID)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "admin@sagedo.in", user.Email)
}

func TestUserService_Login_Success(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ravi@example.com",
		PasswordHash: "hashed-password",
		LoginCount:   3,
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ravi@example.com").Return(user, nil)
	mocks.hasher.EXPECT().Check("password123", "hashed-password").Return(true)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, 4, updated.LoginCount)
			assert.NotNil(t, updated.LastLoginAt)
		}).
		Return(nil)

	got, err := service.Login(ctx, usecase.LoginInput{
		Email:    "ravi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ravi@example.com", PasswordHash: "hashed-password"}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ravi@example.com").Return(user, nil)
	mocks.hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{
		Email:    "ravi@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GoogleLogin_Disabled(t *testing.T) {
	service, _ := newUserService(t, false)

	_, err := service.GoogleLogin(context.Background(), usecase.GoogleLoginInput{IDToken: "token"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthUnavailable))
}

func TestUserService_GoogleLogin_NewAccount(t *testing.T) {
	service, mocks := newUserService(t, true)
	mockUsedEmailRepo := mockRepo.NewMockUsedEmailRepository(t)

	ctx := context.Background()

	mocks.oauth.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(googleUser("google-sub-1", "ravi@gmail.com", "Ravi", true), nil)

	expectTransaction(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewUsedEmailRepository().Return(mockUsedEmailRepo)

	mocks.userRepo.EXPECT().
		FindByGoogleID(ctx, "google-sub-1").
		Return(nil, repository.ErrUserNotFound)
	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ravi@gmail.com").
		Return(nil, repository.ErrUserNotFound)
	mockUsedEmailRepo.EXPECT().Exists(ctx, "ravi@gmail.com").Return(false, nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	mockUsedEmailRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UsedEmail")).
		Return(nil)
	// Login telemetry runs after the transaction.
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", user.GoogleID)
	assert.True(t, user.IsEmailVerified)
	assert.True(t, user.HasGoldenTicket)
	assert.Equal(t, 1, user.LoginCount)
}

func TestUserService_GoogleLogin_LinksExistingAccount(t *testing.T) {
	service, mocks := newUserService(t, true)
	mockUsedEmailRepo := mockRepo.NewMockUsedEmailRepository(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "ravi@gmail.com"}

	mocks.oauth.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(googleUser("google-sub-1", "ravi@gmail.com", "Ravi", true), nil)

	expectTransaction(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewUsedEmailRepository().Return(mockUsedEmailRepo)

	mocks.userRepo.EXPECT().
		FindByGoogleID(ctx, "google-sub-1").
		Return(nil, repository.ErrUserNotFound)
	mocks.userRepo.EXPECT().FindByEmail(ctx, "ravi@gmail.com").Return(existing, nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil).
		Times(2) // account link, then login telemetry

	user, err := service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "google-sub-1", user.GoogleID)
}

func TestUserService_GoogleLogin_InvalidToken(t *testing.T) {
	service, mocks := newUserService(t, true)

	ctx := context.Background()

	mocks.oauth.EXPECT().
		VerifyIDToken(ctx, "garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "garbage"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_VerifyEmail(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), VerificationToken: "token-abc"}

	mocks.userRepo.EXPECT().FindByVerificationToken(ctx, "token-abc").Return(user, nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.True(t, updated.IsEmailVerified)
			assert.Empty(t, updated.VerificationToken)
		}).
		Return(nil)

	err := service.VerifyEmail(ctx, "token-abc")
	require.NoError(t, err)
}

func TestUserService_VerifyEmail_UnknownToken(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByVerificationToken(ctx, "stale").
		Return(nil, repository.ErrUserNotFound)

	err := service.VerifyEmail(ctx, "stale")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationTokenInvalid))
}

func TestUserService_RequestPasswordReset_UnknownEmailSucceeds(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := service.RequestPasswordReset(ctx, "nobody@example.com")
	require.NoError(t, err)
}

func TestUserService_RequestPasswordReset_IssuesToken(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ravi@example.com"}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ravi@example.com").Return(user, nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.NotEmpty(t, updated.ResetToken)
			require.NotNil(t, updated.ResetTokenExpiry)
			assert.WithinDuration(t, time.Now().Add(time.Hour), *updated.ResetTokenExpiry, time.Minute)
		}).
		Return(nil)

	err := service.RequestPasswordReset(ctx, "ravi@example.com")
	require.NoError(t, err)
}

func TestUserService_ResetPassword(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()
	expiry := time.Now().Add(30 * time.Minute)
	user := &entity.User{
		ID:               uuid.New(),
		PasswordHash:     "old-hash",
		ResetToken:       "reset-abc",
		ResetTokenExpiry: &expiry,
	}

	mocks.userRepo.EXPECT().FindByResetToken(ctx, "reset-abc").Return(user, nil)
	mocks.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "new-hash", updated.PasswordHash)
			assert.Empty(t, updated.ResetToken)
			assert.Nil(t, updated.ResetTokenExpiry)
		}).
		Return(nil)

	err := service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Token:    "reset-abc",
		Password: "new-password",
	})
	require.NoError(t, err)
}

func TestUserService_ResetPassword_ExpiredToken(t *testing.T) {
	service, mocks := newUserService(t, false)

	ctx := context.Background()
	expiry := time.Now().Add(-time.Minute)
	user := &entity.User{ID: uuid.New(), ResetToken: "reset-abc", ResetTokenExpiry: &expiry}

	mocks.userRepo.EXPECT().FindByResetToken(ctx, "reset-abc").Return(user, nil)

	err := service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Token:    "reset-abc",
		Password: "new-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestUserService_DeleteAccount(t *testing.T) {
	service, mocks := newUserService(t, false)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ravi@example.com", Name: "Ravi"}

	expectTransaction(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockTokenRepo.EXPECT().DeleteByUserID(ctx, user.ID).Return(nil)
	mocks.userRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

	err := service.DeleteAccount(ctx, user.ID)
	require.NoError(t, err)
}

func TestUserService_DeleteAccount_NotFound(t *testing.T) {
	service, mocks := newUserService(t, false)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTransaction(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewTokenTransactionRepository().Return(mockTokenRepo)
	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := service.DeleteAccount(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
