// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"sagedo/config"
	deliverycontext "sagedo/internal/delivery/context"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/domain/service"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resetTokenLifetime = time.Hour

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	googleAuthService service.OAuthAuthService
	mailer            service.Mailer
	adminEmail        string
	adminPasswordHash string
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	GoogleAuthService service.OAuthAuthService `optional:"true"`
	Mailer            service.Mailer           `optional:"true"`
	Config            *config.Config
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		googleAuthService: params.GoogleAuthService,
		mailer:            params.Mailer,
		adminEmail:        params.Config.Admin.Email,
		adminPasswordHash: params.Config.Admin.PasswordHash,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and decides welcome-bonus eligibility on the
// normalized form of the email, so alias tricks never earn a second bonus.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	normalized := entity.NormalizeEmail(input.Email)

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		usedEmailRepo := repoFactory.NewUsedEmailRepository()

		existing, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check for existing account")
		}
		if existing != nil {
			return errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
		}

		bonusClaimed, existsErr := usedEmailRepo.Exists(ctx, normalized)
		if existsErr != nil {
			return errors.Wrap(existsErr, "failed to check used email ledger")
		}

		newUser := &entity.User{
			ID:                uuid.New(),
			Email:             input.Email,
			PasswordHash:      hashedPassword,
			Name:              input.Name,
			HasGoldenTicket:   !bonusClaimed,
			HasWelcomeBonus:   !bonusClaimed,
			VerificationToken: uuid.New().String(),
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}

		if !bonusClaimed {
			usedEmail := &entity.UsedEmail{
				ID:              uuid.New(),
				NormalizedEmail: normalized,
				OriginalEmail:   input.Email,
			}
			if markErr := usedEmailRepo.Create(ctx, usedEmail); markErr != nil {
				return errors.Wrap(markErr, "failed to record bonus email")
			}
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	sendMailAsync(srv.log(ctx), srv.mailer,
		verificationMail(registeredUser.Email, registeredUser.Name, registeredUser.VerificationToken))

	srv.log(ctx).Debug("Registration completed",
		slog.Any("userID", registeredUser.ID),
		slog.Bool("goldenTicket", registeredUser.HasGoldenTicket))

	return registeredUser, nil
}

// Login authenticates by email and password. The configured back-office pair
// short-circuits to a synthetic admin identity that exists in no table.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	if srv.isAdminLogin(input.Email, input.Password) {
		srv.log(ctx).Info("Admin login")

		return adminIdentity(input.Email), nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt check runs outside any transaction (CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if err := srv.recordLogin(ctx, user); err != nil {
		// Telemetry only, the login still succeeds.
		srv.log(ctx).Warn("Failed to record login telemetry", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return user, nil
}

func (srv *userService) isAdminLogin(email, password string) bool {
	if srv.adminEmail == "" || srv.adminPasswordHash == "" {
		return false
	}

	return email == srv.adminEmail && srv.hasher.Check(password, srv.adminPasswordHash)
}

// adminIdentity builds the synthetic back-office user. It deliberately has
// the zero UUID: there is no row behind it.
func adminIdentity(email string) *entity.User {
	return &entity.User{
		ID:      uuid.Nil,
		Email:   email,
		Name:    "Admin",
		IsAdmin: true,
	}
}

func (srv *userService) recordLogin(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.LoginCount++
	user.LastLoginAt = &now

	return srv.userRepo.Update(ctx, user)
}

// GoogleLogin verifies a Google ID token and signs the holder in, creating
// the account on first sight. OAuth accounts pass the same normalized-email
// bonus gate as password registration.
func (srv *userService) GoogleLogin(ctx context.Context, input usecase.GoogleLoginInput) (*entity.User, error) {
	if srv.googleAuthService == nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthUnavailable, "google sign-in disabled")
	}

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "failed to verify Google ID token")
	}

	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		usedEmailRepo := repoFactory.NewUsedEmailRepository()

		user, findErr := srv.findGoogleUser(ctx, userRepo, oauthUser)
		if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
			return findErr
		}

		if user == nil {
			user, findErr = srv.createGoogleUser(ctx, userRepo, usedEmailRepo, oauthUser)
			if findErr != nil {
				return findErr
			}
		} else if user.GoogleID == "" {
			// Link the Google account to the existing email account.
			user.GoogleID = oauthUser.ID
			if updateErr := userRepo.Update(ctx, user); updateErr != nil {
				return errors.Wrap(updateErr, "failed to link google account")
			}
		}

		loggedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Google login failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google login transaction")
	}

	if err := srv.recordLogin(ctx, loggedInUser); err != nil {
		srv.log(ctx).Warn("Failed to record login telemetry", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))
	}

	return loggedInUser, nil
}

func (srv *userService) findGoogleUser(ctx context.Context, userRepo repository.UserRepository, oauthUser *service.OAuthUser) (*entity.User, error) {
	user, err := userRepo.FindByGoogleID(ctx, oauthUser.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	return userRepo.FindByEmail(ctx, oauthUser.Email)
}

func (srv *userService) createGoogleUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	usedEmailRepo repository.UsedEmailRepository,
	oauthUser *service.OAuthUser,
) (*entity.User, error) {
	srv.log(ctx).Info("Creating account from Google sign-in", slog.String("email", oauthUser.Email))

	normalized := entity.NormalizeEmail(oauthUser.Email)
	bonusClaimed, err := usedEmailRepo.Exists(ctx, normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check used email ledger")
	}

	newUser := &entity.User{
		ID:              uuid.New(),
		Email:           oauthUser.Email,
		Name:            oauthUser.Name,
		GoogleID:        oauthUser.ID,
		IsEmailVerified: oauthUser.EmailVerified,
		HasGoldenTicket: !bonusClaimed,
		HasWelcomeBonus: !bonusClaimed,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create google user")
	}

	if !bonusClaimed {
		usedEmail := &entity.UsedEmail{
			ID:              uuid.New(),
			NormalizedEmail: normalized,
			OriginalEmail:   oauthUser.Email,
		}
		if err := usedEmailRepo.Create(ctx, usedEmail); err != nil {
			return nil, errors.Wrap(err, "failed to record bonus email")
		}
	}

	return newUser, nil
}

// VerifyEmail flips the verified flag for the account holding this token.
func (srv *userService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return errors.Wrap(domainerrors.ErrVerificationTokenInvalid, "empty verification token")
	}

	user, err := srv.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrVerificationTokenInvalid, "unknown verification token")
		}

		return errors.Wrap(err, "failed to find user by verification token")
	}

	user.IsEmailVerified = true
	user.VerificationToken = ""
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to mark email verified")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

	return nil
}

// RequestPasswordReset issues a reset token and emails it. The response is
// the same whether or not the email belongs to an account, so the endpoint
// cannot be used to probe for registered emails.
func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	expiry := time.Now().Add(resetTokenLifetime)
	user.ResetToken = uuid.New().String()
	user.ResetTokenExpiry = &expiry
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	sendMailAsync(srv.log(ctx), srv.mailer, passwordResetMail(user.Email, user.Name, user.ResetToken))

	srv.log(ctx).Info("Password reset requested", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword sets a new password for the holder of a live reset token.
func (srv *userService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if input.Token == "" {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "empty reset token")
	}

	user, err := srv.userRepo.FindByResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "unknown reset token")
		}

		return errors.Wrap(err, "failed to find user by reset token")
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token expired")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// GetUser fetches the persisted user.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// DeleteAccount removes the user and their token ledger in one transaction.
// Orders stay for bookkeeping and used_emails stays so the welcome bonus
// cannot be farmed by deleting and re-registering.
func (srv *userService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", id))

	var deletedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewTokenTransactionRepository()

		user, findErr := userRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
			}

			return errors.Wrap(findErr, "failed to find user for deletion")
		}

		if delErr := tokenRepo.DeleteByUserID(ctx, id); delErr != nil {
			return errors.Wrap(delErr, "failed to delete token ledger")
		}

		if delErr := userRepo.Delete(ctx, id); delErr != nil {
			return errors.Wrap(delErr, "failed to delete user")
		}

		deletedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	sendMailAsync(srv.log(ctx), srv.mailer, goodbyeMail(deletedUser.Email, deletedUser.Name))

	srv.log(ctx).Info("Account deleted", slog.Any("userID", id))

	return nil
}
