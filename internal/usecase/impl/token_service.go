package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sagedo/config"
	deliverycontext "sagedo/internal/delivery/context"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	txManager repository.TransactionManager
	tokenRepo repository.TokenTransactionRepository
	rewards   config.TokensConfig
	logger    *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TokenRepo repository.TokenTransactionRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	return &tokenService{
		txManager: params.TxManager,
		tokenRepo: params.TokenRepo,
		rewards:   params.Config.Tokens,
		logger:    params.Logger,
	}
}

func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// rewardCap returns the configured amount for an earnable type. Zero means
// the type cannot be claimed through the earn endpoint.
func (srv *tokenService) rewardCap(txType entity.TransactionType) int {
	switch txType {
	case entity.TransactionWelcome:
		return srv.rewards.Welcome
	case entity.TransactionDailyLogin:
		return srv.rewards.DailyLogin
	case entity.TransactionReferral:
		return srv.rewards.Referral
	case entity.TransactionSurvey:
		return srv.rewards.Survey
	default:
		return 0
	}
}

// Earn validates the claim, appends the ledger entry and bumps the balance
// inside one database transaction. Eligibility violations reject the claim,
// they never silently skip it.
func (srv *tokenService) Earn(ctx context.Context, input usecase.EarnTokensInput) (*entity.TokenTransaction, error) {
	limit := srv.rewardCap(input.Type)
	if limit <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidTransactionType, "type is not earnable")
	}

	amount := input.Amount
	if amount == 0 {
		amount = limit
	}
	if amount < 0 || amount > limit {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "amount out of range for %s", input.Type)
	}

	var created *entity.TokenTransaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewTokenTransactionRepository()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "claimant not found")
			}

			return errors.Wrap(findErr, "failed to load claimant")
		}

		description, checkErr := srv.checkEligibility(ctx, tokenRepo, user, input)
		if checkErr != nil {
			return checkErr
		}

		tx := &entity.TokenTransaction{
			ID:          uuid.New(),
			UserID:      user.ID,
			Type:        input.Type,
			Amount:      amount,
			Description: description,
		}
		if createErr := tokenRepo.Create(ctx, tx); createErr != nil {
			return errors.Wrap(createErr, "failed to append ledger entry")
		}

		user.TokenBalance += amount
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update token balance")
		}

		created = tx

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token claim rejected",
			slog.Any("userID", input.UserID),
			slog.String("type", string(input.Type)),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute token earn transaction")
	}

	srv.log(ctx).Info("Tokens earned",
		slog.Any("userID", input.UserID),
		slog.String("type", string(input.Type)),
		slog.Int("amount", amount))

	return created, nil
}

// checkEligibility enforces the per-type claim rules and returns the ledger
// description to record.
func (srv *tokenService) checkEligibility(
	ctx context.Context,
	tokenRepo repository.TokenTransactionRepository,
	user *entity.User,
	input usecase.EarnTokensInput,
) (string, error) {
	switch input.Type {
	case entity.TransactionWelcome:
		return srv.checkWelcome(ctx, tokenRepo, user)
	case entity.TransactionDailyLogin:
		return srv.checkDaily(ctx, tokenRepo, user, entity.TransactionDailyLogin, "Daily login reward")
	case entity.TransactionSurvey:
		return srv.checkDaily(ctx, tokenRepo, user, entity.TransactionSurvey, "Survey reward")
	case entity.TransactionReferral:
		return srv.checkReferral(ctx, tokenRepo, user, input.ReferralEmail)
	default:
		return "", errors.Wrap(domainerrors.ErrInvalidTransactionType, "type is not earnable")
	}
}

// checkWelcome accepts the welcome claim exactly once per user. The
// normalized-email gate already ran at registration, so only the flag and
// the ledger are consulted here.
func (srv *tokenService) checkWelcome(ctx context.Context, tokenRepo repository.TokenTransactionRepository, user *entity.User) (string, error) {
	if !user.HasWelcomeBonus {
		return "", errors.Wrap(domainerrors.ErrWelcomeNotEligible, "no welcome bonus on this account")
	}

	prior, err := tokenRepo.FindLastByType(ctx, user.ID, entity.TransactionWelcome)
	if err != nil {
		return "", errors.Wrap(err, "failed to check prior welcome claim")
	}
	if prior != nil {
		return "", errors.Wrap(domainerrors.ErrWelcomeNotEligible, "welcome bonus already claimed")
	}

	return "Welcome bonus", nil
}

func (srv *tokenService) checkDaily(
	ctx context.Context,
	tokenRepo repository.TokenTransactionRepository,
	user *entity.User,
	txType entity.TransactionType,
	description string,
) (string, error) {
	last, err := tokenRepo.FindLastByType(ctx, user.ID, txType)
	if err != nil {
		return "", errors.Wrapf(err, "failed to check last %s claim", txType)
	}
	if last != nil && sameLocalDay(last.CreatedAt, time.Now()) {
		return "", errors.Wrapf(domainerrors.ErrAlreadyClaimedToday, "%s already claimed today", txType)
	}

	return description, nil
}

func (srv *tokenService) checkReferral(
	ctx context.Context,
	tokenRepo repository.TokenTransactionRepository,
	user *entity.User,
	referralEmail string,
) (string, error) {
	referralEmail = strings.TrimSpace(strings.ToLower(referralEmail))
	if referralEmail == "" || !strings.Contains(referralEmail, "@") {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "referral email is required")
	}
	if entity.NormalizeEmail(referralEmail) == entity.NormalizeEmail(user.Email) {
		return "", errors.Wrap(domainerrors.ErrSelfReferral, "cannot refer own email")
	}

	claimed, err := tokenRepo.ExistsByTypeAndDescription(ctx, user.ID, entity.TransactionReferral, referralEmail)
	if err != nil {
		return "", errors.Wrap(err, "failed to check prior referral claims")
	}
	if claimed {
		return "", errors.Wrap(domainerrors.ErrDuplicateReferral, "referral already claimed for this email")
	}

	// The referred email lives in the description; duplicate detection
	// depends on this format.
	return fmt.Sprintf("Referral bonus for %s", referralEmail), nil
}

// Transactions lists the user's ledger, newest first.
func (srv *tokenService) Transactions(ctx context.Context, userID uuid.UUID) ([]*entity.TokenTransaction, error) {
	txs, err := srv.tokenRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list token transactions")
	}

	return txs, nil
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()

	return ay == by && am == bm && ad == bd
}
