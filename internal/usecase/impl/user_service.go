// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"garage/config"
	deliverycontext "garage/internal/delivery/context"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/domain/service"
	"garage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail canonicalizes an address so lookups and the unique index
// agree on case and surrounding whitespace.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashToken derives the storage key for a raw refresh token. Only the hash is
// persisted; a database leak does not hand out usable sessions.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// Register creates a new account from an email and password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserDTO, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error()).WrapMessage("password rejected during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			srv.log(ctx).Warn("Registration for taken email", slog.String("email", email))

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))

	return toUserDTO(user), nil
}

// Login verifies credentials and opens a new session, issuing a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Login attempt", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so the response never reveals
			// whether the address is registered.
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("no account for email")
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch during login")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	if err := srv.storeSession(ctx, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store session during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("userID", user.ID))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserDTO(user),
	}, nil
}

// storeSession persists the new refresh token and evicts the oldest sessions
// once the user is over the configured cap. Runs in one transaction so the cap
// holds even under concurrent logins.
func (srv *userService) storeSession(ctx context.Context, userID int64, refreshToken string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if srv.maxActiveSessions > 0 {
			sessions, err := refreshRepo.FindByUserID(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to list sessions")
			}

			for len(sessions) >= srv.maxActiveSessions {
				oldest := sessions[0]
				if err := refreshRepo.DeleteByID(ctx, oldest.ID); err != nil {
					return errors.Wrap(err, "failed to evict oldest session")
				}

				srv.log(ctx).Debug("Evicted oldest session", slog.Int64("userID", userID), slog.Int64("sessionID", oldest.ID))
				sessions = sessions[1:]
			}
		}

		return refreshRepo.Create(ctx, &entity.RefreshToken{
			UserID:    userID,
			TokenHash: hashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		})
	})
}

// Refresh rotates a valid refresh token: the presented session is revoked and
// a fresh token pair is issued in its place.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	userID, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token failed verification", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token failed verification")
	}

	var output *usecase.TokenPairOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		session, err := refreshRepo.FindByTokenHash(ctx, hashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				// Verified signature but no stored session: already rotated,
				// logged out, or evicted.
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("session no longer active")
			}

			return errors.Wrap(err, "failed to look up session")
		}

		if session.UserID != userID || time.Now().After(session.ExpiresAt) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("session expired")
		}

		if err := refreshRepo.DeleteByID(ctx, session.ID); err != nil {
			return errors.Wrap(err, "failed to revoke rotated session")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for refresh")
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens for refresh")
		}

		if err := refreshRepo.Create(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}); err != nil {
			return errors.Wrap(err, "failed to store rotated session")
		}

		output = &usecase.TokenPairOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         toUserDTO(user),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Session rotated", slog.Int64("userID", userID))

	return output, nil
}

// Logout revokes the session matching the presented refresh token. Revoking a
// token that is already gone succeeds; logout is idempotent.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, hashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke session during logout")
	}

	return nil
}

func toUserDTO(user *entity.User) *usecase.UserDTO {
	return &usecase.UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
