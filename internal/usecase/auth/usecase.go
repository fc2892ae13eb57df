package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/validator"
	"github.com/leandroquiroga/interview-platform-ai/internal/repository"
)

// AuthUsecase manages accounts and resolves session cookies to users
type AuthUsecase struct {
	userRepo  repository.UserRepository
	sessions  SessionCodec
	validator *validator.Validator
	// users is nil when caching is disabled
	users     *cache.Cache
	params    Argon2Params
	now       func() time.Time
}

type Option func(*AuthUsecase)

func WithArgon2Params(p Argon2Params) Option {
	return func(uc *AuthUsecase) {
		uc.params = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(uc *AuthUsecase) {
		uc.now = now
	}
}

func NewUsecase(
	userRepo repository.UserRepository,
	sessions SessionCodec,
	validator *validator.Validator,
	userCacheTTL time.Duration,
	opts ...Option,
) *AuthUsecase {
	uc := &AuthUsecase{
		userRepo:  userRepo,
		sessions:  sessions,
		validator: validator,
		params:    DefaultArgon2Params(),
		now:       time.Now,
	}
	// Cached users carry their revocation stamp, so a sign-out on another
	// replica is seen here only after userCacheTTL. 0 reads it on every request.
	if userCacheTTL > 0 {
		uc.users = cache.New(userCacheTTL, 2*userCacheTTL)
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *AuthUsecase) SignUp(ctx context.Context, req *entity.SignUpRequest) (*entity.User, error) {
	if err := uc.validator.ValidateSignUp(req); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password, uc.params)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := uc.userRepo.Create(ctx, &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    uc.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, entity.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	ctxzap.Info(ctx, "user signed up", zap.String("user_id", user.ID))

	return user, nil
}

// SignIn checks the credentials and issues a session.
// Unknown emails and wrong passwords both yield entity.ErrInvalidCredentials.
func (uc *AuthUsecase) SignIn(ctx context.Context, req *entity.SignInRequest) (*entity.SignInResult, error) {
	if err := uc.validator.ValidateSignIn(req); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	ok, err := VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		ctxzap.Error(ctx, "stored password hash is unreadable", zap.String("user_id", user.ID), zap.Error(err))
		return nil, entity.ErrInvalidCredentials
	}
	if !ok {
		return nil, entity.ErrInvalidCredentials
	}

	token, claims, err := uc.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	uc.cacheUser(user)

	ctxzap.Info(ctx, "user signed in", zap.String("user_id", user.ID))

	return &entity.SignInResult{
		User:      user,
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// SignOut revokes every session of userID issued before the current millisecond
func (uc *AuthUsecase) SignOut(ctx context.Context, userID string) error {
	if err := uc.userRepo.RevokeSessions(ctx, userID, uc.now().UTC().Truncate(time.Millisecond)); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.ErrUnauthenticated
		}
		return fmt.Errorf("revoke sessions: %w", err)
	}

	if uc.users != nil {
		uc.users.Delete(userID)
	}

	ctxzap.Info(ctx, "user signed out", zap.String("user_id", userID))

	return nil
}

// Authenticate resolves a session cookie value to its user
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, entity.ErrUnauthenticated
	}

	claims, err := uc.sessions.Verify(token)
	if err != nil {
		ctxzap.Debug(ctx, "session rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidSession, err)
	}

	user, err := uc.user(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if user.SessionsRevokedAt != nil && !claims.IssuedNotBefore(*user.SessionsRevokedAt) {
		return nil, fmt.Errorf("%w: session revoked", entity.ErrInvalidSession)
	}

	return user, nil
}

func (uc *AuthUsecase) user(ctx context.Context, id string) (*entity.User, error) {
	if uc.users != nil {
		if cached, ok := uc.users.Get(id); ok {
			return cached.(*entity.User), nil
		}
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown user", entity.ErrInvalidSession)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	uc.cacheUser(user)

	return user, nil
}

func (uc *AuthUsecase) cacheUser(u *entity.User) {
	if uc.users != nil {
		uc.users.SetDefault(u.ID, u)
	}
}
