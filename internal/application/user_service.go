package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
	repo "github.com/inventorylabs/product-catalog-api/internal/domain/repository"
	"github.com/inventorylabs/product-catalog-api/pkg/apperrors"
	"github.com/inventorylabs/product-catalog-api/pkg/helpers"
)

// UserService authenticates users and manages their sessions.
type UserService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	Logger     *logrus.Logger
	SessionTTL time.Duration
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, sessionTTL time.Duration) *UserService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &UserService{Repo: r, JWT: jwt, Redis: rdb, Logger: logger, SessionTTL: sessionTTL}
}

// Authenticate checks the credentials against the stored bcrypt hash.
// A nil SafeUser with a nil error means "no match": unknown email and wrong
// password are deliberately indistinguishable so callers cannot probe which
// emails are registered. Only store failures produce a non-nil error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.SafeUser, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, nil
	}
	return u.Safe(), nil
}

// IssueTokens generates an access/refresh token pair and records the session
// in Redis under a fresh session id.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.SafeUser) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		return TokenPair{}, err
	}

	if s.Redis != nil {
		name := ""
		if u.Name != nil {
			name = *u.Name
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       name,
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, s.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Login authenticates and, on a match, issues a session. The SafeUser is nil
// when the credentials do not match.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.SafeUser, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil || u == nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh validates the refresh token against the active session and rotates
// both the session id and the token pair.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, apperrors.Validation("invalid refresh token")
	}
	u, err := s.Repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, err
	}
	if u == nil {
		return TokenPair{}, apperrors.Validation("invalid refresh token")
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, apperrors.Validation("invalid refresh token")
		}
	}
	return s.IssueTokens(ctx, u.Safe())
}

// Logout drops the server-side session.
func (s *UserService) Logout(ctx context.Context, userID string) {
	if s.Redis == nil || userID == "" {
		return
	}
	if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("session delete failed")
	}
}

// GetProfile returns the stored user for an authenticated id.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return u, nil
}
