package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model"
	"hotel/internal/domains/auth/model/dto"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/session"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*session.Session, error)
	Status(ctx context.Context) dto.SessionResponse
}

type serviceImpl struct {
	cfg          *config.Config
	cache        cache.Cache
	jwtService   jwt.JWT
	otel         otel.Otel
	passwordHash string
}

// New prefers APP_ADMIN_PASSWORD_HASH and otherwise hashes the plain configured password once.
func New(cfg *config.Config, cache cache.Cache, jwt jwt.JWT, otel otel.Otel) Auth {
	hash, err := password.FromConfig(cfg.App.Admin.Password, cfg.App.Admin.PasswordHash)
	if err != nil {
		log.Error().Err(err).Msg("unusable admin credential, admin login disabled")
	}

	return &serviceImpl{
		cfg:          cfg,
		cache:        cache,
		jwtService:   jwt,
		otel:         otel,
		passwordHash: hash,
	}
}

func (s *serviceImpl) sessionKey(id string) string {
	return shared.BuildCacheKey(s.cfg.App.Name, model.SessionKeyPrefix, id)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.App.Admin.Username)) == 1
	passwordErr := password.Verify(req.Password, s.passwordHash)

	if !usernameOK || passwordErr != nil {
		log.Warn().Str("username", req.Username).Msg("admin login rejected")

		return res, failure.InvalidCredentialsError
	}

	sess := session.Session{
		ID:        uuid.NewString(),
		IsAdmin:   true,
		Username:  req.Username,
		CreatedAt: timezone.Now(),
	}

	token, err := s.jwtService.GenerateSessionToken(sess.ID, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")

		return res, fmt.Errorf("failed to sign session token: %w", err)
	}

	if err = s.cache.Save(ctx, s.sessionKey(sess.ID), sess, s.cfg.App.Session.TTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	log.Info().Str("session_id", sess.ID).Msg("admin logged in")

	res.FromSessionToken(token)

	return res, nil
}

// Logout always succeeds; an unknown or invalid token has no session to clear.
func (s *serviceImpl) Logout(ctx context.Context, token string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Logout")
	defer scope.End()

	if token == constant.Empty {
		return nil
	}

	claims, err := s.jwtService.ValidateSessionToken(token)
	if err != nil {
		return nil
	}

	if err = s.cache.Delete(ctx, s.sessionKey(claims.SessionID)); err != nil {
		log.Warn().Err(err).Str("session_id", claims.SessionID).Msg("failed to delete session")
	}

	log.Info().Str("session_id", claims.SessionID).Msg("admin logged out")

	return nil
}

// Resolve maps a token to its live session. Any failure reads as Unauthorized.
func (s *serviceImpl) Resolve(ctx context.Context, token string) (*session.Session, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Resolve")
	defer scope.End()

	if token == constant.Empty {
		return nil, failure.AdminRequiredError
	}

	claims, err := s.jwtService.ValidateSessionToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")

		return nil, failure.Unauthorized(err.Error()) //nolint:wrapcheck
	}

	var sess session.Session

	if err = s.cache.Get(ctx, s.sessionKey(claims.SessionID), &sess); err != nil {
		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("session_id", claims.SessionID).Msg("failed to load session")
		}

		return nil, failure.Unauthorized("session expired") //nolint:wrapcheck
	}

	if !sess.IsAdmin {
		return nil, failure.AdminRequiredError
	}

	return &sess, nil
}

func (s *serviceImpl) Status(ctx context.Context) dto.SessionResponse {
	return dto.SessionResponse{IsAdmin: session.IsAdmin(ctx)}
}
