package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"
	"hotel/shared/session"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.App.Admin.Username = "admin"
	cfg.App.Admin.Password = "hotel123"
	cfg.App.Session.TTLSeconds = 3600
	cfg.JWT.SessionSecret = "hotel-booking-secret"

	return cfg
}

func newService(t *testing.T) (service.Auth, cache.Cache) {
	t.Helper()

	cfg := newConfig()
	store := cache.NewMemoryCache(100, mocks.NewOtel())

	return service.New(cfg, store, jwt.New(cfg), mocks.NewOtel()), store
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.LoginRequest
		wantErr bool
	}{
		{name: "valid credentials", req: dto.LoginRequest{Username: "admin", Password: "hotel123"}},
		{name: "wrong password", req: dto.LoginRequest{Username: "admin", Password: "wrong"}, wantErr: true},
		{name: "wrong username", req: dto.LoginRequest{Username: "root", Password: "hotel123"}, wantErr: true},
		{name: "empty password", req: dto.LoginRequest{Username: "admin"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, http.StatusUnauthorized))
				assert.Equal(t, "invalid credentials", err.Error())

				return
			}

			require.NoError(t, err)
			assert.True(t, res.IsAdmin)
			assert.NotEmpty(t, res.Token)
			assert.Equal(t, int64(3600), res.ExpiresIn)
		})
	}
}

func TestAuthService_LoginWithConfiguredHash(t *testing.T) {
	cfg := newConfig()
	cfg.App.Admin.Password = ""
	// bcrypt hash of "password"
	cfg.App.Admin.PasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

	svc := service.New(cfg, cache.NewMemoryCache(10, mocks.NewOtel()), jwt.New(cfg), mocks.NewOtel())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "password"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "hotel123"})
	assert.True(t, failure.Is(err, http.StatusUnauthorized))
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "hotel123"})
	require.NoError(t, err)

	sess, err := svc.Resolve(ctx, res.Token)
	require.NoError(t, err)
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "admin", sess.Username)

	assert.True(t, svc.Status(session.WithSession(ctx, sess)).IsAdmin)
	assert.False(t, svc.Status(ctx).IsAdmin)

	require.NoError(t, svc.Logout(ctx, res.Token))

	_, err = svc.Resolve(ctx, res.Token)
	assert.True(t, failure.Is(err, http.StatusUnauthorized))

	assert.NoError(t, svc.Logout(ctx, res.Token), "logout is idempotent")
}

func TestAuthService_ResolveRejectsBadTokens(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "")
	assert.True(t, failure.Is(err, http.StatusUnauthorized))

	_, err = svc.Resolve(ctx, "not-a-token")
	assert.True(t, failure.Is(err, http.StatusUnauthorized))

	other := newConfig()
	other.JWT.SessionSecret = "another-secret"

	forged, err := jwt.New(other).GenerateSessionToken("s1", "admin")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, forged.Token)
	assert.True(t, failure.Is(err, http.StatusUnauthorized))

	valid, err := jwt.New(newConfig()).GenerateSessionToken("never-stored", "admin")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, valid.Token)
	assert.True(t, failure.Is(err, http.StatusUnauthorized), "a signed token without a session is not admin")
}

func TestAuthService_LoginFailsWhenSessionCannotBeStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cacheMocks.NewMockCache(ctrl)
	cfg := newConfig()
	svc := service.New(cfg, store, jwt.New(cfg), mocks.NewOtel())

	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(errors.New("connection refused"))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "hotel123"})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
