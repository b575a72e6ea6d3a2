package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel/mocks"
	"hotel/infras/storage"
	authService "hotel/internal/domains/auth/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	dashboardService "hotel/internal/domains/dashboard/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	dashboardHandler "hotel/internal/handlers/dashboard"
	roomHandler "hotel/internal/handlers/room"
	"hotel/shared/cache"
	thttp "hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
)

const cookieName = "hotel_session"

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.App.Name = "hotel"
	cfg.App.SeedRooms = true
	cfg.App.Admin.Username = "admin"
	cfg.App.Admin.Password = "hotel123"
	cfg.App.Session.CookieName = cookieName
	cfg.App.Session.TTLSeconds = 3600
	cfg.JWT.SessionSecret = "hotel-booking-secret"
	cfg.Kafka.Topics.Booking = "hotel.booking"
	cfg.Kafka.Topics.Room = "hotel.room"

	return cfg
}

func newServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	ot := mocks.NewOtel()
	blob := storage.NewFile(t.TempDir(), ot)
	store := cache.NewMemoryCache(100, ot)
	events := kafka.New(cfg)

	roomRepo := roomRepository.New(cfg, blob, ot)
	rooms := roomService.New(roomRepo, cfg, events, ot)
	bookings := bookingService.New(bookingRepository.New(cfg, blob, ot), roomRepo, cfg, events, ot)
	auth := authService.New(cfg, store, jwt.New(cfg), ot)
	dashboard := dashboardService.New(roomRepo, bookings, ot)

	require.NoError(t, rooms.Seed(context.Background()))

	r := router.New(router.DomainHandlers{
		Auth:      authHandler.New(auth, cfg, ot),
		Room:      roomHandler.New(rooms, ot),
		Booking:   bookingHandler.New(bookings, ot),
		Dashboard: dashboardHandler.New(dashboard, ot),
	}, middleware.NewAdminSessionMiddleware(auth, ot, cfg))

	return thttp.New(cfg, r, middleware.NewAppMiddleware(ot, cfg, cache.NewMemoryCache(100, ot)), ot)
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func do(t *testing.T, h http.Handler, method, path string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func login(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()

	rec, _ := do(t, h, http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "hotel123"})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cookieName {
			assert.True(t, cookie.HttpOnly)

			return cookie
		}
	}

	t.Fatal("session cookie not set")

	return nil
}

type room struct {
	ID       int    `json:"id"`
	Occupied bool   `json:"occupied"`
	Status   string `json:"status"`
}

func TestHealth(t *testing.T) {
	h := newServer(t, newConfig())

	rec, env := do(t, h, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", env.Message)
}

func TestBookingFlow(t *testing.T) {
	h := newServer(t, newConfig())

	rec, env := do(t, h, http.MethodGet, "/api/rooms?available=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var available []room
	require.NoError(t, json.Unmarshal(env.Data, &available))
	assert.Len(t, available, 4)

	rec, env = do(t, h, http.MethodPost, "/api/booking", map[string]any{
		"roomId":     "3",
		"checkIn":    "2024-01-01",
		"checkOut":   "2024-01-03",
		"guestName":  "Sari",
		"guestEmail": "sari@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)

	var booking struct {
		ID        string  `json:"id"`
		RoomType  string  `json:"roomType"`
		Nights    int     `json:"nights"`
		TotalCost float64 `json:"totalCost"`
		Status    string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, 2, booking.Nights)
	assert.InDelta(t, 400, booking.TotalCost, 0.0001)
	assert.Equal(t, "Deluxe", booking.RoomType)
	assert.Equal(t, "confirmed", booking.Status)

	_, env = do(t, h, http.MethodGet, "/api/rooms?available=true", nil)
	require.NoError(t, json.Unmarshal(env.Data, &available))
	assert.Len(t, available, 3)

	for _, r := range available {
		assert.NotEqual(t, 3, r.ID)
	}
}

func TestBookingFailures(t *testing.T) {
	h := newServer(t, newConfig())

	tests := []struct {
		name string
		body any
		code int
	}{
		{
			name: "unknown room",
			body: map[string]any{"roomId": 999, "checkIn": "2024-01-01", "checkOut": "2024-01-03"},
			code: http.StatusNotFound,
		},
		{
			name: "check out before check in",
			body: map[string]any{"roomId": 1, "checkIn": "2024-01-03", "checkOut": "2024-01-01"},
			code: http.StatusBadRequest,
		},
		{
			name: "malformed date",
			body: map[string]any{"roomId": 1, "checkIn": "next monday", "checkOut": "2024-01-01"},
			code: http.StatusBadRequest,
		},
		{
			name: "missing room",
			body: map[string]any{"checkIn": "2024-01-01", "checkOut": "2024-01-02"},
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodPost, "/api/booking", tt.body)

			assert.Equal(t, tt.code, rec.Code)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	h := newServer(t, newConfig())

	routes := []struct {
		method string
		path   string
		body   any
	}{
		{method: http.MethodGet, path: "/api/admin/rooms"},
		{method: http.MethodPut, path: "/api/admin/rooms/1", body: map[string]bool{"occupied": true}},
		{method: http.MethodPatch, path: "/api/admin/rooms/1/flags", body: map[string]any{"flag": "occupied", "value": true}},
		{method: http.MethodPost, path: "/api/admin/rooms/1/reset"},
		{method: http.MethodGet, path: "/api/bookings"},
		{method: http.MethodGet, path: "/api/admin/summary"},
	}

	forged := &http.Cookie{Name: cookieName, Value: "forged"}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec, _ := do(t, h, route.method, route.path, route.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec, _ = do(t, h, route.method, route.path, route.body, forged)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	_, env := do(t, h, http.MethodGet, "/api/rooms", nil)

	var rooms []room
	require.NoError(t, json.Unmarshal(env.Data, &rooms))

	for _, r := range rooms {
		assert.False(t, r.Occupied, "rejected requests must not touch the store")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := newServer(t, newConfig())

	rec, env := do(t, h, http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", env.Error)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAdminFlow(t *testing.T) {
	h := newServer(t, newConfig())
	session := login(t, h)

	_, env := do(t, h, http.MethodGet, "/api/admin/session", nil, session)
	assert.JSONEq(t, `{"isAdmin":true}`, string(env.Data))

	rec, env := do(t, h, http.MethodPatch, "/api/admin/rooms/2/flags", map[string]any{"flag": "needsCleaning", "value": true}, session)
	require.Equal(t, http.StatusOK, rec.Code, env.Error)

	var updated room
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "needs_cleaning", updated.Status)

	rec, env = do(t, h, http.MethodPut, "/api/admin/rooms/2", map[string]bool{"occupied": true}, session)
	require.Equal(t, http.StatusOK, rec.Code, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "occupied", updated.Status)

	rec, _ = do(t, h, http.MethodPatch, "/api/admin/rooms/2/flags", map[string]any{"flag": "broken", "value": true}, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/admin/rooms/42/reset", nil, session)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/admin/rooms/abc/reset", nil, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, h, http.MethodPost, "/api/admin/rooms/2/reset", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "available", updated.Status)

	rec, _ = do(t, h, http.MethodPost, "/api/booking", map[string]any{"roomId": 1, "checkIn": "2024-03-01", "checkOut": "2024-03-04"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/bookings?sort_dir=desc&limit=5", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)

	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &bookings))
	require.Len(t, bookings, 1)
	assert.InDelta(t, 3, bookings[0]["nights"], 0)

	rec, env = do(t, h, http.MethodGet, "/api/admin/summary", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		Rooms struct {
			Total     int `json:"total"`
			Occupied  int `json:"occupied"`
			Available int `json:"available"`
		} `json:"rooms"`
		RecentBookings []map[string]any `json:"recentBookings"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 4, summary.Rooms.Total)
	assert.Equal(t, 1, summary.Rooms.Occupied)
	assert.Equal(t, 3, summary.Rooms.Available)
	assert.Len(t, summary.RecentBookings, 1)

	rec, _ = do(t, h, http.MethodPost, "/api/admin/logout", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/bookings", nil, session)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, env = do(t, h, http.MethodGet, "/api/admin/session", nil, session)
	assert.JSONEq(t, `{"isAdmin":false}`, string(env.Data))
}

func TestBearerTokenIsAccepted(t *testing.T) {
	h := newServer(t, newConfig())
	session := login(t, h)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+session.Value)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	h := newServer(t, cfg)

	for range 2 {
		rec, _ := do(t, h, http.MethodGet, "/api/rooms", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec, env := do(t, h, http.MethodGet, "/api/rooms", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, "REQUEST LIMIT EXCEEDED", env.Message)
}

func requestFrom(t *testing.T, h http.Handler, remoteAddr string, header map[string]string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.RemoteAddr = remoteAddr

	for key, value := range header {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec.Code
}

func TestRateLimitCountersDoNotEvictSessions(t *testing.T) {
	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 10
	cfg.App.RateLimiter.WindowSeconds = 60

	h := newServer(t, cfg)
	cookie := login(t, h)

	for i := range 2000 {
		code := requestFrom(t, h, "192.0.2.1:1234", map[string]string{"User-Agent": fmt.Sprintf("agent-%d", i)})
		require.Equal(t, http.StatusOK, code)
	}

	rec, _ := do(t, h, http.MethodGet, "/api/bookings", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitIgnoresSourcePort(t *testing.T) {
	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	h := newServer(t, cfg)

	codes := make([]int, 0, 5)
	for port := 40000; port < 40005; port++ {
		codes = append(codes, requestFrom(t, h, fmt.Sprintf("10.0.0.1:%d", port), nil))
	}

	assert.Equal(t, []int{200, 200, 429, 429, 429}, codes)
}

func TestRateLimitProxyHeaders(t *testing.T) {
	t.Run("ignored unless the proxy is trusted", func(t *testing.T) {
		cfg := newConfig()
		cfg.App.RateLimiter.Enable = true
		cfg.App.RateLimiter.MaxRequests = 2
		cfg.App.RateLimiter.WindowSeconds = 60

		h := newServer(t, cfg)

		codes := make([]int, 0, 4)
		for i := range 4 {
			codes = append(codes, requestFrom(t, h, "10.0.0.1:40000", map[string]string{
				"X-Forwarded-For": fmt.Sprintf("203.0.113.%d", i+1),
			}))
		}

		assert.Equal(t, []int{200, 200, 429, 429}, codes)
	})

	t.Run("trusted proxy separates forwarded clients", func(t *testing.T) {
		cfg := newConfig()
		cfg.Server.TrustProxy = true
		cfg.App.RateLimiter.Enable = true
		cfg.App.RateLimiter.MaxRequests = 2
		cfg.App.RateLimiter.WindowSeconds = 60

		h := newServer(t, cfg)

		for range 2 {
			require.Equal(t, http.StatusOK, requestFrom(t, h, "10.0.0.1:40000", map[string]string{"X-Forwarded-For": "203.0.113.1"}))
		}

		assert.Equal(t, http.StatusTooManyRequests, requestFrom(t, h, "10.0.0.1:40001", map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"}))
		assert.Equal(t, http.StatusOK, requestFrom(t, h, "10.0.0.1:40002", map[string]string{"X-Forwarded-For": "203.0.113.2"}))
	})
}
