package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"nights": 2})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"nights":2}}`, rec.Body.String())
}

func TestWithJSONEmptyList(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []string{})

	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "not found",
			err:  failure.NotFound("room not found"),
			code: http.StatusNotFound,
			body: `{"error":"room not found"}`,
		},
		{
			name: "wrapped validation failure",
			err:  fmt.Errorf("create booking: %w", failure.BadRequestFromString("checkOut must be after checkIn")),
			code: http.StatusBadRequest,
			body: `{"error":"create booking: checkOut must be after checkIn"}`,
		},
		{
			name: "admin required",
			err:  failure.AdminRequiredError,
			code: http.StatusUnauthorized,
			body: `{"error":"admin session required"}`,
		},
		{
			name: "storage unavailable",
			err:  failure.StorageUnavailable(errors.New("disk full")),
			code: http.StatusServiceUnavailable,
			body: `{"error":"storage unavailable: disk full"}`,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
			body: `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec, 30)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}
