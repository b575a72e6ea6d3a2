// Package session carries the caller's admin session through the request context.
package session

import (
	"context"
	"hotel/infras/jwt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"net/http"
	"time"
)

type Session struct {
	ID        string    `json:"id"`
	IsAdmin   bool      `json:"isAdmin"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func WithSession(ctx context.Context, sess *Session) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeySessionID, sess.ID)

	return context.WithValue(ctx, constant.ContextKeySession, sess)
}

func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(constant.ContextKeySession).(*Session)

	return sess, ok && sess != nil
}

func IsAdmin(ctx context.Context) bool {
	sess, ok := FromContext(ctx)

	return ok && sess.IsAdmin
}

// RequireAdmin fails with Unauthorized unless the context holds an admin session.
func RequireAdmin(ctx context.Context) error {
	if !IsAdmin(ctx) {
		return failure.AdminRequiredError
	}

	return nil
}

// TokenFromRequest reads the session token from the named cookie, falling back to a Bearer
// Authorization header. It returns an empty string when neither is present.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != constant.Empty {
		return cookie.Value
	}

	token, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		return constant.Empty
	}

	return token
}
