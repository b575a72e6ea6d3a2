package middleware

import (
	"net/http"

	"hotel/config"
	"hotel/infras/otel"
	authService "hotel/internal/domains/auth/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/session"
	"hotel/transport/http/response"
)

// AdminSession resolves the caller's session and gates admin routes.
type AdminSession interface {
	// Session attaches a valid session to the request context and lets every request through.
	Session(next http.Handler) http.Handler
	// RequireAdmin rejects requests without an admin session before the handler runs.
	RequireAdmin(next http.Handler) http.Handler
}

type adminSessionImpl struct {
	auth authService.Auth
	otel otel.Otel
	cfg  *config.Config
}

func NewAdminSessionMiddleware(auth authService.Auth, otel otel.Otel, cfg *config.Config) AdminSession {
	return &adminSessionImpl{
		auth: auth,
		otel: otel,
		cfg:  cfg,
	}
}

func (m *adminSessionImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := session.TokenFromRequest(r, m.cfg.App.Session.CookieName)
		if token == constant.Empty {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "session.middleware")

		sess, err := m.auth.Resolve(ctx, token)
		if err != nil {
			scope.SetAttribute("session.valid", false)
			scope.End()

			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttributes(map[string]any{
			"session.valid": true,
			"session.id":    sess.ID,
		})
		scope.End()

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

func (m *adminSessionImpl) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.IsAdmin(r.Context()) {
			_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "admin.middleware")
			scope.TraceError(failure.AdminRequiredError)
			scope.End()

			response.WithError(w, failure.AdminRequiredError)

			return
		}

		next.ServeHTTP(w, r)
	})
}
