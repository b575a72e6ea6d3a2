package auth

import (
	"net/http"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/shared/constant"
	"hotel/shared/session"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Auth, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/admin/login", handler.Login)
	r.Post("/admin/logout", handler.Logout)
	r.Get("/admin/session", handler.Session)
}

func (handler *Handler) cookie(value string, expiresAt time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     handler.cfg.App.Session.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.cfg.App.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Login starts an admin session.
// @Summary Admin login
// @Description Verify the admin credentials, set the session cookie and return the session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Session token"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(http.MaxBytesReader(w, r.Body, constant.RequestMaxBodyBytes), &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.cookie(res.Token, res.ExpiresAt, int(res.ExpiresIn)))

	response.WithJSON(w, http.StatusOK, res)
}

// Logout ends the admin session. It succeeds without a session too.
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logged out"
// @Router /api/admin/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	token := session.TokenFromRequest(r, handler.cfg.App.Session.CookieName)

	if err := handler.service.Logout(ctx, token); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to logout")
	}

	http.SetCookie(w, handler.cookie(constant.Empty, time.Unix(0, 0), -1))

	response.WithMessage(w, http.StatusOK, "Logged out")
}

// Session reports whether the caller holds an admin session.
// @Summary Admin session status
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.SessionResponse] "Session status"
// @Router /api/admin/session [get]
func (handler *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Session")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Status(ctx))
}
