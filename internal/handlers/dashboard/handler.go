package dashboard

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/dashboard/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/admin/summary", handler.GetSummary)
}

// GetSummary returns room counters and the latest bookings.
// @Summary Dashboard summary
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Summary"
// @Failure 401 {object} response.Error
// @Router /api/admin/summary [get]
// @Security SessionAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}
