package schedule

import (
	"net/http"

	"talentlink/infras/otel"
	"talentlink/internal/domains/schedule/service"
	"talentlink/shared/constant"
	"talentlink/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/providers/{id}/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSchedule)
	})
}

// GetSchedule retrieves the booking window of a provider.
// @Summary Get a provider's schedule
// @Description Retrieve the provider's slots for the upcoming booking window, grouped per day. Missing days are generated on first access.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.Data[dto.GetScheduleResponse] "Provider schedule"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id}/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	schedule, err := handler.service.GetWindow(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}
