package session

import (
	"net/http"

	"talentlink/infras/otel"
	"talentlink/internal/domains/session/service"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"
	"talentlink/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Get("/upcoming", handler.GetUpcomingSessions)
		routerGroup.Get("/past", handler.GetPastSessions)
		routerGroup.Post("/{id}/join", handler.JoinSession)
		routerGroup.Post("/{id}/cancel", handler.CancelSession)
		routerGroup.Post("/{id}/complete", handler.CompleteSession)
	})
}

// GetUpcomingSessions retrieves the current user's upcoming sessions.
// @Summary Get upcoming sessions
// @Description Retrieve the scheduled sessions of the current user that have not started yet.
// @Tags Session
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSessionsResponse] "List of upcoming sessions"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/upcoming [get]
// @Security BearerAuth
func (handler *Handler) GetUpcomingSessions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcomingSessions")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sessions, err := handler.service.GetUpcoming(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming sessions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Upcoming sessions retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, sessions)
}

// GetPastSessions retrieves the current user's past sessions.
// @Summary Get past sessions
// @Description Retrieve the sessions of the current user that have started or are no longer scheduled.
// @Tags Session
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSessionsResponse] "List of past sessions"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/past [get]
// @Security BearerAuth
func (handler *Handler) GetPastSessions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPastSessions")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sessions, err := handler.service.GetPast(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get past sessions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Past sessions retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, sessions)
}

// JoinSession returns the meeting handoff payload for a session.
// @Summary Join a session
// @Description Retrieve the meeting handoff payload for a scheduled session the current user participates in.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.HandoffResponse] "Meeting handoff payload"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/join [post]
// @Security BearerAuth
func (handler *Handler) JoinSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".JoinSession")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	handoff, err := handler.service.Join(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to join session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session joined successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, handoff)
}

// CancelSession cancels a scheduled session.
// @Summary Cancel a session
// @Description Cancel a scheduled session the current user participates in. Canceling twice is a no-op.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message "Session canceled successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelSession")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session canceled successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Session canceled successfully")
}

// CompleteSession marks a scheduled session as completed.
// @Summary Complete a session
// @Description Mark a scheduled session the current user participates in as completed.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message "Session completed successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteSession")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Complete(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session completed successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Session completed successfully")
}
