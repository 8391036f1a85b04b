package friendship

import (
	"net/http"

	"talentlink/infras/otel"
	"talentlink/internal/domains/friendship/model/dto"
	"talentlink/internal/domains/friendship/service"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"
	"talentlink/shared/validator"
	"talentlink/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Friendship
	otel    otel.Otel
}

func New(service service.Friendship, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/friends", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFriends)
		routerGroup.Delete("/{id}", handler.RemoveFriend)
		routerGroup.Post("/requests", handler.RequestFriendship)
		routerGroup.Get("/requests", handler.GetFriendRequests)
		routerGroup.Post("/requests/{id}/accept", handler.AcceptFriendship)
	})
}

// RequestFriendship sends a friend request to another user.
// @Summary Send a friend request
// @Description Send a friend request to the given user.
// @Tags Friendship
// @Accept json
// @Produce json
// @Param request body dto.RequestFriendshipRequest true "Friend Request"
// @Success 201 {object} response.Message "Friend request sent successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/friends/requests [post]
// @Security BearerAuth
func (handler *Handler) RequestFriendship(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestFriendship")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.RequestFriendshipRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Request(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send friend request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Friend request sent successfully by user " + userID)

	response.WithMessage(w, http.StatusCreated, "Friend request sent successfully")
}

// AcceptFriendship accepts a pending friend request.
// @Summary Accept a friend request
// @Description Accept a pending friend request addressed to the current user.
// @Tags Friendship
// @Accept json
// @Produce json
// @Param id path string true "Friendship ID"
// @Success 200 {object} response.Message "Friend request accepted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/friends/requests/{id}/accept [post]
// @Security BearerAuth
func (handler *Handler) AcceptFriendship(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptFriendship")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Accept(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept friend request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Friend request accepted successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Friend request accepted successfully")
}

// RemoveFriend removes an existing friendship.
// @Summary Remove a friend
// @Description Remove an existing friendship the current user participates in.
// @Tags Friendship
// @Accept json
// @Produce json
// @Param id path string true "Friendship ID"
// @Success 200 {object} response.Message "Friend removed successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/friends/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveFriend")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Remove(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove friend")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Friend removed successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Friend removed successfully")
}

// GetFriends retrieves the current user's friends.
// @Summary Get my friends
// @Description Retrieve all accepted friendships of the current user.
// @Tags Friendship
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFriendshipsResponse] "List of friends"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/friends [get]
// @Security BearerAuth
func (handler *Handler) GetFriends(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFriends")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	friends, err := handler.service.GetFriends(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get friends")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Friends retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, friends)
}

// GetFriendRequests retrieves pending friend requests addressed to the current user.
// @Summary Get pending friend requests
// @Description Retrieve pending friend requests addressed to the current user.
// @Tags Friendship
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFriendshipsResponse] "List of pending friend requests"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/friends/requests [get]
// @Security BearerAuth
func (handler *Handler) GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFriendRequests")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	requests, err := handler.service.GetRequests(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get friend requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Friend requests retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, requests)
}
