package wishlist

import (
	"net/http"

	"talentlink/infras/otel"
	"talentlink/internal/domains/wishlist/model/dto"
	"talentlink/internal/domains/wishlist/service"
	"talentlink/shared/constant"
	"talentlink/shared/failure"
	"talentlink/shared/validator"
	"talentlink/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wishlist
	otel    otel.Otel
}

func New(service service.Wishlist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wishlist", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWishlist)
		routerGroup.Post("/", handler.AddToWishlist)
		routerGroup.Delete("/{id}", handler.RemoveFromWishlist)
	})
}

// AddToWishlist puts a provider on the current user's wishlist.
// @Summary Add a provider to the wishlist
// @Description Add the given provider to the current user's wishlist. Adding twice is a no-op.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param request body dto.AddWishlistRequest true "Add Wishlist Request"
// @Success 201 {object} response.Message "Provider added to wishlist"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishlist [post]
// @Security BearerAuth
func (handler *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddToWishlist")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.AddWishlistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Add(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add to wishlist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider added to wishlist by user " + userID)

	response.WithMessage(w, http.StatusCreated, "Provider added to wishlist")
}

// RemoveFromWishlist takes a provider off the current user's wishlist.
// @Summary Remove a provider from the wishlist
// @Description Remove the given provider from the current user's wishlist. Removing an unlisted provider is a no-op.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.Message "Provider removed from wishlist"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishlist/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveFromWishlist")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Remove(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove from wishlist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider removed from wishlist by user " + userID)

	response.WithMessage(w, http.StatusOK, "Provider removed from wishlist")
}

// GetWishlist retrieves the current user's wishlist.
// @Summary Get my wishlist
// @Description Retrieve the current user's wishlisted providers.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetWishlistResponse] "Wishlist"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishlist [get]
// @Security BearerAuth
func (handler *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWishlist")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	wishlist, err := handler.service.GetMine(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wishlist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wishlist retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, wishlist)
}
