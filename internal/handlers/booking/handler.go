package booking

import (
	"net/http"

	"talentlink/infras/otel"
	"talentlink/internal/domains/booking/model/dto"
	"talentlink/internal/domains/booking/service"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"
	"talentlink/shared/validator"
	"talentlink/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDraft)
		routerGroup.Get("/", handler.GetMyRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
		routerGroup.Put("/{id}/slot", handler.SelectSlot)
		routerGroup.Post("/{id}/submit", handler.SubmitRequest)
		routerGroup.Post("/{id}/cancel", handler.CancelRequest)
	})
}

// CreateDraft opens a draft booking request against a provider.
// @Summary Create a draft booking request
// @Description Open a draft booking request against a provider. Requires an accepted friendship with the provider.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateDraftRequest true "Create Draft Request"
// @Success 201 {object} response.Data[dto.BookingRequestResponse] "Draft created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-requests [post]
// @Security BearerAuth
func (handler *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDraft")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.CreateDraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateDraft(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking draft created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// SelectSlot attaches a slot to a draft booking request.
// @Summary Select a slot
// @Description Attach an available slot to the draft. Selecting the already attached slot is a no-op.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking Request ID"
// @Param request body dto.SelectSlotRequest true "Select Slot Request"
// @Success 200 {object} response.Message "Slot selected successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-requests/{id}/slot [put]
// @Security BearerAuth
func (handler *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectSlot")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SelectSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SelectSlot(ctx, id, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slot selected successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Slot selected successfully")
}

// SubmitRequest submits a draft booking request to the provider.
// @Summary Submit a booking request
// @Description Submit the draft to the provider. The selected slot is reserved and an asynchronous resolution is scheduled.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking Request ID"
// @Success 200 {object} response.Message "Booking request submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-requests/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitRequest")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Submit(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking request submitted successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Booking request submitted successfully")
}

// CancelRequest withdraws a booking request.
// @Summary Cancel a booking request
// @Description Withdraw the booking request. Canceling a pending request disarms its resolution and releases the slot.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking Request ID"
// @Success 200 {object} response.Message "Booking request canceled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-requests/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelRequest")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking request canceled successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Booking request canceled successfully")
}

// GetRequestByID retrieves a booking request by its ID.
// @Summary Get a booking request by ID
// @Description Retrieve one of the current user's booking requests by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking Request ID"
// @Success 200 {object} response.Data[dto.BookingRequestResponse] "Booking request details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	request, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking request retrieved successfully")

	response.WithJSON(w, http.StatusOK, request)
}

// GetMyRequests retrieves all booking requests of the current user.
// @Summary Get my booking requests
// @Description Retrieve all booking requests of the current user with pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingRequestsResponse] "List of booking requests"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-requests [get]
// @Security BearerAuth
func (handler *Handler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyRequests")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	requests, err := handler.service.GetMine(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking requests retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, requests)
}
