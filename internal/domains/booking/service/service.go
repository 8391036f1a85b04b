package service

import (
	"context"
	"fmt"

	"talentlink/config"
	"talentlink/infras/otel"
	"talentlink/internal/domains/booking/model"
	"talentlink/internal/domains/booking/model/dto"
	"talentlink/internal/domains/booking/repository"
	friendshipModel "talentlink/internal/domains/friendship/model"
	friendshipRepo "talentlink/internal/domains/friendship/repository"
	notificationModel "talentlink/internal/domains/notification/model"
	notificationDto "talentlink/internal/domains/notification/model/dto"
	notificationService "talentlink/internal/domains/notification/service"
	providerModel "talentlink/internal/domains/provider/model"
	providerRepo "talentlink/internal/domains/provider/repository"
	scheduleModel "talentlink/internal/domains/schedule/model"
	scheduleRepo "talentlink/internal/domains/schedule/repository"
	sessionModel "talentlink/internal/domains/session/model"
	sessionRepo "talentlink/internal/domains/session/repository"
	"talentlink/shared"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"
	gModel "talentlink/shared/model"
	"talentlink/shared/outcome"
	"talentlink/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	CreateDraft(ctx context.Context, req dto.CreateDraftRequest, userID string) (dto.BookingRequestResponse, error)
	SelectSlot(ctx context.Context, id string, req dto.SelectSlotRequest, userID string) error
	Submit(ctx context.Context, id, userID string) error
	Cancel(ctx context.Context, id, userID string) error
	Get(ctx context.Context, id, userID string) (dto.BookingRequestResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetBookingRequestsResponse, error)
	Shutdown()
}

type serviceImpl struct {
	repo           repository.BookingRequest
	slotRepo       scheduleRepo.Slot
	providerRepo   providerRepo.Provider
	friendshipRepo friendshipRepo.Friendship
	sessionRepo    sessionRepo.Session
	notifier       notificationService.Notifier
	cfg            *config.Config
	otel           otel.Otel
	approval       outcome.Source
	resolver       *Resolver
}

func New(
	repo repository.BookingRequest,
	slotRepo scheduleRepo.Slot,
	providerRepo providerRepo.Provider,
	friendshipRepo friendshipRepo.Friendship,
	sessionRepo sessionRepo.Session,
	notifier notificationService.Notifier,
	cfg *config.Config,
	otel otel.Otel,
	approval outcome.Source,
	resolver *Resolver,
) Booking {
	return &serviceImpl{
		repo:           repo,
		slotRepo:       slotRepo,
		providerRepo:   providerRepo,
		friendshipRepo: friendshipRepo,
		sessionRepo:    sessionRepo,
		notifier:       notifier,
		cfg:            cfg,
		otel:           otel,
		approval:       approval,
		resolver:       resolver,
	}
}

// CreateDraft opens a draft booking request against a provider. Drafts are
// limited to friends of the provider, and a mentee can hold at most one open
// request per provider at a time.
func (s *serviceImpl) CreateDraft(ctx context.Context, req dto.CreateDraftRequest, userID string) (res dto.BookingRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.providerRepo.Get(ctx, shared.FilterByID(req.ProviderID, providerModel.FieldID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider")

		return res, fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.ID == constant.Empty {
		return res, failure.NotFound("provider not found") //nolint:wrapcheck
	}

	if provider.UserID == userID {
		return res, failure.BadRequestFromString("cannot book a session with yourself") //nolint:wrapcheck
	}

	friends, err := s.friendshipRepo.Exist(ctx, friendshipModel.AcceptedPairFilter(userID, provider.UserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check friendship")

		return res, fmt.Errorf("failed to check friendship: %w", err)
	}

	if !friends {
		return res, failure.Forbidden("booking is limited to the provider's friends") //nolint:wrapcheck
	}

	open, err := s.repo.Exist(ctx, openRequestFilter(userID, req.ProviderID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check open requests")

		return res, fmt.Errorf("failed to check open requests: %w", err)
	}

	if open {
		return res, failure.Conflict("an open booking request for this provider already exists") //nolint:wrapcheck
	}

	draft := req.ToModel(userID, userID)
	if err = s.repo.Insert(ctx, draft); err != nil {
		log.Error().Err(err).Msg("failed to create booking draft")

		return res, fmt.Errorf("failed to create booking draft: %w", err)
	}

	res.FromModel(draft)

	return res, nil
}

func openRequestFilter(menteeID, providerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldMenteeID,
				Operator: gDto.FilterOperatorEq,
				Value:    menteeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    providerID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusNotSent, model.StatusPending},
				Table:    model.TableName,
			},
		},
	}
}

// SelectSlot attaches a slot to a draft. Selecting the slot that is already
// attached is a no-op, as is any selection while the request is pending
// resolution. Slots are not reserved until Submit.
func (s *serviceImpl) SelectSlot(ctx context.Context, id string, req dto.SelectSlotRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if request.Status == model.StatusPending {
		return nil
	}

	if request.Status == model.StatusApproved || request.Status == model.StatusCanceled {
		return failure.Conflict(fmt.Sprintf("cannot change the slot of a %s request", request.Status)) //nolint:wrapcheck
	}

	if request.SlotID != nil && *request.SlotID == req.SlotID {
		return nil
	}

	slot, err := s.slotRepo.Get(ctx, shared.FilterByID(req.SlotID, scheduleModel.FieldID, scheduleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot")

		return fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return failure.NotFound("slot not found") //nolint:wrapcheck
	}

	if slot.ProviderID != request.ProviderID {
		return failure.BadRequestFromString("slot belongs to another provider") //nolint:wrapcheck
	}

	if !slot.Available {
		return failure.Conflict("slot is no longer available") //nolint:wrapcheck
	}

	if slot.StartAt(timezone.GetLocation()).Before(timezone.Now()) {
		return failure.BadRequestFromString("slot is in the past") //nolint:wrapcheck
	}

	status := model.StatusNotSent
	update := dto.UpdateBookingRequest{SlotID: &req.SlotID, Status: &status}

	if err = s.repo.Update(ctx, shared.TransformFields(update, userID), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to select slot")

		return fmt.Errorf("failed to select slot: %w", err)
	}

	return nil
}

// Submit sends the draft to the provider. The selected slot is reserved
// immediately and exactly one asynchronous resolution is scheduled.
// Submitting an already pending request is a no-op.
func (s *serviceImpl) Submit(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if request.Status == model.StatusPending {
		return nil
	}

	if request.Status == model.StatusApproved || request.Status == model.StatusCanceled {
		return failure.Conflict(fmt.Sprintf("cannot submit a %s request", request.Status)) //nolint:wrapcheck
	}

	if request.SlotID == nil {
		return failure.BadRequestFromString("select a slot before submitting") //nolint:wrapcheck
	}

	slot, err := s.slotRepo.Get(ctx, shared.FilterByID(*request.SlotID, scheduleModel.FieldID, scheduleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot")

		return fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty || !slot.Available {
		return failure.Conflict("slot is no longer available") //nolint:wrapcheck
	}

	if slot.StartAt(timezone.GetLocation()).Before(timezone.Now()) {
		return failure.BadRequestFromString("slot is in the past") //nolint:wrapcheck
	}

	if err = s.setSlotAvailability(ctx, slot.ID, false, userID); err != nil {
		return err
	}

	status := model.StatusPending
	update := dto.UpdateBookingRequest{Status: &status}

	if err = s.repo.Update(ctx, shared.TransformFields(update, userID), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to submit booking request")

		// The request never left not_sent, hand the reserved slot back.
		if releaseErr := s.setSlotAvailability(ctx, slot.ID, true, userID); releaseErr != nil {
			log.Error().Err(releaseErr).Str("slotID", slot.ID).Msg("failed to release slot after failed submit")
		}

		return fmt.Errorf("failed to submit booking request: %w", err)
	}

	s.notify(ctx, notificationDto.NotifyRequest{
		UserID:  request.MenteeID,
		Type:    notificationModel.TypeBookingSent,
		Title:   "Booking request sent",
		Message: "Your booking request was sent to the provider",
	})

	resolveCtx := context.WithoutCancel(ctx)
	s.resolver.Schedule(id, func() {
		s.resolve(resolveCtx, id)
	})

	return nil
}

// resolve runs when the resolution timer fires. The request is re-read
// first, a request that is no longer pending was canceled in the meantime
// and must not be touched.
func (s *serviceImpl) resolve(ctx context.Context, id string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resolve")
	defer scope.End()

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("requestID", id).Msg("failed to load request for resolution")

		return
	}

	if request.Status != model.StatusPending {
		log.Info().Str("requestID", id).Str("status", request.Status).Msg("skipping resolution, request is no longer pending")

		return
	}

	if s.approval.Next() {
		s.approve(ctx, request)

		return
	}

	s.reject(ctx, request)
}

func (s *serviceImpl) approve(ctx context.Context, request model.BookingRequest) {
	slot, err := s.slotRepo.Get(ctx, shared.FilterByID(*request.SlotID, scheduleModel.FieldID, scheduleModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("requestID", request.ID).Msg("failed to get slot for approval")

		return
	}

	provider, err := s.providerRepo.Get(ctx, shared.FilterByID(request.ProviderID, providerModel.FieldID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("requestID", request.ID).Msg("failed to get provider for approval")

		return
	}

	status := model.StatusApproved
	update := dto.UpdateBookingRequest{Status: &status}

	if err = s.repo.Update(ctx, shared.TransformFields(update, constant.System), shared.FilterByID(request.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("requestID", request.ID).Msg("failed to approve request")

		return
	}

	session := sessionModel.Session{
		ID:               uuid.NewString(),
		BookingRequestID: request.ID,
		MenteeID:         request.MenteeID,
		ProviderID:       provider.UserID,
		ProviderName:     provider.Name,
		ScheduledAt:      slot.StartAt(timezone.GetLocation()),
		Status:           sessionModel.StatusScheduled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.System,
			ModifiedBy: constant.System,
		},
	}

	if err = s.sessionRepo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Str("requestID", request.ID).Msg("failed to create session")

		return
	}

	s.notify(ctx, notificationDto.NotifyRequest{
		UserID:  request.MenteeID,
		Type:    notificationModel.TypeBookingApproved,
		Title:   "Booking approved",
		Message: fmt.Sprintf("%s approved your booking request", provider.Name),
	})

	log.Info().Str("requestID", request.ID).Str("sessionID", session.ID).Msg("booking request approved")
}

func (s *serviceImpl) reject(ctx context.Context, request model.BookingRequest) {
	status := model.StatusRejected
	update := dto.UpdateBookingRequest{Status: &status}

	if err := s.repo.Update(ctx, shared.TransformFields(update, constant.System), shared.FilterByID(request.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("requestID", request.ID).Msg("failed to reject request")

		return
	}

	// Release the reserved slot so the mentee can retry.
	if request.SlotID != nil {
		if err := s.setSlotAvailability(ctx, *request.SlotID, true, constant.System); err != nil {
			log.Error().Err(err).Str("requestID", request.ID).Msg("failed to release slot after rejection")
		}
	}

	s.notify(ctx, notificationDto.NotifyRequest{
		UserID:  request.MenteeID,
		Type:    notificationModel.TypeBookingRejected,
		Title:   "Booking rejected",
		Message: "The provider declined your booking request, the slot has been released",
	})

	log.Info().Str("requestID", request.ID).Msg("booking request rejected")
}

// Cancel withdraws the request. Canceling a pending request disarms the
// resolution timer and releases the reserved slot. Canceling twice is a
// no-op, canceling an approved request is refused.
func (s *serviceImpl) Cancel(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if request.Status == model.StatusCanceled {
		return nil
	}

	if request.Status == model.StatusApproved {
		return failure.Conflict("request is already approved, cancel the session instead") //nolint:wrapcheck
	}

	if request.Status == model.StatusPending {
		if !s.resolver.Cancel(id) {
			// The timer fired while this call was in flight, the request
			// has been resolved in the meantime.
			return failure.Conflict("request has already been resolved") //nolint:wrapcheck
		}

		if request.SlotID != nil {
			if err = s.setSlotAvailability(ctx, *request.SlotID, true, userID); err != nil {
				return err
			}
		}
	}

	status := model.StatusCanceled
	update := dto.UpdateBookingRequest{Status: &status}

	if err = s.repo.Update(ctx, shared.TransformFields(update, userID), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking request")

		return fmt.Errorf("failed to cancel booking request: %w", err)
	}

	s.notify(ctx, notificationDto.NotifyRequest{
		UserID:  request.MenteeID,
		Type:    notificationModel.TypeBookingCanceled,
		Title:   "Booking canceled",
		Message: "Your booking request was canceled",
	})

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.BookingRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetBookingRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldMenteeID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking requests")

		return res, fmt.Errorf("failed to count booking requests: %w", err)
	}

	requests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking requests")

		return res, fmt.Errorf("failed to get booking requests: %w", err)
	}

	res.FromModels(requests, total, params.Limit)

	return res, nil
}

// Shutdown disarms all pending resolution timers.
func (s *serviceImpl) Shutdown() {
	s.resolver.Shutdown()
}

func (s *serviceImpl) getOwned(ctx context.Context, id, userID string) (request model.BookingRequest, err error) {
	request, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking request")

		return request, fmt.Errorf("failed to get booking request: %w", err)
	}

	if request.ID == constant.Empty {
		return request, failure.NotFound("booking request not found") //nolint:wrapcheck
	}

	if request.MenteeID != userID {
		return request, failure.Forbidden("booking request belongs to another user") //nolint:wrapcheck
	}

	return request, nil
}

func (s *serviceImpl) setSlotAvailability(ctx context.Context, slotID string, available bool, username string) error {
	update := map[string]any{
		scheduleModel.FieldAvailable: available,
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     username,
	}

	if err := s.slotRepo.Update(ctx, update, shared.FilterByID(slotID, scheduleModel.FieldID, scheduleModel.TableName)); err != nil {
		log.Error().Err(err).Str("slotID", slotID).Msg("failed to update slot availability")

		return fmt.Errorf("failed to update slot availability: %w", err)
	}

	return nil
}

// notify is best effort, a notification failure never fails the flow that
// produced it.
func (s *serviceImpl) notify(ctx context.Context, req notificationDto.NotifyRequest) {
	if err := s.notifier.Notify(ctx, req); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("failed to send notification")
	}
}
