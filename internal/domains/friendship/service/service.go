package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"talentlink/config"
	"talentlink/infras/otel"
	"talentlink/internal/domains/friendship/model"
	"talentlink/internal/domains/friendship/model/dto"
	"talentlink/internal/domains/friendship/repository"
	notificationModel "talentlink/internal/domains/notification/model"
	notificationDto "talentlink/internal/domains/notification/model/dto"
	notificationService "talentlink/internal/domains/notification/service"
	"talentlink/shared"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"

	"github.com/rs/zerolog/log"
)

type Friendship interface {
	Request(ctx context.Context, req dto.RequestFriendshipRequest, userID string) error
	Accept(ctx context.Context, id, userID string) error
	Remove(ctx context.Context, id, userID string) error
	GetFriends(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetFriendshipsResponse, error)
	GetRequests(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetFriendshipsResponse, error)
	AreFriends(ctx context.Context, userID, otherUserID string) (bool, error)
}

type serviceImpl struct {
	repo     repository.Friendship
	notifier notificationService.Notifier
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Friendship, notifier notificationService.Notifier, cfg *config.Config, otel otel.Otel) Friendship {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Request(ctx context.Context, req dto.RequestFriendshipRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Request")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.FriendUserID == userID {
		return failure.BadRequestFromString("cannot send a friend request to yourself") //nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, model.PairFilter(userID, req.FriendUserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing friendship")

		return fmt.Errorf("failed to check existing friendship: %w", err)
	}

	if exists {
		return failure.Conflict("a friendship or pending request already exists between these users") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if err = s.repo.Insert(ctx, req.ToModel(userID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create friend request")

		return fmt.Errorf("failed to create friend request: %w", err)
	}

	s.notify(ctx, notificationDto.NotifyRequest{
		UserID:  req.FriendUserID,
		Type:    notificationModel.TypeFriendRequest,
		Title:   "New friend request",
		Message: "You have received a friend request",
	})

	return nil
}

func (s *serviceImpl) Accept(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Accept")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	friendship, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get friend request")

		return fmt.Errorf("failed to get friend request: %w", err)
	}

	if friendship.ID == constant.Empty {
		return failure.NotFound("friend request not found") //nolint:wrapcheck
	}

	if friendship.FriendUserID != userID {
		return failure.Forbidden("only the recipient can accept a friend request") //nolint:wrapcheck
	}

	// Accepting twice is a no-op.
	if friendship.Status == model.StatusAccepted {
		return nil
	}

	status := model.StatusAccepted
	update := dto.UpdateFriendshipRequest{Status: &status}
	updatedFields := shared.TransformFields(update, userID)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to accept friend request")

		return fmt.Errorf("failed to accept friend request: %w", err)
	}

	s.notify(ctx, notificationDto.NotifyRequest{
		UserID:  friendship.UserID,
		Type:    notificationModel.TypeFriendAccepted,
		Title:   "Friend request accepted",
		Message: "Your friend request was accepted",
	})

	return nil
}

func (s *serviceImpl) Remove(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	friendship, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get friendship")

		return fmt.Errorf("failed to get friendship: %w", err)
	}

	if friendship.ID == constant.Empty {
		return failure.NotFound("friendship not found") //nolint:wrapcheck
	}

	if friendship.UserID != userID && friendship.FriendUserID != userID {
		return failure.Forbidden("only a participant can remove a friendship") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove friendship")

		return fmt.Errorf("failed to remove friendship: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetFriends(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetFriendshipsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFriends")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusAccepted,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "user_id_a",
						Field:    model.FieldUserID,
						Operator: gDto.FilterOperatorEq,
						Value:    userID,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "friend_user_id_a",
						Field:    model.FieldFriendUserID,
						Operator: gDto.FilterOperatorEq,
						Value:    userID,
						Table:    model.TableName,
					},
				},
			},
		},
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) GetRequests(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetFriendshipsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRequests")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldFriendUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFriendshipsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count friendships")

		return res, fmt.Errorf("failed to count friendships: %w", err)
	}

	friendships, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get friendships")

		return res, fmt.Errorf("failed to get friendships: %w", err)
	}

	res.FromModels(friendships, total, params.Limit)

	return res, nil
}

// AreFriends reports whether an accepted friendship exists between two users,
// in either direction. The result is read straight from the database so a
// removed friendship takes effect immediately.
func (s *serviceImpl) AreFriends(ctx context.Context, userID, otherUserID string) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AreFriends")
	defer scope.End()
	defer scope.TraceIfError(err)

	ok, err = s.repo.Exist(ctx, model.AcceptedPairFilter(userID, otherUserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check friendship")

		return false, fmt.Errorf("failed to check friendship: %w", err)
	}

	return ok, nil
}

// notify is best effort, a notification failure never fails the flow that
// produced it.
func (s *serviceImpl) notify(ctx context.Context, req notificationDto.NotifyRequest) {
	if err := s.notifier.Notify(ctx, req); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("failed to send notification")
	}
}
