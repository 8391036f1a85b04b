package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"talentlink/config"
	"talentlink/infras/kafka"
	"talentlink/infras/otel"
	"talentlink/internal/domains/notification/model"
	"talentlink/internal/domains/notification/model/dto"
	"talentlink/internal/domains/notification/repository"
	"talentlink/shared"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"

	"github.com/rs/zerolog/log"
)

type Notifier interface {
	Notify(ctx context.Context, req dto.NotifyRequest) error
	GetMine(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo  repository.Notification
	cfg   *config.Config
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Notification, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Notifier {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
		kafka: kafka,
	}
}

// Notify persists the notification and publishes it to the notification
// topic. Publishing is fire and forget, a broker outage must not fail the
// operation that triggered the notification.
func (s *serviceImpl) Notify(ctx context.Context, req dto.NotifyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification := req.ToModel()

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to persist notification")

		return fmt.Errorf("failed to persist notification: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   notification.UserID,
			Value: notification,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Notifications, message); err != nil {
			log.Error().Err(err).Str("notificationID", notification.ID).Msg("failed to publish notification")
		}
	}()

	return nil
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	notifications, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(notifications, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	notification, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound("notification not found") //nolint:wrapcheck
	}

	if notification.UserID != userID {
		return failure.Forbidden("notification belongs to another user") //nolint:wrapcheck
	}

	if notification.Read {
		return nil
	}

	read := true
	update := dto.UpdateNotificationRequest{Read: &read}
	updatedFields := shared.TransformFields(update, userID)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification as read")

		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}
