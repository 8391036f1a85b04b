package service

import (
	"context"
	"fmt"

	"talentlink/config"
	"talentlink/infras/otel"
	"talentlink/internal/domains/session/model"
	"talentlink/internal/domains/session/model/dto"
	"talentlink/internal/domains/session/repository"
	"talentlink/shared"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"
	"talentlink/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Session interface {
	GetUpcoming(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetSessionsResponse, error)
	GetPast(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetSessionsResponse, error)
	Join(ctx context.Context, id, userID string) (dto.HandoffResponse, error)
	Cancel(ctx context.Context, id, userID string) error
	Complete(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo repository.Session
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Session, cfg *config.Config, otel otel.Otel) Session {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func participantFilter(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldMenteeID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetUpcoming(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetSessionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUpcoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			participantFilter(userID),
			gDto.Filter{
				Field:    model.FieldScheduledAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.Now(),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusScheduled,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) GetPast(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetSessionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPast")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			participantFilter(userID),
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldScheduledAt,
						Operator: gDto.FilterOperatorLessEq,
						Value:    timezone.Now(),
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "status_done",
						Field:    model.FieldStatus,
						Operator: gDto.FilterOperatorNotEq,
						Value:    model.StatusScheduled,
						Table:    model.TableName,
					},
				},
			},
		},
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSessionsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions")

		return res, fmt.Errorf("failed to count sessions: %w", err)
	}

	sessions, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sessions")

		return res, fmt.Errorf("failed to get sessions: %w", err)
	}

	res.FromModels(sessions, total, params.Limit)

	return res, nil
}

// Join returns the handoff payload the meeting client needs. Only
// participants of a scheduled session may join.
func (s *serviceImpl) Join(ctx context.Context, id, userID string) (res dto.HandoffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Join")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.get(ctx, id, userID)
	if err != nil {
		return res, err
	}

	if session.Status != model.StatusScheduled {
		return res, failure.Conflict(fmt.Sprintf("cannot join a %s session", session.Status)) //nolint:wrapcheck
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, userID, model.StatusCanceled)
}

func (s *serviceImpl) Complete(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, userID, model.StatusCompleted)
}

func (s *serviceImpl) get(ctx context.Context, id, userID string) (session model.Session, err error) {
	session, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return session, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ID == constant.Empty {
		return session, failure.NotFound("session not found") //nolint:wrapcheck
	}

	if session.MenteeID != userID && session.ProviderID != userID {
		return session, failure.Forbidden("only a participant can access this session") //nolint:wrapcheck
	}

	return session, nil
}

func (s *serviceImpl) transition(ctx context.Context, id, userID, status string) error {
	session, err := s.get(ctx, id, userID)
	if err != nil {
		return err
	}

	if session.Status == status {
		return nil
	}

	if session.Status != model.StatusScheduled {
		return failure.Conflict(fmt.Sprintf("session is already %s", session.Status)) //nolint:wrapcheck
	}

	update := dto.UpdateSessionRequest{Status: &status}
	updatedFields := shared.TransformFields(update, userID)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update session status")

		return fmt.Errorf("failed to update session status: %w", err)
	}

	return nil
}
