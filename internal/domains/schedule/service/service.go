package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"talentlink/config"
	"talentlink/infras/otel"
	providerModel "talentlink/internal/domains/provider/model"
	providerRepo "talentlink/internal/domains/provider/repository"
	"talentlink/internal/domains/schedule/model"
	"talentlink/internal/domains/schedule/model/dto"
	"talentlink/internal/domains/schedule/repository"
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

type Schedule interface {
	EnsureWindow(ctx context.Context, providerID string) error
	GetWindow(ctx context.Context, providerID string) (dto.GetScheduleResponse, error)
}

type serviceImpl struct {
	repo         repository.Slot
	providerRepo providerRepo.Provider
	cfg          *config.Config
	otel         otel.Otel
	availability outcome.Source
}

func New(repo repository.Slot, providerRepo providerRepo.Provider, cfg *config.Config, otel otel.Otel, availability outcome.Source) Schedule {
	return &serviceImpl{
		repo:         repo,
		providerRepo: providerRepo,
		cfg:          cfg,
		otel:         otel,
		availability: availability,
	}
}

func windowFilter(providerID string, from time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    providerID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldSlotDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    model.TableName,
			},
		},
	}
}

// EnsureWindow generates any missing slot days for the provider's upcoming
// window. Days that already have slots are left untouched so previously
// booked slots keep their state.
func (s *serviceImpl) EnsureWindow(ctx context.Context, providerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	existing, err := s.repo.GetAll(ctx, gDto.QueryParams{}, windowFilter(providerID, today), model.FieldSlotDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get existing slots")

		return fmt.Errorf("failed to get existing slots: %w", err)
	}

	generated := map[string]bool{}
	for _, slot := range existing {
		generated[slot.SlotDate.Format(constant.DateOnlyFormat)] = true
	}

	var slots []model.Slot

	for offset := range s.cfg.Schedule.WindowDays {
		day := today.AddDate(0, 0, offset)
		if generated[day.Format(constant.DateOnlyFormat)] {
			continue
		}

		slots = append(slots, s.generateDay(providerID, day)...)
	}

	if len(slots) == 0 {
		return nil
	}

	if err = s.repo.InsertBulk(ctx, slots); err != nil {
		log.Error().Err(err).Msg("failed to insert generated slots")

		return fmt.Errorf("failed to insert generated slots: %w", err)
	}

	return nil
}

func (s *serviceImpl) generateDay(providerID string, day time.Time) []model.Slot {
	count := s.cfg.Schedule.WeekdaySlotCount
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		count = s.cfg.Schedule.WeekendSlotCount
	}

	slots := make([]model.Slot, 0, count)

	for i := range count {
		hour := s.cfg.Schedule.DayStartHour + i*s.cfg.Schedule.SlotIntervalHours

		slots = append(slots, model.Slot{
			ID:         uuid.NewString(),
			ProviderID: providerID,
			SlotDate:   day,
			StartTime:  time.Date(0, time.January, 1, hour, 0, 0, 0, time.UTC),
			Available:  s.availability.Next(),
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  constant.System,
				ModifiedBy: constant.System,
			},
		})
	}

	return slots
}

func (s *serviceImpl) GetWindow(ctx context.Context, providerID string) (res dto.GetScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.providerRepo.Exist(ctx, shared.FilterByID(providerID, providerModel.FieldID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check provider existence")

		return res, fmt.Errorf("failed to check provider existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("provider not found") //nolint:wrapcheck
	}

	if err = s.EnsureWindow(ctx, providerID); err != nil {
		return res, err
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s, %s", model.FieldSlotDate, model.FieldStartTime),
		SortDir: "ASC",
	}

	slots, err := s.repo.GetAll(ctx, params, windowFilter(providerID, today))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	res.FromModels(providerID, slots)

	return res, nil
}
