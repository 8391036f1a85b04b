package di

import (
	"time"

	"talentlink/config"
	"talentlink/infras/otel"
	"talentlink/shared/outcome"
	"talentlink/shared/timezone"

	bookingRepository "talentlink/internal/domains/booking/repository"
	bookingService "talentlink/internal/domains/booking/service"
	friendshipRepository "talentlink/internal/domains/friendship/repository"
	notificationService "talentlink/internal/domains/notification/service"
	providerRepository "talentlink/internal/domains/provider/repository"
	scheduleRepository "talentlink/internal/domains/schedule/repository"
	scheduleService "talentlink/internal/domains/schedule/service"
	sessionRepository "talentlink/internal/domains/session/repository"
)

// provideScheduleService seeds the slot availability source from the wall
// clock so each process generates a different window.
func provideScheduleService(
	repo scheduleRepository.Slot,
	providerRepo providerRepository.Provider,
	cfg *config.Config,
	ot otel.Otel,
) scheduleService.Schedule {
	availability := outcome.NewRandom(cfg.Schedule.AvailabilityRate, timezone.Now().UnixNano())

	return scheduleService.New(repo, providerRepo, cfg, ot, availability)
}

func provideBookingService(
	repo bookingRepository.BookingRequest,
	slotRepo scheduleRepository.Slot,
	providerRepo providerRepository.Provider,
	friendshipRepo friendshipRepository.Friendship,
	sessionRepo sessionRepository.Session,
	notifier notificationService.Notifier,
	cfg *config.Config,
	ot otel.Otel,
) bookingService.Booking {
	approval := outcome.NewRandom(cfg.Booking.ApproveRate, timezone.Now().UnixNano())
	resolver := bookingService.NewResolver(time.Duration(cfg.Booking.ResolutionDelaySeconds) * time.Second)

	return bookingService.New(repo, slotRepo, providerRepo, friendshipRepo, sessionRepo, notifier, cfg, ot, approval, resolver)
}
