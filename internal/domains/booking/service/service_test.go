package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"talentlink/config"
	"talentlink/infras/otel/mocks"
	bookingMocks "talentlink/internal/domains/booking/mocks"
	"talentlink/internal/domains/booking/model"
	"talentlink/internal/domains/booking/model/dto"
	"talentlink/internal/domains/booking/service"
	friendshipMocks "talentlink/internal/domains/friendship/mocks"
	notificationMocks "talentlink/internal/domains/notification/mocks"
	notificationModel "talentlink/internal/domains/notification/model"
	notificationDto "talentlink/internal/domains/notification/model/dto"
	providerMocks "talentlink/internal/domains/provider/mocks"
	providerModel "talentlink/internal/domains/provider/model"
	scheduleMocks "talentlink/internal/domains/schedule/mocks"
	scheduleModel "talentlink/internal/domains/schedule/model"
	sessionMocks "talentlink/internal/domains/session/mocks"
	sessionModel "talentlink/internal/domains/session/model"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"
	"talentlink/shared/outcome"
	"talentlink/shared/timezone"
)

type bookingFixture struct {
	repo           *bookingMocks.MockBookingRequest
	slotRepo       *scheduleMocks.MockSlot
	providerRepo   *providerMocks.MockProvider
	friendshipRepo *friendshipMocks.MockFriendship
	sessionRepo    *sessionMocks.MockSession
	notifier       *notificationMocks.MockNotifier
	resolver       *service.Resolver
	svc            service.Booking
}

func newBookingFixture(ctrl *gomock.Controller, delay time.Duration, approval outcome.Source) *bookingFixture {
	f := &bookingFixture{
		repo:           bookingMocks.NewMockBookingRequest(ctrl),
		slotRepo:       scheduleMocks.NewMockSlot(ctrl),
		providerRepo:   providerMocks.NewMockProvider(ctrl),
		friendshipRepo: friendshipMocks.NewMockFriendship(ctrl),
		sessionRepo:    sessionMocks.NewMockSession(ctrl),
		notifier:       notificationMocks.NewMockNotifier(ctrl),
		resolver:       service.NewResolver(delay),
	}

	cfg := &config.Config{}

	f.svc = service.New(
		f.repo, f.slotRepo, f.providerRepo, f.friendshipRepo, f.sessionRepo,
		f.notifier, cfg, mocks.NewOtel(), approval, f.resolver,
	)

	return f
}

func futureSlot(id, providerID string, available bool) scheduleModel.Slot {
	day := timezone.Now().AddDate(0, 0, 7)

	return scheduleModel.Slot{
		ID:         id,
		ProviderID: providerID,
		SlotDate:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
		StartTime:  time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		Available:  available,
	}
}

func pastSlot(id, providerID string) scheduleModel.Slot {
	day := timezone.Now().AddDate(0, 0, -1)

	return scheduleModel.Slot{
		ID:         id,
		ProviderID: providerID,
		SlotDate:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
		StartTime:  time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		Available:  true,
	}
}

func TestBookingService_CreateDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	provider := providerModel.Provider{
		ID:     "provider-id-1",
		UserID: "provider-user-id-1",
		Name:   "Aulia Rahmi",
	}

	tests := []struct {
		name      string
		req       dto.CreateDraftRequest
		userID    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful draft",
			req:    dto.CreateDraftRequest{ProviderID: "provider-id-1"},
			userID: "mentee-id-1",
			setupMock: func() {
				f.providerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(provider, nil)

				f.friendshipRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "provider not found",
			req:    dto.CreateDraftRequest{ProviderID: "nonexistent-id"},
			userID: "mentee-id-1",
			setupMock: func() {
				f.providerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(providerModel.Provider{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "cannot book yourself",
			req:    dto.CreateDraftRequest{ProviderID: "provider-id-1"},
			userID: "provider-user-id-1",
			setupMock: func() {
				f.providerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(provider, nil)
			},
			wantErr: true,
		},
		{
			name:   "not friends with provider",
			req:    dto.CreateDraftRequest{ProviderID: "provider-id-1"},
			userID: "mentee-id-1",
			setupMock: func() {
				f.providerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(provider, nil)

				f.friendshipRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "open request already exists",
			req:    dto.CreateDraftRequest{ProviderID: "provider-id-1"},
			userID: "mentee-id-1",
			setupMock: func() {
				f.providerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(provider, nil)

				f.friendshipRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.CreateDraft(context.Background(), tt.req, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusNotSent, res.Status)
				assert.Equal(t, "mentee-id-1", res.MenteeID)
				assert.Nil(t, res.SlotID)
			}
		})
	}
}

func TestBookingService_SelectSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	slotID := "slot-id-1"

	draft := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		Status:     model.StatusNotSent,
	}

	tests := []struct {
		name      string
		req       dto.SelectSlotRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful selection",
			req:  dto.SelectSlotRequest{SlotID: slotID},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(draft, nil)

				f.slotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureSlot(slotID, "provider-id-1", true), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "selecting the same slot again is a no-op",
			req:  dto.SelectSlotRequest{SlotID: slotID},
			setupMock: func() {
				selected := draft
				selected.SlotID = &slotID

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(selected, nil)
			},
			wantErr: false,
		},
		{
			name: "no-op while pending",
			req:  dto.SelectSlotRequest{SlotID: "slot-id-2"},
			setupMock: func() {
				pending := draft
				pending.SlotID = &slotID
				pending.Status = model.StatusPending

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: false,
		},
		{
			name: "unavailable slot is refused",
			req:  dto.SelectSlotRequest{SlotID: slotID},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(draft, nil)

				f.slotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureSlot(slotID, "provider-id-1", false), nil)
			},
			wantErr: true,
		},
		{
			name: "past slot is refused",
			req:  dto.SelectSlotRequest{SlotID: slotID},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(draft, nil)

				f.slotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pastSlot(slotID, "provider-id-1"), nil)
			},
			wantErr: true,
		},
		{
			name: "slot of another provider is refused",
			req:  dto.SelectSlotRequest{SlotID: slotID},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(draft, nil)

				f.slotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureSlot(slotID, "provider-id-2", true), nil)
			},
			wantErr: true,
		},
		{
			name: "approved request cannot change slot",
			req:  dto.SelectSlotRequest{SlotID: slotID},
			setupMock: func() {
				approved := draft
				approved.Status = model.StatusApproved

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approved, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.SelectSlot(context.Background(), "request-id-1", tt.req, "mentee-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_SubmitApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, 10*time.Millisecond, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	slotID := "slot-id-1"
	slot := futureSlot(slotID, "provider-id-1", true)

	draft := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		SlotID:     &slotID,
		Status:     model.StatusNotSent,
	}

	pending := draft
	pending.Status = model.StatusPending

	provider := providerModel.Provider{
		ID:     "provider-id-1",
		UserID: "provider-user-id-1",
		Name:   "Aulia Rahmi",
	}

	notified := make(chan struct{})

	var createdSession sessionModel.Session

	// Submit path.
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft, nil)
	f.slotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(slot, nil)
	f.slotRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			assert.Equal(t, false, req[scheduleModel.FieldAvailable])

			return nil
		})
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req notificationDto.NotifyRequest) error {
			assert.Equal(t, notificationModel.TypeBookingSent, req.Type)

			return nil
		})

	// Resolution path.
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
	f.slotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(slot, nil)
	f.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(provider, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			status, _ := req[model.FieldStatus].(*string)
			assert.Equal(t, model.StatusApproved, *status)

			return nil
		})
	f.sessionRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session sessionModel.Session) error {
			createdSession = session

			return nil
		})
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req notificationDto.NotifyRequest) error {
			assert.Equal(t, notificationModel.TypeBookingApproved, req.Type)
			close(notified)

			return nil
		})

	err := f.svc.Submit(context.Background(), "request-id-1", "mentee-id-1")
	assert.NoError(t, err)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("resolution did not complete")
	}

	assert.Equal(t, "request-id-1", createdSession.BookingRequestID)
	assert.Equal(t, "mentee-id-1", createdSession.MenteeID)
	assert.Equal(t, "provider-user-id-1", createdSession.ProviderID)
	assert.Equal(t, "Aulia Rahmi", createdSession.ProviderName)
	assert.Equal(t, sessionModel.StatusScheduled, createdSession.Status)
	assert.Equal(t, slot.StartAt(timezone.GetLocation()), createdSession.ScheduledAt)
}

func TestBookingService_SubmitRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, 10*time.Millisecond, outcome.NewFixed(false))
	defer f.resolver.Shutdown()

	slotID := "slot-id-1"
	slot := futureSlot(slotID, "provider-id-1", true)

	draft := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		SlotID:     &slotID,
		Status:     model.StatusNotSent,
	}

	pending := draft
	pending.Status = model.StatusPending

	notified := make(chan struct{})

	// Submit path.
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft, nil)
	f.slotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(slot, nil)
	f.slotRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req notificationDto.NotifyRequest) error {
			assert.Equal(t, notificationModel.TypeBookingSent, req.Type)

			return nil
		})

	// Resolution path, the reserved slot is released again.
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			status, _ := req[model.FieldStatus].(*string)
			assert.Equal(t, model.StatusRejected, *status)

			return nil
		})
	f.slotRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			assert.Equal(t, true, req[scheduleModel.FieldAvailable])

			return nil
		})
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req notificationDto.NotifyRequest) error {
			assert.Equal(t, notificationModel.TypeBookingRejected, req.Type)
			close(notified)

			return nil
		})

	err := f.svc.Submit(context.Background(), "request-id-1", "mentee-id-1")
	assert.NoError(t, err)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("resolution did not complete")
	}
}

func TestBookingService_SubmitWithoutSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	draft := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		Status:     model.StatusNotSent,
	}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft, nil)

	err := f.svc.Submit(context.Background(), "request-id-1", "mentee-id-1")

	assert.Error(t, err)
}

func TestBookingService_SubmitPendingIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	slotID := "slot-id-1"
	pending := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		SlotID:     &slotID,
		Status:     model.StatusPending,
	}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)

	err := f.svc.Submit(context.Background(), "request-id-1", "mentee-id-1")

	assert.NoError(t, err)
}

func TestBookingService_SubmitEmitsRequestSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Long delay, only the submit itself runs here. Exactly one notification
	// must be emitted for the NotSent to Pending transition.
	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	slotID := "slot-id-1"
	slot := futureSlot(slotID, "provider-id-1", true)

	draft := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		SlotID:     &slotID,
		Status:     model.StatusNotSent,
	}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft, nil)
	f.slotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(slot, nil)
	f.slotRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req notificationDto.NotifyRequest) error {
			assert.Equal(t, notificationModel.TypeBookingSent, req.Type)
			assert.Equal(t, "mentee-id-1", req.UserID)

			return nil
		}).
		Times(1)

	err := f.svc.Submit(context.Background(), "request-id-1", "mentee-id-1")

	assert.NoError(t, err)
}

func TestBookingService_SubmitFailureReleasesSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	slotID := "slot-id-1"
	slot := futureSlot(slotID, "provider-id-1", true)

	draft := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		SlotID:     &slotID,
		Status:     model.StatusNotSent,
	}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft, nil)
	f.slotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(slot, nil)

	// The slot is reserved first, then handed back when the status update
	// fails. No notification and no resolution timer either way.
	f.slotRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			assert.Equal(t, false, req[scheduleModel.FieldAvailable])

			return nil
		})
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))
	f.slotRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			assert.Equal(t, true, req[scheduleModel.FieldAvailable])

			return nil
		})

	err := f.svc.Submit(context.Background(), "request-id-1", "mentee-id-1")

	assert.Error(t, err)
	assert.False(t, f.resolver.Cancel("request-id-1"))
}

func TestBookingService_CancelPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Long delay, the timer must never fire during this test. No resolution
	// expectations are registered, a zombie update would fail the test.
	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	slotID := "slot-id-1"
	slot := futureSlot(slotID, "provider-id-1", true)

	draft := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		SlotID:     &slotID,
		Status:     model.StatusNotSent,
	}

	pending := draft
	pending.Status = model.StatusPending

	// Submit path.
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft, nil)
	f.slotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(slot, nil)
	f.slotRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req notificationDto.NotifyRequest) error {
			assert.Equal(t, notificationModel.TypeBookingSent, req.Type)

			return nil
		})

	// Cancel path, the reserved slot is released.
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
	f.slotRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			assert.Equal(t, true, req[scheduleModel.FieldAvailable])

			return nil
		})
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			status, _ := req[model.FieldStatus].(*string)
			assert.Equal(t, model.StatusCanceled, *status)

			return nil
		})
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req notificationDto.NotifyRequest) error {
			assert.Equal(t, notificationModel.TypeBookingCanceled, req.Type)

			return nil
		})

	err := f.svc.Submit(context.Background(), "request-id-1", "mentee-id-1")
	assert.NoError(t, err)

	err = f.svc.Cancel(context.Background(), "request-id-1", "mentee-id-1")
	assert.NoError(t, err)

	// The resolution timer was disarmed.
	assert.False(t, f.resolver.Cancel("request-id-1"))
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	draft := model.BookingRequest{
		ID:         "request-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-id-1",
		Status:     model.StatusNotSent,
	}

	tests := []struct {
		name      string
		userID    string
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "cancel draft",
			userID: "mentee-id-1",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(draft, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.notifier.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req notificationDto.NotifyRequest) error {
						assert.Equal(t, notificationModel.TypeBookingCanceled, req.Type)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:   "canceling twice is a no-op",
			userID: "mentee-id-1",
			setupMock: func() {
				canceled := draft
				canceled.Status = model.StatusCanceled

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(canceled, nil)
			},
			wantErr: false,
		},
		{
			name:   "approved request cannot be canceled",
			userID: "mentee-id-1",
			setupMock: func() {
				approved := draft
				approved.Status = model.StatusApproved

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approved, nil)
			},
			wantErr: true,
		},
		{
			name:   "pending request whose timer already fired",
			userID: "mentee-id-1",
			setupMock: func() {
				pending := draft
				pending.Status = model.StatusPending

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: true,
		},
		{
			name:   "not the owner",
			userID: "user-id-9",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(draft, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Cancel(context.Background(), "request-id-1", tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, time.Hour, outcome.NewFixed(true))
	defer f.resolver.Shutdown()

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.BookingRequest{
			{ID: "request-id-1", MenteeID: "mentee-id-1", ProviderID: "provider-id-1", Status: model.StatusNotSent},
		}, nil)

	res, err := f.svc.GetMine(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "mentee-id-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Requests, 1)
}
