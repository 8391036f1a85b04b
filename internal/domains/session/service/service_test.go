package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"talentlink/config"
	"talentlink/infras/otel/mocks"
	sessionMocks "talentlink/internal/domains/session/mocks"
	"talentlink/internal/domains/session/model"
	"talentlink/internal/domains/session/service"
	gDto "talentlink/shared/dto"
	"talentlink/shared/timezone"
)

func TestSessionService_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	scheduledAt := timezone.Now().Add(24 * time.Hour)

	session := model.Session{
		ID:               "session-id-1",
		BookingRequestID: "request-id-1",
		MenteeID:         "mentee-id-1",
		ProviderID:       "provider-user-id-1",
		ProviderName:     "Aulia Rahmi",
		ScheduledAt:      scheduledAt,
		Status:           model.StatusScheduled,
	}

	tests := []struct {
		name      string
		id        string
		userID    string
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "mentee joins scheduled session",
			id:     "session-id-1",
			userID: "mentee-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(session, nil)
			},
			wantErr: false,
		},
		{
			name:   "provider joins scheduled session",
			id:     "session-id-1",
			userID: "provider-user-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(session, nil)
			},
			wantErr: false,
		},
		{
			name:   "outsider cannot join",
			id:     "session-id-1",
			userID: "user-id-9",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(session, nil)
			},
			wantErr: true,
		},
		{
			name:   "canceled session cannot be joined",
			id:     "session-id-1",
			userID: "mentee-id-1",
			setupMock: func() {
				canceled := session
				canceled.Status = model.StatusCanceled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(canceled, nil)
			},
			wantErr: true,
		},
		{
			name:   "session not found",
			id:     "nonexistent-id",
			userID: "mentee-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Session{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Join(context.Background(), tt.id, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "provider-user-id-1", res.ProviderID)
				assert.Equal(t, "Aulia Rahmi", res.ProviderName)
				assert.Equal(t, scheduledAt.Format(time.RFC3339), res.ScheduledTime)
			}
		})
	}
}

func TestSessionService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	session := model.Session{
		ID:         "session-id-1",
		MenteeID:   "mentee-id-1",
		ProviderID: "provider-user-id-1",
		Status:     model.StatusScheduled,
	}

	tests := []struct {
		name      string
		userID    string
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "successful cancel",
			userID: "mentee-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(session, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "canceling twice is a no-op",
			userID: "mentee-id-1",
			setupMock: func() {
				canceled := session
				canceled.Status = model.StatusCanceled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(canceled, nil)
			},
			wantErr: false,
		},
		{
			name:   "completed session cannot be canceled",
			userID: "mentee-id-1",
			setupMock: func() {
				completed := session
				completed.Status = model.StatusCompleted

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr: true,
		},
		{
			name:   "update error",
			userID: "mentee-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(session, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(context.Background(), "session-id-1", tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionService_GetUpcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Session{
			{
				ID:          "session-id-1",
				MenteeID:    "mentee-id-1",
				ProviderID:  "provider-user-id-1",
				ScheduledAt: timezone.Now().Add(time.Hour),
				Status:      model.StatusScheduled,
			},
		}, nil)

	res, err := svc.GetUpcoming(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, "mentee-id-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Sessions, 1)
	assert.Equal(t, model.StatusScheduled, res.Sessions[0].Status)
}
