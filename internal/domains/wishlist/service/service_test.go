package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"talentlink/config"
	"talentlink/infras/otel/mocks"
	providerMocks "talentlink/internal/domains/provider/mocks"
	providerModel "talentlink/internal/domains/provider/model"
	wishlistMocks "talentlink/internal/domains/wishlist/mocks"
	"talentlink/internal/domains/wishlist/model"
	"talentlink/internal/domains/wishlist/model/dto"
	"talentlink/internal/domains/wishlist/service"
	cacheMocks "talentlink/shared/cache/mocks"
)

func TestWishlistService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := wishlistMocks.NewMockWishlist(ctrl)
	mockProviderRepo := providerMocks.NewMockProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockProviderRepo, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.AddWishlistRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful add",
			req:  dto.AddWishlistRequest{ProviderID: "provider-id-1"},
			setupMock: func() {
				mockProviderRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wishlist model.Wishlist) error {
						assert.Equal(t, "user-id-1", wishlist.UserID)
						assert.Equal(t, "provider-id-1", wishlist.ProviderID)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "adding twice is a no-op",
			req:  dto.AddWishlistRequest{ProviderID: "provider-id-1"},
			setupMock: func() {
				mockProviderRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "provider not found",
			req:  dto.AddWishlistRequest{ProviderID: "nonexistent-id"},
			setupMock: func() {
				mockProviderRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.AddWishlistRequest{ProviderID: "provider-id-1"},
			setupMock: func() {
				mockProviderRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Add(context.Background(), tt.req, "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWishlistService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := wishlistMocks.NewMockWishlist(ctrl)
	mockProviderRepo := providerMocks.NewMockProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockProviderRepo, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful remove",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "removing an unlisted provider is a no-op",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Remove(context.Background(), "provider-id-1", "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWishlistService_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := wishlistMocks.NewMockWishlist(ctrl)
	mockProviderRepo := providerMocks.NewMockProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockProviderRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Wishlist{
			{ID: "wishlist-id-1", UserID: "user-id-1", ProviderID: "provider-id-1"},
			{ID: "wishlist-id-2", UserID: "user-id-1", ProviderID: "provider-id-2"},
		}, nil)

	// provider-id-2 has been deleted, its wishlist row is dropped.
	mockProviderRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]providerModel.Provider{
			{ID: "provider-id-1", UserID: "user-id-2", Name: "Aulia Rahmi"},
		}, nil)

	res, err := svc.GetMine(context.Background(), "user-id-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "wishlist-id-1", res.Items[0].ID)
	assert.Equal(t, "Aulia Rahmi", res.Items[0].Provider.Name)
}
