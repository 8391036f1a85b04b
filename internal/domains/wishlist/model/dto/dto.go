package dto

import (
	providerModel "talentlink/internal/domains/provider/model"
	providerDto "talentlink/internal/domains/provider/model/dto"
	"talentlink/internal/domains/wishlist/model"
	gDto "talentlink/shared/dto"
	gModel "talentlink/shared/model"
	"talentlink/shared/timezone"

	"github.com/google/uuid"
)

type AddWishlistRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
}

func (a *AddWishlistRequest) ToModel(userID, username string) model.Wishlist {
	return model.Wishlist{
		ID:         uuid.NewString(),
		UserID:     userID,
		ProviderID: a.ProviderID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type WishlistItemResponse struct {
	ID       string                       `json:"id"`
	Provider providerDto.ProviderResponse `json:"provider"`
	gDto.Metadata
}

type GetWishlistResponse struct {
	Items     []WishlistItemResponse `json:"items"`
	TotalData int                    `json:"total_data"`
}

// FromModels joins each wishlist row with its provider. Rows whose provider
// has been deleted in the meantime are dropped from the response.
func (r *GetWishlistResponse) FromModels(models []model.Wishlist, providers []providerModel.Provider) {
	byID := make(map[string]providerModel.Provider, len(providers))
	for _, provider := range providers {
		byID[provider.ID] = provider
	}

	r.Items = make([]WishlistItemResponse, 0, len(models))

	for _, mod := range models {
		provider, ok := byID[mod.ProviderID]
		if !ok {
			continue
		}

		item := WishlistItemResponse{ID: mod.ID}
		item.Provider.FromModel(provider)
		item.Metadata.FromModel(mod.Metadata)

		r.Items = append(r.Items, item)
	}

	r.TotalData = len(r.Items)
}
