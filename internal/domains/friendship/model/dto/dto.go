package dto

import (
	"talentlink/internal/domains/friendship/model"
	"talentlink/shared"
	gDto "talentlink/shared/dto"
	gModel "talentlink/shared/model"
	"talentlink/shared/timezone"

	"github.com/google/uuid"
)

type RequestFriendshipRequest struct {
	FriendUserID string `json:"friend_user_id" validate:"required"`
}

func (r *RequestFriendshipRequest) ToModel(userID, username string) model.Friendship {
	return model.Friendship{
		ID:           uuid.NewString(),
		UserID:       userID,
		FriendUserID: r.FriendUserID,
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateFriendshipRequest struct {
	Status *string `db:"status" json:"status,omitempty" validate:"omitempty,oneof=pending accepted"`
}

type FriendshipResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	FriendUserID string `json:"friend_user_id"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *FriendshipResponse) FromModel(model model.Friendship) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FriendUserID = model.FriendUserID
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetFriendshipsResponse struct {
	Friendships []FriendshipResponse `json:"friendships"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetFriendshipsResponse) FromModels(models []model.Friendship, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Friendships = make([]FriendshipResponse, len(models))
	for i, mod := range models {
		r.Friendships[i].FromModel(mod)
	}
}
