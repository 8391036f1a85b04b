package dto

import (
	"talentlink/internal/domains/booking/model"
	"talentlink/shared"
	gDto "talentlink/shared/dto"
	gModel "talentlink/shared/model"
	"talentlink/shared/timezone"

	"github.com/google/uuid"
)

type CreateDraftRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
}

func (c *CreateDraftRequest) ToModel(menteeID, username string) model.BookingRequest {
	return model.BookingRequest{
		ID:         uuid.NewString(),
		MenteeID:   menteeID,
		ProviderID: c.ProviderID,
		Status:     model.StatusNotSent,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type SelectSlotRequest struct {
	SlotID string `json:"slot_id" validate:"required"`
}

type UpdateBookingRequest struct {
	SlotID *string `db:"slot_id" json:"-"`
	Status *string `db:"status"  json:"-"`
}

type BookingRequestResponse struct {
	ID         string  `json:"id"`
	MenteeID   string  `json:"mentee_id"`
	ProviderID string  `json:"provider_id"`
	SlotID     *string `json:"slot_id,omitempty"`
	Status     string  `json:"status"`
	gDto.Metadata
}

func (r *BookingRequestResponse) FromModel(model model.BookingRequest) {
	r.ID = model.ID
	r.MenteeID = model.MenteeID
	r.ProviderID = model.ProviderID
	r.SlotID = model.SlotID
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingRequestsResponse struct {
	Requests  []BookingRequestResponse `json:"requests"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetBookingRequestsResponse) FromModels(models []model.BookingRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]BookingRequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
