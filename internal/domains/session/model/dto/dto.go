package dto

import (
	"time"

	"talentlink/internal/domains/session/model"
	"talentlink/shared"
	gDto "talentlink/shared/dto"
)

type SessionResponse struct {
	ID               string `json:"id"`
	BookingRequestID string `json:"booking_request_id"`
	MenteeID         string `json:"mentee_id"`
	ProviderID       string `json:"provider_id"`
	ProviderName     string `json:"provider_name"`
	ScheduledAt      string `json:"scheduled_at"`
	Status           string `json:"status"`
	gDto.Metadata
}

func (r *SessionResponse) FromModel(model model.Session) {
	r.ID = model.ID
	r.BookingRequestID = model.BookingRequestID
	r.MenteeID = model.MenteeID
	r.ProviderID = model.ProviderID
	r.ProviderName = model.ProviderName
	r.ScheduledAt = model.ScheduledAt.Format(time.RFC3339)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetSessionsResponse struct {
	Sessions  []SessionResponse `json:"sessions"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSessionsResponse) FromModels(models []model.Session, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Sessions = make([]SessionResponse, len(models))
	for i, mod := range models {
		r.Sessions[i].FromModel(mod)
	}
}

// HandoffResponse is the payload handed to the meeting client when a
// session is joined. Field names follow the meeting client's contract.
type HandoffResponse struct {
	ProviderID    string `json:"providerId"`
	ProviderName  string `json:"providerName"`
	ScheduledTime string `json:"scheduledTime"`
}

func (r *HandoffResponse) FromModel(model model.Session) {
	r.ProviderID = model.ProviderID
	r.ProviderName = model.ProviderName
	r.ScheduledTime = model.ScheduledAt.Format(time.RFC3339)
}

type UpdateSessionRequest struct {
	Status *string `db:"status" json:"status,omitempty" validate:"omitempty,oneof=scheduled completed canceled"`
}
