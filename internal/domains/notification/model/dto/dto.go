package dto

import (
	"talentlink/internal/domains/notification/model"
	"talentlink/shared"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	gModel "talentlink/shared/model"
	"talentlink/shared/timezone"

	"github.com/google/uuid"
)

type NotifyRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Type    string `json:"type"    validate:"required,oneof=booking_sent booking_approved booking_rejected booking_canceled friend_request friend_accepted session_reminder"`
	Title   string `json:"title"   validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=500"`
}

func (n *NotifyRequest) ToModel() model.Notification {
	return model.Notification{
		ID:      uuid.NewString(),
		UserID:  n.UserID,
		Type:    n.Type,
		Title:   n.Title,
		Message: n.Message,
		Read:    false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.System,
			ModifiedBy: constant.System,
		},
	}
}

type UpdateNotificationRequest struct {
	Read *bool `db:"read" json:"read,omitempty"`
}

type NotificationResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Type = model.Type
	r.Title = model.Title
	r.Message = model.Message
	r.Read = model.Read
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
