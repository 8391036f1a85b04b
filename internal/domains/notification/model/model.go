package model

import "talentlink/shared/model"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID      = "id"
	FieldUserID  = "user_id"
	FieldType    = "type"
	FieldTitle   = "title"
	FieldMessage = "message"
	FieldRead    = "read"

	TypeBookingSent     = "booking_sent"
	TypeBookingApproved = "booking_approved"
	TypeBookingRejected = "booking_rejected"
	TypeBookingCanceled = "booking_canceled"
	TypeFriendRequest   = "friend_request"
	TypeFriendAccepted  = "friend_accepted"
	TypeSessionReminder = "session_reminder"
)

type Notification struct {
	ID      string `db:"id"`
	UserID  string `db:"user_id"`
	Type    string `db:"type"`
	Title   string `db:"title"`
	Message string `db:"message"`
	Read    bool   `db:"read"`
	model.Metadata
}
