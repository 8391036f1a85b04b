package model

import (
	"time"

	"talentlink/shared/model"
)

const (
	TableName  = "sessions"
	EntityName = "session"

	FieldID               = "id"
	FieldBookingRequestID = "booking_request_id"
	FieldMenteeID         = "mentee_id"
	FieldProviderID       = "provider_id"
	FieldProviderName     = "provider_name"
	FieldScheduledAt      = "scheduled_at"
	FieldStatus           = "status"

	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// Session is a confirmed meeting between a mentee and a provider. The
// provider name is denormalized at approval time so the handoff payload
// survives later provider profile edits.
type Session struct {
	ID               string    `db:"id"`
	BookingRequestID string    `db:"booking_request_id"`
	MenteeID         string    `db:"mentee_id"`
	ProviderID       string    `db:"provider_id"`
	ProviderName     string    `db:"provider_name"`
	ScheduledAt      time.Time `db:"scheduled_at"`
	Status           string    `db:"status"`
	model.Metadata
}
