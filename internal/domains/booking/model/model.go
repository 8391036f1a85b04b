package model

import "talentlink/shared/model"

const (
	TableName  = "booking_requests"
	EntityName = "booking_request"

	FieldID         = "id"
	FieldMenteeID   = "mentee_id"
	FieldProviderID = "provider_id"
	FieldSlotID     = "slot_id"
	FieldStatus     = "status"

	// StatusNotSent is the draft state, a request that exists locally but
	// has not been submitted to the provider yet.
	StatusNotSent  = "not_sent"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusCanceled = "canceled"
)

type BookingRequest struct {
	ID         string  `db:"id"`
	MenteeID   string  `db:"mentee_id"`
	ProviderID string  `db:"provider_id"`
	SlotID     *string `db:"slot_id"`
	Status     string  `db:"status"`
	model.Metadata
}

// Open reports whether the request still occupies the mentee-provider pair.
// Approved, rejected and canceled requests no longer block a new draft.
func (b *BookingRequest) Open() bool {
	return b.Status == StatusNotSent || b.Status == StatusPending
}
