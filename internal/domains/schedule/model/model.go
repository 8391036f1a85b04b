package model

import (
	"time"

	"talentlink/shared/model"
)

const (
	TableName  = "slots"
	EntityName = "slot"

	FieldID         = "id"
	FieldProviderID = "provider_id"
	FieldSlotDate   = "slot_date"
	FieldStartTime  = "start_time"
	FieldAvailable  = "available"
)

type Slot struct {
	ID         string    `db:"id"`
	ProviderID string    `db:"provider_id"`
	SlotDate   time.Time `db:"slot_date"`
	StartTime  time.Time `db:"start_time"`
	Available  bool      `db:"available"`
	model.Metadata
}

// StartAt combines the slot date and start time into a single instant.
func (s *Slot) StartAt(loc *time.Location) time.Time {
	return time.Date(
		s.SlotDate.Year(), s.SlotDate.Month(), s.SlotDate.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, loc,
	)
}
