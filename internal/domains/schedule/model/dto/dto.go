package dto

import (
	"talentlink/internal/domains/schedule/model"
	"talentlink/shared/constant"
)

type SlotResponse struct {
	ID        string `json:"id"`
	SlotDate  string `json:"slot_date"`
	StartTime string `json:"start_time"`
	Available bool   `json:"available"`
}

func (r *SlotResponse) FromModel(model model.Slot) {
	r.ID = model.ID
	r.SlotDate = model.SlotDate.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime.Format(constant.TimeOnlyFormat)
	r.Available = model.Available
}

type DayScheduleResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type GetScheduleResponse struct {
	ProviderID string                `json:"provider_id"`
	Days       []DayScheduleResponse `json:"days"`
}

// FromModels groups slots per day, preserving the order the slots were
// fetched in. Slots are expected sorted by date then start time.
func (r *GetScheduleResponse) FromModels(providerID string, models []model.Slot) {
	r.ProviderID = providerID
	r.Days = []DayScheduleResponse{}

	dayIndex := map[string]int{}

	for _, mod := range models {
		date := mod.SlotDate.Format(constant.DateOnlyFormat)

		idx, ok := dayIndex[date]
		if !ok {
			r.Days = append(r.Days, DayScheduleResponse{Date: date, Slots: []SlotResponse{}})
			idx = len(r.Days) - 1
			dayIndex[date] = idx
		}

		var slot SlotResponse

		slot.FromModel(mod)
		r.Days[idx].Slots = append(r.Days[idx].Slots, slot)
	}
}
