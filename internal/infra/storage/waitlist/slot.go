package waitlist

import (
	"encoding/json"
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

// slotRecord JSONB-представление предложенного слота
type slotRecord struct {
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	StaffID   *string `json:"staffId,omitempty"`
	ServiceID *string `json:"serviceId,omitempty"`
}

func encodeSlot(slot *domain.FreedSlot) ([]byte, error) {
	if slot == nil {
		return nil, nil
	}

	rec := slotRecord{
		StaffID:   slot.StaffID,
		ServiceID: slot.ServiceID,
	}
	if slot.Date != nil {
		d := slot.Date.Format(domain.DateFormat)
		rec.Date = &d
	}
	if slot.Time != nil {
		t := slot.Time.String()
		rec.Time = &t
	}
	return json.Marshal(rec)
}

func decodeSlot(raw []byte) (*domain.FreedSlot, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rec slotRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	slot := &domain.FreedSlot{
		StaffID:   rec.StaffID,
		ServiceID: rec.ServiceID,
	}
	if rec.Date != nil {
		d, err := time.Parse(domain.DateFormat, *rec.Date)
		if err != nil {
			return nil, err
		}
		slot.Date = &d
	}
	if rec.Time != nil {
		t := types.TimeString(*rec.Time)
		slot.Time = &t
	}
	return slot, nil
}

// slotParam передает JSONB как текст, NULL для пустого слота
func slotParam(raw []byte) interface{} {
	if raw == nil {
		return nil
	}
	return string(raw)
}
