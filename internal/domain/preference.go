package domain

import "github.com/asharptechsolutions/stylist-scheduler/pkg/types"

// StaffPreferenceKind distinguishes an absent preference from the explicit "any" wildcard
type StaffPreferenceKind int

const (
	StaffPreferenceNone StaffPreferenceKind = iota
	StaffPreferenceAny
	StaffPreferenceSpecific
)

// StaffPreference is a tagged optional: none, any, or a specific staff member
type StaffPreference struct {
	Kind    StaffPreferenceKind
	StaffID string
}

// NoStaffPreference returns an absent preference
func NoStaffPreference() StaffPreference {
	return StaffPreference{Kind: StaffPreferenceNone}
}

// AnyStaff returns the explicit wildcard preference
func AnyStaff() StaffPreference {
	return StaffPreference{Kind: StaffPreferenceAny}
}

// SpecificStaff returns a preference for one staff member
func SpecificStaff(id string) StaffPreference {
	return StaffPreference{Kind: StaffPreferenceSpecific, StaffID: id}
}

// ParseStaffPreference maps the stored representation onto the tagged form.
// nil and "" are none, "any" is the wildcard, everything else is a specific id.
func ParseStaffPreference(raw *string) StaffPreference {
	if raw == nil || *raw == "" {
		return NoStaffPreference()
	}
	if *raw == AnyStaffSentinel {
		return AnyStaff()
	}
	return SpecificStaff(*raw)
}

// Raw returns the stored representation
func (p StaffPreference) Raw() *string {
	switch p.Kind {
	case StaffPreferenceAny:
		v := AnyStaffSentinel
		return &v
	case StaffPreferenceSpecific:
		v := p.StaffID
		return &v
	default:
		return nil
	}
}

// IsSpecific returns true if the preference names one staff member
func (p StaffPreference) IsSpecific() bool {
	return p.Kind == StaffPreferenceSpecific
}

// Accepts reports whether a slot served by staffID satisfies the preference.
// An unknown slot staff is treated as a wildcard.
func (p StaffPreference) Accepts(staffID *string) bool {
	if !p.IsSpecific() || staffID == nil {
		return true
	}
	return p.StaffID == *staffID
}

// TimeRange is an inclusive time-of-day window
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// AnyTime returns the 00:00-23:59 wildcard range
func AnyTime() TimeRange {
	return TimeRange{Start: AnyTimeStart, End: AnyTimeEnd}
}

// IsAnyTime reports whether the range is exactly the wildcard sentinel
func (r TimeRange) IsAnyTime() bool {
	return r.Start == AnyTimeStart && r.End == AnyTimeEnd
}

// Contains reports whether t lies within [Start, End], both ends inclusive
func (r TimeRange) Contains(t types.TimeString) bool {
	if r.IsAnyTime() {
		return true
	}
	m := t.Minutes()
	return r.Start.Minutes() <= m && m <= r.End.Minutes()
}
