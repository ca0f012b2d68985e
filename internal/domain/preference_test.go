package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

func TestParseStaffPreference(t *testing.T) {
	empty := ""
	anyStaff := "any"
	specific := "staff7"

	assert.Equal(t, NoStaffPreference(), ParseStaffPreference(nil))
	assert.Equal(t, NoStaffPreference(), ParseStaffPreference(&empty))
	assert.Equal(t, AnyStaff(), ParseStaffPreference(&anyStaff))
	assert.Equal(t, SpecificStaff("staff7"), ParseStaffPreference(&specific))
}

func TestStaffPreference_RawRoundTrip(t *testing.T) {
	for _, p := range []StaffPreference{NoStaffPreference(), AnyStaff(), SpecificStaff("s1")} {
		assert.Equal(t, p, ParseStaffPreference(p.Raw()))
	}
}

func TestStaffPreference_Accepts(t *testing.T) {
	s1, s2 := "s1", "s2"

	assert.True(t, NoStaffPreference().Accepts(&s1))
	assert.True(t, AnyStaff().Accepts(&s1))
	assert.True(t, SpecificStaff("s1").Accepts(&s1))
	assert.False(t, SpecificStaff("s1").Accepts(&s2))
	assert.True(t, SpecificStaff("s1").Accepts(nil))
}

func TestTimeRange_Contains(t *testing.T) {
	r := TimeRange{Start: "09:00", End: "12:00"}

	assert.True(t, r.Contains("09:00"))
	assert.True(t, r.Contains("12:00"))
	assert.False(t, r.Contains("08:59"))
	assert.False(t, r.Contains("12:01"))

	assert.True(t, AnyTime().IsAnyTime())
	assert.True(t, AnyTime().Contains(types.TimeString("03:00")))
	assert.False(t, TimeRange{Start: "00:00", End: "23:00"}.IsAnyTime())
}

func TestBooking_FreedSlot(t *testing.T) {
	staff := "s1"
	b := Booking{StaffID: &staff, StartTime: "14:30"}

	slot := b.FreedSlot()
	assert.Nil(t, slot.Date)
	assert.Equal(t, types.TimeString("14:30"), *slot.Time)
	assert.Equal(t, "s1", *slot.StaffID)
	assert.Nil(t, slot.ServiceID)
}

func TestQueueEntry_DurationOr(t *testing.T) {
	assert.Equal(t, 45, (&QueueEntry{EstimatedDurationMinutes: 45}).DurationOr(20))
	assert.Equal(t, 20, (&QueueEntry{}).DurationOr(20))
	assert.Equal(t, DefaultDurationMinutes, (&QueueEntry{}).DurationOr(0))
}
