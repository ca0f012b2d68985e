package waitlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/ptr"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

func TestEncodeSlot_Nil(t *testing.T) {
	raw, err := encodeSlot(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	slot, err := decodeSlot(nil)
	require.NoError(t, err)
	assert.Nil(t, slot)
}

func TestEncodeSlot_Format(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	slot := &domain.FreedSlot{
		Date:    &date,
		Time:    ptr.Ptr(types.TimeString("10:00")),
		StaffID: ptr.Ptr("staff1"),
	}

	raw, err := encodeSlot(slot)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-05-01","time":"10:00","staffId":"staff1"}`, string(raw))

	decoded, err := decodeSlot(raw)
	require.NoError(t, err)
	assert.True(t, decoded.Date.Equal(date))
	assert.Equal(t, types.TimeString("10:00"), *decoded.Time)
	assert.Nil(t, decoded.ServiceID)
}

func TestDecodeSlot_BadDate(t *testing.T) {
	_, err := decodeSlot([]byte(`{"date":"01.05.2024"}`))
	assert.Error(t, err)
}
