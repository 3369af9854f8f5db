package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mondayConfig(ranges ...domain.TimeRange) domain.BookingConfig {
	return domain.BookingConfig{
		SlotDuration:   60,
		BufferTime:     0,
		MaxSeriesCount: 10,
		WeeklyAvailability: domain.WeeklyAvailability{
			domain.Monday: ranges,
		},
	}
}

func TestSlotsForDay_WalksRangeWithBuffer(t *testing.T) {
	cfg := domain.BookingConfig{
		SlotDuration:   30,
		BufferTime:     15,
		MaxSeriesCount: 4,
		WeeklyAvailability: domain.WeeklyAvailability{
			domain.Monday: {{Start: "09:00", End: "12:00"}},
		},
	}

	slots, err := SlotsForDay(monday, cfg)

	assert.NoError(t, err)
	if assert.Len(t, slots, 4) {
		starts := []string{slots[0].StartTime, slots[1].StartTime, slots[2].StartTime, slots[3].StartTime}
		assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, starts)
		for _, s := range slots {
			assert.Equal(t, "2026-03-02", s.Date)
			assert.Equal(t, domain.Morning, s.TimeOfDay)
			assert.True(t, s.IsAvailable)
		}
		assert.Equal(t, "09:30", slots[0].EndTime)
	}
}

func TestSlotsForDay_NoPartialSlots(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "10:15"})

	slots, err := SlotsForDay(monday, cfg)

	assert.NoError(t, err)
	if assert.Len(t, slots, 1) {
		assert.Equal(t, "09:00", slots[0].StartTime)
		assert.Equal(t, "10:00", slots[0].EndTime)
	}
}

func TestSlotsForDay_Deterministic(t *testing.T) {
	cfg := mondayConfig(
		domain.TimeRange{Start: "09:00", End: "12:00"},
		domain.TimeRange{Start: "14:00", End: "17:00"},
	)

	first, err := SlotsForDay(monday, cfg)
	assert.NoError(t, err)
	second, err := SlotsForDay(monday, cfg)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSlotsForDay_UnsetWeekdayYieldsNothing(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "17:00"})
	sunday := monday.AddDate(0, 0, -1)

	slots, err := SlotsForDay(sunday, cfg)

	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlotsForDay_TimeOfDayBoundaries(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "11:00", End: "19:00"})

	slots, err := SlotsForDay(monday, cfg)

	assert.NoError(t, err)
	if assert.Len(t, slots, 8) {
		assert.Equal(t, domain.Morning, slots[0].TimeOfDay)   // 11:00
		assert.Equal(t, domain.Afternoon, slots[1].TimeOfDay) // 12:00
		assert.Equal(t, domain.Afternoon, slots[5].TimeOfDay) // 16:00
		assert.Equal(t, domain.Evening, slots[6].TimeOfDay)   // 17:00
	}
}

func TestSlotsForDay_MalformedTemplateFailsFast(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "9am", End: "17:00"})

	_, err := SlotsForDay(monday, cfg)

	assert.Error(t, err)
}

func TestSlotsForDay_RejectsBadConfig(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "17:00"})
	cfg.SlotDuration = 0

	_, err := SlotsForDay(monday, cfg)
	assert.ErrorIs(t, err, domain.ErrBadSlotDuration)

	cfg.SlotDuration = 60
	cfg.MaxSeriesCount = 0
	_, err = SlotsForDay(monday, cfg)
	assert.ErrorIs(t, err, domain.ErrBadMaxSeriesCount)
}

func TestSlotID_DeterministicPerDateAndStart(t *testing.T) {
	assert.Equal(t, "2026-03-02-0900", SlotID("2026-03-02", "09:00"))
	assert.NotEqual(t, SlotID("2026-03-02", "09:00"), SlotID("2026-03-09", "09:00"))
}
