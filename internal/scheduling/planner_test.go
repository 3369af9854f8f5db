package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
)

func testPlanner(t *testing.T, now time.Time, existing ...domain.Appointment) (*Planner, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	if len(existing) > 0 {
		require.NoError(t, store.Append(context.Background(), existing))
	}
	p := NewPlanner(store, nil)
	p.now = func() time.Time { return now }
	return p, store
}

func slotOn(date, start, end string) domain.TimeSlot {
	return domain.TimeSlot{
		ID:        SlotID(date, start),
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestDayAvailability_AggregatesAndDerivesStatus(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	p, _ := testPlanner(t, monday.AddDate(0, 0, -7),
		confirmed("2026-03-02", "10:00", "11:00"),
	)

	day, err := p.DayAvailability(context.Background(), monday, cfg)

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-02", day.Date)
	assert.Equal(t, 3, day.TotalCount)
	assert.Equal(t, 2, day.AvailableCount)
	assert.Equal(t, domain.DayPartial, day.Status)
	require.Len(t, day.Slots, 3)
	assert.True(t, day.Slots[0].IsAvailable)  // 09:00
	assert.False(t, day.Slots[1].IsAvailable) // 10:00 booked
	assert.True(t, day.Slots[2].IsAvailable)  // 11:00
}

func TestDayAvailability_EmptyTemplateDayIsNone(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	p, _ := testPlanner(t, monday)

	day, err := p.DayAvailability(context.Background(), monday.AddDate(0, 0, 1), cfg)

	assert.NoError(t, err)
	assert.Equal(t, 0, day.TotalCount)
	assert.Equal(t, domain.DayNone, day.Status)
	assert.Empty(t, day.Slots)
}

func TestDayAvailability_FullyBookedIsNone(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "10:00"})
	p, _ := testPlanner(t, monday.AddDate(0, 0, -7),
		confirmed("2026-03-02", "09:00", "10:00"),
	)

	day, err := p.DayAvailability(context.Background(), monday, cfg)

	assert.NoError(t, err)
	assert.Equal(t, domain.DayNone, day.Status)
}

func TestDayAvailability_MinAdvanceHoursMasksNearSlots(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	cfg.MinAdvanceHours = 2
	// 08:30 on the queried Monday: 09:00 and 10:00 fall inside the
	// 2h lead window, 11:00 does not.
	p, _ := testPlanner(t, monday.Add(8*time.Hour+30*time.Minute))

	day, err := p.DayAvailability(context.Background(), monday, cfg)

	assert.NoError(t, err)
	assert.Equal(t, 1, day.AvailableCount)
	assert.False(t, day.Slots[0].IsAvailable)
	assert.False(t, day.Slots[1].IsAvailable)
	assert.True(t, day.Slots[2].IsAvailable)
}

func TestMonthData_ExcludesPastAndBeyondHorizon(t *testing.T) {
	cfg := domain.BookingConfig{
		SlotDuration:   60,
		MaxSeriesCount: 10,
		WeeklyAvailability: domain.WeeklyAvailability{
			domain.Monday:    {{Start: "09:00", End: "12:00"}},
			domain.Tuesday:   {{Start: "09:00", End: "12:00"}},
			domain.Wednesday: {{Start: "09:00", End: "12:00"}},
			domain.Thursday:  {{Start: "09:00", End: "12:00"}},
			domain.Friday:    {{Start: "09:00", End: "12:00"}},
			domain.Saturday:  {{Start: "09:00", End: "12:00"}},
			domain.Sunday:    {{Start: "09:00", End: "12:00"}},
		},
	}
	horizon := 3
	cfg.MaxAdvanceDays = &horizon
	// Today is 2026-03-10; horizon covers the 10th through the 13th.
	p, _ := testPlanner(t, time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC))

	month, err := p.MonthData(context.Background(), 2026, 3, cfg)

	assert.NoError(t, err)
	assert.Equal(t, 2026, month.Year)
	assert.Equal(t, 3, month.Month)
	require.Len(t, month.Days, 4)
	assert.Equal(t, "2026-03-10", month.Days[0].Date)
	assert.Equal(t, "2026-03-13", month.Days[3].Date)
}

func TestMonthData_ZeroAdvanceDaysKeepsOnlyToday(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	zero := 0
	cfg.MaxAdvanceDays = &zero
	p, _ := testPlanner(t, monday.Add(10*time.Hour))

	month, err := p.MonthData(context.Background(), 2026, 3, cfg)

	assert.NoError(t, err)
	require.Len(t, month.Days, 1)
	assert.Equal(t, "2026-03-02", month.Days[0].Date)
}

func TestMonthData_NoHorizonKeepsRestOfMonth(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	p, _ := testPlanner(t, time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC))

	month, err := p.MonthData(context.Background(), 2026, 3, cfg)

	assert.NoError(t, err)
	require.Len(t, month.Days, 2) // 30th and 31st
	assert.Equal(t, "2026-03-30", month.Days[0].Date)
	assert.Equal(t, "2026-03-31", month.Days[1].Date)
}

func TestMonthData_RejectsBadMonth(t *testing.T) {
	p, _ := testPlanner(t, monday)

	_, err := p.MonthData(context.Background(), 2026, 13, mondayConfig())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSeriesAvailability_OnceIsAlwaysOne(t *testing.T) {
	p, _ := testPlanner(t, monday)
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})

	n, err := p.SeriesAvailability(context.Background(), slotOn("2026-03-02", "09:00", "10:00"), domain.RecurrenceOnce, cfg)

	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeriesAvailability_TruncatesAtFirstConflict(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	cfg.MaxSeriesCount = 5
	// Conflict on the third weekly occurrence (2026-03-16).
	p, _ := testPlanner(t, monday.AddDate(0, 0, -7),
		confirmed("2026-03-16", "09:00", "10:00"),
	)

	n, err := p.SeriesAvailability(context.Background(), slotOn("2026-03-02", "09:00", "10:00"), domain.RecurrenceWeekly, cfg)

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSeriesAvailability_BiweeklyStepsFourteenDays(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	cfg.MaxSeriesCount = 5
	// A booking seven days out does not touch a biweekly series.
	p, _ := testPlanner(t, monday.AddDate(0, 0, -7),
		confirmed("2026-03-09", "09:00", "10:00"),
	)

	n, err := p.SeriesAvailability(context.Background(), slotOn("2026-03-02", "09:00", "10:00"), domain.RecurrenceBiweekly, cfg)

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestSeriesAvailability_CapsAtMaxSeriesCount(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	cfg.MaxSeriesCount = 3
	p, _ := testPlanner(t, monday)

	n, err := p.SeriesAvailability(context.Background(), slotOn("2026-03-02", "09:00", "10:00"), domain.RecurrenceWeekly, cfg)

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func bookingRequest(recurrence domain.Recurrence, count int) domain.BookingRequest {
	return domain.BookingRequest{
		Slot:        slotOn("2026-03-02", "09:00", "10:00"),
		Name:        "Dana Weber",
		Email:       "dana@example.com",
		Recurrence:  recurrence,
		SeriesCount: count,
	}
}

func TestCreateBooking_SingleOccurrence(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	p, store := testPlanner(t, monday.AddDate(0, 0, -7))

	created, err := p.CreateBooking(context.Background(), bookingRequest(domain.RecurrenceOnce, 1), cfg)

	assert.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "2026-03-02", created[0].Date)
	assert.Equal(t, domain.AppointmentConfirmed, created[0].Status)
	assert.False(t, created[0].IsSeries)
	assert.Empty(t, created[0].SeriesID)
	assert.NotEmpty(t, created[0].ID)

	appts, err := store.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestCreateBooking_WeeklySeriesSharesSeriesID(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	p, _ := testPlanner(t, monday.AddDate(0, 0, -7))

	created, err := p.CreateBooking(context.Background(), bookingRequest(domain.RecurrenceWeekly, 3), cfg)

	assert.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "2026-03-02", created[0].Date)
	assert.Equal(t, "2026-03-09", created[1].Date)
	assert.Equal(t, "2026-03-16", created[2].Date)
	assert.NotEmpty(t, created[0].SeriesID)
	for _, a := range created {
		assert.True(t, a.IsSeries)
		assert.Equal(t, created[0].SeriesID, a.SeriesID)
		assert.Equal(t, domain.RecurrenceWeekly, a.Recurrence)
	}
	assert.NotEqual(t, created[0].ID, created[1].ID)
}

func TestCreateBooking_AllOrNothingOnMidSeriesConflict(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	// Second occurrence (2026-03-09) is already booked.
	p, store := testPlanner(t, monday.AddDate(0, 0, -7),
		confirmed("2026-03-09", "09:00", "10:00"),
	)

	_, err := p.CreateBooking(context.Background(), bookingRequest(domain.RecurrenceWeekly, 3), cfg)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "2026-03-09", conflict.Date)

	appts, err := store.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.Len(t, appts, 1) // only the pre-existing appointment
}

func TestCreateBooking_ValidatesRequest(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	cfg.MaxSeriesCount = 4
	p, _ := testPlanner(t, monday.AddDate(0, 0, -7))

	req := bookingRequest(domain.RecurrenceWeekly, 5)
	_, err := p.CreateBooking(context.Background(), req, cfg)
	assert.ErrorIs(t, err, ErrValidation)

	req = bookingRequest(domain.RecurrenceWeekly, 2)
	req.Name = ""
	_, err = p.CreateBooking(context.Background(), req, cfg)
	assert.ErrorIs(t, err, ErrValidation)

	req = bookingRequest(domain.RecurrenceOnce, 2)
	_, err = p.CreateBooking(context.Background(), req, cfg)
	assert.ErrorIs(t, err, ErrValidation)

	req = bookingRequest("monthly", 2)
	_, err = p.CreateBooking(context.Background(), req, cfg)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancelBooking_FreesTheSlot(t *testing.T) {
	cfg := mondayConfig(domain.TimeRange{Start: "09:00", End: "12:00"})
	p, _ := testPlanner(t, monday.AddDate(0, 0, -7))

	created, err := p.CreateBooking(context.Background(), bookingRequest(domain.RecurrenceOnce, 1), cfg)
	require.NoError(t, err)

	day, err := p.DayAvailability(context.Background(), monday, cfg)
	require.NoError(t, err)
	assert.False(t, day.Slots[0].IsAvailable)

	require.NoError(t, p.CancelBooking(context.Background(), created[0].ID))

	day, err = p.DayAvailability(context.Background(), monday, cfg)
	require.NoError(t, err)
	assert.True(t, day.Slots[0].IsAvailable)
	assert.Equal(t, domain.DayAvailable, day.Status)
}

func TestCancelBooking_UnknownIDFails(t *testing.T) {
	p, _ := testPlanner(t, monday)

	err := p.CancelBooking(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
