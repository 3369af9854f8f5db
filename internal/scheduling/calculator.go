// Package scheduling is the appointment availability engine: slot
// generation from the weekly template, conflict resolution against the
// appointment list, and recurring-booking planning with transactional
// commit.
package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
	"github.com/AgileExecutives/ae-scheduler/internal/pkg/timeutil"
)

// SlotsForDay enumerates every theoretically bookable slot for one calendar
// day from the weekly template alone; existing bookings are not consulted.
// Within each open range the walk advances by slotDuration+bufferTime and
// stops as soon as a full slot no longer fits; leftover minutes produce no
// partial slot. The template is trusted not to self-overlap.
func SlotsForDay(date time.Time, cfg domain.BookingConfig) ([]domain.TimeSlot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	day := timeutil.FormatDate(date)
	step := cfg.SlotDuration + cfg.BufferTime

	slots := []domain.TimeSlot{}
	for _, r := range cfg.WeeklyAvailability.Ranges(domain.WeekdayOf(date)) {
		start, err := timeutil.ParseClock(r.Start)
		if err != nil {
			return nil, fmt.Errorf("template range start: %w", err)
		}
		end, err := timeutil.ParseClock(r.End)
		if err != nil {
			return nil, fmt.Errorf("template range end: %w", err)
		}

		for cur := start; cur+cfg.SlotDuration <= end; cur += step {
			from := timeutil.FormatClock(cur)
			slots = append(slots, domain.TimeSlot{
				ID:          SlotID(day, from),
				Date:        day,
				StartTime:   from,
				EndTime:     timeutil.FormatClock(cur + cfg.SlotDuration),
				TimeOfDay:   timeOfDay(cur),
				IsAvailable: true,
			})
		}
	}
	return slots, nil
}

// SlotID derives the deterministic slot identifier from date and start
// time; unique within a date.
func SlotID(date, startTime string) string {
	return date + "-" + strings.ReplaceAll(startTime, ":", "")
}

// Fixed boundaries: before 12:00 morning, before 17:00 afternoon, evening
// after that.
func timeOfDay(startMinutes int) domain.TimeOfDay {
	switch hour := startMinutes / 60; {
	case hour < 12:
		return domain.Morning
	case hour < 17:
		return domain.Afternoon
	default:
		return domain.Evening
	}
}
