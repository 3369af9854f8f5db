package scheduling

import (
	"fmt"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
	"github.com/AgileExecutives/ae-scheduler/internal/pkg/timeutil"
)

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not count.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// IsBooked reports whether any non-cancelled appointment on the given date
// overlaps the [startTime,endTime) window. Pure predicate, O(appointments).
func IsBooked(appointments []domain.Appointment, date, startTime, endTime string) (bool, error) {
	s, err := timeutil.ParseClock(startTime)
	if err != nil {
		return false, err
	}
	e, err := timeutil.ParseClock(endTime)
	if err != nil {
		return false, err
	}

	for _, a := range appointments {
		if a.Date != date || a.Status == domain.AppointmentCancelled {
			continue
		}
		as, err := timeutil.ParseClock(a.StartTime)
		if err != nil {
			return false, fmt.Errorf("appointment %s: %w", a.ID, err)
		}
		ae, err := timeutil.ParseClock(a.EndTime)
		if err != nil {
			return false, fmt.Errorf("appointment %s: %w", a.ID, err)
		}
		if Overlaps(s, e, as, ae) {
			return true, nil
		}
	}
	return false, nil
}
