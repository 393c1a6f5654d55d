package appointment

import (
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

// Interval returns the half-open [start, end) range of ap in minutes since
// the Unix epoch.
func Interval(ap models.Appointment) (start, end int, err error) {
	day, err := timezone.DayOrdinal(ap.Date)
	if err != nil {
		return 0, 0, err
	}
	clock, err := timezone.ParseClock(ap.StartTime)
	if err != nil {
		return 0, 0, err
	}
	start = day*24*60 + clock
	return start, start + ap.DurationMinutes, nil
}

// FindOverlaps lists appointments of the same staff member whose interval
// intersects candidate. Cancelled appointments and the candidate itself are
// ignored. Nothing is rejected here; callers decide what to do.
func FindOverlaps(
	existing []models.Appointment,
	candidate models.Appointment,
	statuses map[string]models.AppStatus,
) []models.Appointment {
	if candidate.StaffID == "" {
		return nil
	}
	cs, ce, err := Interval(candidate)
	if err != nil {
		return nil
	}

	var out []models.Appointment
	for _, ap := range existing {
		if ap.StaffID != candidate.StaffID {
			continue
		}
		if candidate.ID != "" && ap.ID == candidate.ID {
			continue
		}
		st, ok := statuses[ap.StatusID]
		if IsCancelled(st, ok) {
			continue
		}
		s, e, err := Interval(ap)
		if err != nil {
			continue
		}
		if s < ce && e > cs {
			out = append(out, ap)
		}
	}
	return out
}
