// Package calendar turns pointer gestures on the agenda grid into schedule
// changes: drag and drop (move or copy) and resizing from either edge.
package calendar

import (
	"math"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

type DropMode string

const (
	DropMove DropMode = "move"
	DropCopy DropMode = "copy"
)

// Config describes the visible grid. Times are minutes since midnight.
type Config struct {
	PixelsPerHour float64
	DayStart      int
	DayEnd        int
	SlotMinutes   int
	MinDuration   int
}

func DefaultConfig() Config {
	return Config{
		PixelsPerHour: 60,
		DayStart:      8 * 60,
		DayEnd:        20 * 60,
		SlotMinutes:   15,
		MinDuration:   15,
	}
}

// Slot is a drop target on the grid.
type Slot struct {
	Date string `json:"date"`
	Hour int    `json:"hour"`
}

// Change is the start and duration an appointment would get.
type Change struct {
	StartMinutes    int `json:"start_minutes"`
	DurationMinutes int `json:"duration_minutes"`
	// StartKept is set when a top resize would leave the visible window.
	StartKept bool `json:"start_kept"`
}

// Minutes converts a vertical pointer delta to minutes, unsnapped.
func (c Config) Minutes(deltaPixels float64) float64 {
	if c.PixelsPerHour <= 0 {
		return 0
	}
	return deltaPixels / c.PixelsPerHour * 60
}

func (c Config) snap(minutes float64) float64 {
	if c.SlotMinutes <= 0 {
		return minutes
	}
	step := float64(c.SlotMinutes)
	return math.Round(minutes/step) * step
}

func (c Config) inWindow(start int) bool {
	return start >= c.DayStart && start <= c.DayEnd
}

// Resize computes the change for an edge dragged by deltaPixels (positive is
// downwards). With snap false the result is the live preview; with snap true
// the delta is rounded to the nearest slot, as on release.
func (c Config) Resize(edge Edge, start, duration int, deltaPixels float64, snap bool) (Change, error) {
	delta := c.Minutes(deltaPixels)
	if snap {
		delta = c.snap(delta)
	}

	switch edge {
	case EdgeBottom:
		dur := int(math.Round(float64(duration) + delta))
		if dur < c.MinDuration {
			dur = c.MinDuration
		}
		return Change{StartMinutes: start, DurationMinutes: dur}, nil

	case EdgeTop:
		// The top edge can move down at most until MinDuration is left, and
		// never down at all when the appointment is already shorter.
		shift := int(math.Round(delta))
		if limit := max(0, duration-c.MinDuration); shift > limit {
			shift = limit
		}
		ch := Change{StartMinutes: start + shift, DurationMinutes: duration - shift}
		if !c.inWindow(ch.StartMinutes) {
			ch.StartMinutes = start
			ch.StartKept = true
		}
		return ch, nil
	}

	return Change{}, httperr.ErrBusiness("invalid_edge")
}

// ApplyResize releases a resize gesture on ap.
func (c Config) ApplyResize(ap models.Appointment, edge Edge, deltaPixels float64) (models.Appointment, error) {
	start, err := timezone.ParseClock(ap.StartTime)
	if err != nil {
		return ap, httperr.ErrBusiness("invalid_date_or_time")
	}
	ch, err := c.Resize(edge, start, ap.DurationMinutes, deltaPixels, true)
	if err != nil {
		return ap, err
	}
	ap.StartTime = timezone.FormatClock(ch.StartMinutes)
	ap.DurationMinutes = ch.DurationMinutes
	return ap, nil
}

// ApplyDrop places ap on slot. Move keeps the id; copy returns a new
// appointment without one.
func (c Config) ApplyDrop(ap models.Appointment, slot Slot, mode DropMode) (models.Appointment, error) {
	if _, err := timezone.ParseDate(slot.Date); err != nil {
		return ap, httperr.ErrBusiness("invalid_date_or_time")
	}
	start := slot.Hour * 60
	if slot.Hour < 0 || slot.Hour > 23 || start < c.DayStart || start >= c.DayEnd {
		return ap, httperr.ErrBusiness("outside_window")
	}

	clock := timezone.FormatClock(start)
	switch mode {
	case DropMove:
		return appointment.Move(ap, slot.Date, clock), nil
	case DropCopy:
		return appointment.Copy(ap, slot.Date, clock), nil
	}
	return ap, httperr.ErrBusiness("invalid_drop_mode")
}
