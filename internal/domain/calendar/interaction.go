package calendar

import (
	"errors"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

type State int

const (
	Idle State = iota
	Dragging
	AwaitingDropChoice
	ResizingTop
	ResizingBottom
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case AwaitingDropChoice:
		return "awaiting_drop_choice"
	case ResizingTop:
		return "resizing_top"
	case ResizingBottom:
		return "resizing_bottom"
	default:
		return "idle"
	}
}

var ErrInvalidState = errors.New("calendar: gesture not allowed in current state")

// Interaction follows one pointer gesture at a time. It is not safe for
// concurrent use; each agenda view owns its own.
type Interaction struct {
	cfg   Config
	state State

	apt     models.Appointment
	target  Slot
	originY float64

	origStart int
	origDur   int

	skipClick bool
}

func NewInteraction(cfg Config) *Interaction {
	return &Interaction{cfg: cfg}
}

func (in *Interaction) State() State { return in.state }

// Listening reports whether global pointer-move and pointer-up handlers
// should be installed.
func (in *Interaction) Listening() bool {
	switch in.state {
	case Dragging, ResizingTop, ResizingBottom:
		return true
	}
	return false
}

// ConsumeClick reports whether the click that follows a release must be
// ignored, and clears the flag.
func (in *Interaction) ConsumeClick() bool {
	skip := in.skipClick
	in.skipClick = false
	return skip
}

func (in *Interaction) BeginDrag(ap models.Appointment) error {
	if in.state != Idle {
		return ErrInvalidState
	}
	in.apt = ap
	in.state = Dragging
	return nil
}

// Drop releases a drag over slot. The caller must then choose move or copy.
func (in *Interaction) Drop(slot Slot) error {
	if in.state != Dragging {
		return ErrInvalidState
	}
	in.target = slot
	in.state = AwaitingDropChoice
	in.skipClick = true
	return nil
}

// Choose resolves a pending drop.
func (in *Interaction) Choose(mode DropMode) (models.Appointment, error) {
	if in.state != AwaitingDropChoice {
		return models.Appointment{}, ErrInvalidState
	}
	out, err := in.cfg.ApplyDrop(in.apt, in.target, mode)
	if err != nil {
		return models.Appointment{}, err
	}
	in.reset()
	return out, nil
}

// Cancel abandons whatever gesture is in progress.
func (in *Interaction) Cancel() {
	if in.state != Idle && in.state != AwaitingDropChoice {
		in.skipClick = true
	}
	in.reset()
}

func (in *Interaction) BeginResize(ap models.Appointment, edge Edge, y float64) error {
	if in.state != Idle {
		return ErrInvalidState
	}
	start, err := timezone.ParseClock(ap.StartTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	switch edge {
	case EdgeTop:
		in.state = ResizingTop
	case EdgeBottom:
		in.state = ResizingBottom
	default:
		return httperr.ErrBusiness("invalid_edge")
	}
	in.apt = ap
	in.originY = y
	in.origStart = start
	in.origDur = ap.DurationMinutes
	return nil
}

// PointerMove returns the unsnapped preview for the pointer at y.
func (in *Interaction) PointerMove(y float64) (Change, error) {
	edge, ok := in.resizeEdge()
	if !ok {
		return Change{}, ErrInvalidState
	}
	return in.cfg.Resize(edge, in.origStart, in.origDur, y-in.originY, false)
}

// PointerUp releases the resize at y and returns the snapped appointment.
func (in *Interaction) PointerUp(y float64) (models.Appointment, error) {
	edge, ok := in.resizeEdge()
	if !ok {
		return models.Appointment{}, ErrInvalidState
	}
	out, err := in.cfg.ApplyResize(in.apt, edge, y-in.originY)
	if err != nil {
		return models.Appointment{}, err
	}
	in.reset()
	in.skipClick = true
	return out, nil
}

func (in *Interaction) resizeEdge() (Edge, bool) {
	switch in.state {
	case ResizingTop:
		return EdgeTop, true
	case ResizingBottom:
		return EdgeBottom, true
	}
	return "", false
}

func (in *Interaction) reset() {
	in.state = Idle
	in.apt = models.Appointment{}
	in.target = Slot{}
	in.originY = 0
	in.origStart = 0
	in.origDur = 0
}
