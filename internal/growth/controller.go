package growth

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Iron-Ham/sprout/internal/catalog"
	"github.com/Iron-Ham/sprout/internal/errors"
	"github.com/Iron-Ham/sprout/internal/logging"
)

// DefaultVirtualDay is the real time that makes one virtual day.
const DefaultVirtualDay = time.Minute

// State is the controller's lifecycle state.
type State int

const (
	// StateSelecting waits for a plant and an area.
	StateSelecting State = iota
	// StateGrowing has an active session advancing with the clock.
	StateGrowing
	// StateHarvested holds a finished session until the next planting.
	StateHarvested
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateGrowing:
		return "growing"
	case StateHarvested:
		return "harvested"
	default:
		return "unknown"
	}
}

// Session is a single planting.
type Session struct {
	Plant       string
	Area        float64
	BaseDays    int
	TotalDays   int
	StartedAt   time.Time
	ElapsedDays int
	Phase       Phase
}

// Snapshot is a value copy of the controller state for readers.
type Snapshot struct {
	State State
	// Session is the zero value while selecting.
	Session
}

// Progress returns ElapsedDays/TotalDays clamped to [0, 1].
func (s Snapshot) Progress() float64 {
	if s.TotalDays <= 0 {
		return 0
	}
	p := float64(s.ElapsedDays) / float64(s.TotalDays)
	return math.Max(0, math.Min(1, p))
}

// PhaseChangeCallback is called after a tick moves a session into a new phase.
type PhaseChangeCallback func(oldPhase, newPhase Phase, snap Snapshot)

// Option configures a Controller.
type Option func(*Controller)

// WithVirtualDay sets the real duration of one virtual day. Non-positive
// values are ignored.
func WithVirtualDay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.virtualDay = d
		}
	}
}

// WithThresholds sets the phase thresholds.
func WithThresholds(th Thresholds) Option {
	return func(c *Controller) {
		c.thresholds = th
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller owns the single growth session and its state machine.
// Time is always passed in, so the controller never reads a clock.
//
// Controller is safe for concurrent use.
type Controller struct {
	mu         sync.Mutex
	catalog    *catalog.Catalog
	virtualDay time.Duration
	thresholds Thresholds
	logger     *logging.Logger

	state   State
	session Session

	onPhaseChange PhaseChangeCallback
}

// NewController creates a controller in the Selecting state.
func NewController(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog:    cat,
		virtualDay: DefaultVirtualDay,
		thresholds: DefaultThresholds(),
		logger:     logging.NopLogger(),
		state:      StateSelecting,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetPhaseChangeCallback registers a callback for phase transitions.
func (c *Controller) SetPhaseChangeCallback(cb PhaseChangeCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPhaseChange = cb
}

// Catalog returns the plant catalog the controller validates against.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// VirtualDay returns the real duration of one virtual day.
func (c *Controller) VirtualDay() time.Duration {
	return c.virtualDay
}

// Thresholds returns the phase thresholds in use.
func (c *Controller) Thresholds() Thresholds {
	return c.thresholds
}

// Plan validates a plant and area and returns the derived, not yet started
// session. It never mutates the controller.
func (c *Controller) Plan(plantName string, area float64) (Session, error) {
	plant, err := c.lookupPlant(plantName)
	if err != nil {
		return Session{}, err
	}
	if math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return Session{}, errors.NewInvalidInputError(errors.ReasonInvalidArea).
			WithField("area").WithValue(area)
	}
	if float64(plant.BaseDays)*area/catalog.ReferenceArea > MaxTotalDays {
		return Session{}, errors.NewInvalidInputError(errors.ReasonInvalidArea).
			WithField("area").WithValue(area)
	}

	return Session{
		Plant:     plant.Name,
		Area:      area,
		BaseDays:  plant.BaseDays,
		TotalDays: TotalDays(plant.BaseDays, area),
		Phase:     PhaseSprout,
	}, nil
}

func (c *Controller) lookupPlant(name string) (catalog.Plant, error) {
	if name == "" || name == catalog.NoneSelected {
		return catalog.Plant{}, errors.NewInvalidInputError(errors.ReasonNoPlantSelected).WithField("plant")
	}
	plant, ok := c.catalog.Lookup(name)
	if !ok {
		return catalog.Plant{}, errors.NewInvalidInputError(errors.ReasonNoPlantSelected).
			WithField("plant").WithValue(name)
	}
	return plant, nil
}

// StartPlanting validates the inputs and begins a new session at now.
// From Harvested it discards the finished session first. While Growing it
// refuses with an InvalidInputError. On any error the controller is left
// unchanged.
func (c *Controller) StartPlanting(plantName string, area float64, now time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateGrowing {
		c.logger.Warn("planting rejected", "reason", errors.ReasonAlreadyGrowing, "plant", plantName)
		return errors.NewInvalidInputError(errors.ReasonAlreadyGrowing)
	}

	session, err := c.Plan(plantName, area)
	if err != nil {
		c.logger.Warn("planting rejected", "reason", errors.ReasonOf(err), "plant", plantName, "area", area)
		return err
	}

	session.StartedAt = now
	c.session = session
	c.state = StateGrowing

	c.logger.WithPlant(session.Plant).Info("planting started",
		"area", session.Area,
		"total_days", session.TotalDays,
		"virtual_day", c.virtualDay.String(),
	)
	return nil
}

// StartPlantingText is StartPlanting for raw form input. The area text is
// trimmed and may use a decimal comma. The plant is checked before the area.
func (c *Controller) StartPlantingText(plantName, areaText string, now time.Time) error {
	area, err := ParseArea(areaText)
	if err != nil {
		c.logger.Debug("area text not numeric", "area_text", areaText)
		// NaN fails the area check after the state and plant checks.
		area = math.NaN()
	}
	return c.StartPlanting(plantName, area, now)
}

// ParseArea parses an area text field. Non-numeric text yields an
// InvalidInputError with the invalid-area reason; range checks happen in Plan.
func ParseArea(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	area, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError(errors.ReasonInvalidArea).WithField("area").WithValue(text)
	}
	return area, nil
}

// Advance re-derives elapsed days and phase from now. It only changes a
// Growing session; in any other state it returns the current snapshot.
// Calling it twice with the same now gives the same result. A now earlier
// than the start time counts as zero elapsed days.
func (c *Controller) Advance(now time.Time) Snapshot {
	c.mu.Lock()

	if c.state != StateGrowing {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}

	oldPhase := c.session.Phase

	elapsed := now.Sub(c.session.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	days := int64(elapsed / c.virtualDay)
	if days > int64(c.session.TotalDays) {
		days = int64(c.session.TotalDays)
	}
	c.session.ElapsedDays = int(days)
	c.session.Phase = PhaseFor(c.session.ElapsedDays, c.session.TotalDays, c.thresholds)

	if c.session.ElapsedDays >= c.session.TotalDays {
		c.session.ElapsedDays = c.session.TotalDays
		c.session.Phase = PhaseHarvested
		c.state = StateHarvested
		c.logger.WithPlant(c.session.Plant).Info("harvested", "total_days", c.session.TotalDays)
	}

	snap := c.snapshotLocked()
	cb := c.onPhaseChange
	c.mu.Unlock()

	if snap.Phase != oldPhase {
		c.logger.WithPlant(snap.Plant).Debug("phase changed",
			"from", oldPhase.String(),
			"to", snap.Phase.String(),
			"elapsed_days", snap.ElapsedDays,
		)
		if cb != nil {
			cb(oldPhase, snap.Phase, snap)
		}
	}
	return snap
}

// Reset discards the current session and returns to Selecting.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateSelecting {
		c.logger.WithPlant(c.session.Plant).Info("session reset", "from", c.state.String())
	}
	c.session = Session{}
	c.state = StateSelecting
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the current state without advancing it.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	if c.state == StateSelecting {
		return Snapshot{State: StateSelecting}
	}
	return Snapshot{State: c.state, Session: c.session}
}

// NextPhaseAt returns the next phase of a Growing session and the wall-clock
// time at which it begins. ok is false outside Growing.
func (c *Controller) NextPhaseAt() (next Phase, at time.Time, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateGrowing {
		return 0, time.Time{}, false
	}
	s := c.session
	if s.Phase >= PhaseHarvested {
		return 0, time.Time{}, false
	}
	day := FirstDayOf(s.Phase+1, s.TotalDays, c.thresholds)
	next = PhaseFor(day, s.TotalDays, c.thresholds)
	return next, s.StartedAt.Add(time.Duration(day) * c.virtualDay), true
}
