package growth

import "time"

// PhaseSpan is the run of virtual days a planting spends in one phase.
type PhaseSpan struct {
	Phase    Phase         `csv:"-"`
	Name     string        `csv:"phase"`
	FirstDay int           `csv:"first_day"`
	LastDay  int           `csv:"last_day"`
	StartsAt time.Duration `csv:"-"`
	Offset   string        `csv:"starts_after"`
}

// Schedule projects the phase spans of a planting without starting it.
// Phases that a short planting skips are left out. The harvested span is
// the single day TotalDays.
func (c *Controller) Schedule(plantName string, area float64) (Session, []PhaseSpan, error) {
	session, err := c.Plan(plantName, area)
	if err != nil {
		return Session{}, nil, err
	}
	return session, ScheduleFor(session.TotalDays, c.thresholds, c.virtualDay), nil
}

// ScheduleFor builds the phase spans for a planting of total days.
func ScheduleFor(total int, th Thresholds, virtualDay time.Duration) []PhaseSpan {
	spans := make([]PhaseSpan, 0, 4)
	for p := PhaseSprout; p <= PhaseHarvested; p++ {
		first := FirstDayOf(p, total, th)
		if PhaseFor(first, total, th) != p {
			continue
		}
		last := total
		if p < PhaseHarvested {
			last = FirstDayOf(p+1, total, th) - 1
		}
		start := time.Duration(first) * virtualDay
		spans = append(spans, PhaseSpan{
			Phase:    p,
			Name:     p.String(),
			FirstDay: first,
			LastDay:  last,
			StartsAt: start,
			Offset:   start.String(),
		})
	}
	return spans
}
