package growth

import (
	"math"

	"github.com/Iron-Ham/sprout/internal/catalog"
)

// Phase is one of the four visual growth stages.
type Phase int

const (
	// PhaseSprout is the first stage (broto).
	PhaseSprout Phase = iota
	// PhaseGrowing is reached at the sprout threshold (crescimento).
	PhaseGrowing
	// PhaseAlmostRipe is reached at the ripening threshold (quase maduro).
	PhaseAlmostRipe
	// PhaseHarvested is reached when every virtual day has passed (colhido).
	PhaseHarvested
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSprout:
		return "sprout"
	case PhaseGrowing:
		return "growing"
	case PhaseAlmostRipe:
		return "almost_ripe"
	case PhaseHarvested:
		return "harvested"
	default:
		return "unknown"
	}
}

// Thresholds are the elapsed/total ratios at which phases 1 and 2 start.
// Phase 3 always starts at ratio 1.
type Thresholds struct {
	Sprout   float64
	Ripening float64
}

// DefaultThresholds returns the 0.3 / 0.7 split.
func DefaultThresholds() Thresholds {
	return Thresholds{Sprout: 0.3, Ripening: 0.7}
}

// PhaseFor maps elapsed virtual days to a phase, checking the highest
// phase first. A non-positive total is treated as already harvested.
func PhaseFor(elapsed, total int, th Thresholds) Phase {
	if total <= 0 || elapsed >= total {
		return PhaseHarvested
	}
	ratio := float64(elapsed) / float64(total)
	switch {
	case ratio >= th.Ripening:
		return PhaseAlmostRipe
	case ratio >= th.Sprout:
		return PhaseGrowing
	default:
		return PhaseSprout
	}
}

// MaxTotalDays bounds the derived duration. Together with the one-day cap
// on the virtual day length it keeps every phase start within time.Duration.
const MaxTotalDays = 100_000

// TotalDays returns ceil(baseDays × area / 100), never less than 1 for a
// positive area. Callers validate area first.
func TotalDays(baseDays int, area float64) int {
	days := math.Ceil(float64(baseDays) * area / catalog.ReferenceArea)
	if days < 1 {
		return 1
	}
	if days > MaxTotalDays {
		return MaxTotalDays
	}
	return int(days)
}

// FirstDayOf returns the first virtual day on which the phase is at least p.
func FirstDayOf(p Phase, total int, th Thresholds) int {
	var ratio float64
	switch p {
	case PhaseSprout:
		return 0
	case PhaseGrowing:
		ratio = th.Sprout
	case PhaseAlmostRipe:
		ratio = th.Ripening
	default:
		return total
	}

	// Start from the arithmetic estimate and correct for float rounding.
	d := int(math.Ceil(float64(total) * ratio))
	for d > 0 && PhaseFor(d-1, total, th) >= p {
		d--
	}
	for d < total && PhaseFor(d, total, th) < p {
		d++
	}
	return d
}
