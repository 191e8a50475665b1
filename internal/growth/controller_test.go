package growth

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/sprout/internal/catalog"
	"github.com/Iron-Ham/sprout/internal/errors"
	"github.com/Iron-Ham/sprout/internal/logging"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestController(opts ...Option) *Controller {
	return NewController(catalog.Default(), opts...)
}

// day returns the instant n virtual days after t0 with the default clock.
func day(n int) time.Time {
	return t0.Add(time.Duration(n) * DefaultVirtualDay)
}

func TestNewController(t *testing.T) {
	c := newTestController()

	if c.State() != StateSelecting {
		t.Errorf("State() = %v, want selecting", c.State())
	}
	if c.VirtualDay() != time.Minute {
		t.Errorf("VirtualDay() = %v, want 1m", c.VirtualDay())
	}
	if c.Thresholds() != DefaultThresholds() {
		t.Errorf("Thresholds() = %+v, want defaults", c.Thresholds())
	}
	snap := c.Snapshot()
	if snap.State != StateSelecting || snap.Plant != "" || snap.TotalDays != 0 {
		t.Errorf("Snapshot() = %+v, want empty selecting snapshot", snap)
	}
}

func TestStartPlanting(t *testing.T) {
	c := newTestController()

	if err := c.StartPlanting("🥕 Cenoura", 200, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}

	snap := c.Snapshot()
	if snap.State != StateGrowing {
		t.Errorf("State = %v, want growing", snap.State)
	}
	if snap.Plant != "🥕 Cenoura" {
		t.Errorf("Plant = %q", snap.Plant)
	}
	if snap.TotalDays != 10 {
		t.Errorf("TotalDays = %d, want 10", snap.TotalDays)
	}
	if snap.ElapsedDays != 0 || snap.Phase != PhaseSprout {
		t.Errorf("ElapsedDays/Phase = %d/%v, want 0/sprout", snap.ElapsedDays, snap.Phase)
	}
	if !snap.StartedAt.Equal(t0) {
		t.Errorf("StartedAt = %v, want %v", snap.StartedAt, t0)
	}
}

func TestStartPlantingInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		plant      string
		area       float64
		wantReason string
	}{
		{"none selected", catalog.NoneSelected, 100, errors.ReasonNoPlantSelected},
		{"empty plant", "", 100, errors.ReasonNoPlantSelected},
		{"unknown plant", "🍆 Berinjela", 100, errors.ReasonNoPlantSelected},
		{"zero area", "🍅 Tomate", 0, errors.ReasonInvalidArea},
		{"negative area", "🍅 Tomate", -5, errors.ReasonInvalidArea},
		{"NaN area", "🍅 Tomate", math.NaN(), errors.ReasonInvalidArea},
		{"infinite area", "🍅 Tomate", math.Inf(1), errors.ReasonInvalidArea},
		{"area beyond day cap", "🍅 Tomate", 1e12, errors.ReasonInvalidArea},
		{"plant checked before area", catalog.NoneSelected, -1, errors.ReasonNoPlantSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController()

			err := c.StartPlanting(tt.plant, tt.area, t0)
			if err == nil {
				t.Fatal("StartPlanting() should fail")
			}
			if !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("error %v should wrap ErrInvalidInput", err)
			}
			if got := errors.ReasonOf(err); got != tt.wantReason {
				t.Errorf("reason = %q, want %q", got, tt.wantReason)
			}
			if c.State() != StateSelecting {
				t.Errorf("State() = %v, want selecting", c.State())
			}
			if snap := c.Snapshot(); snap.Session != (Session{}) {
				t.Errorf("session mutated on failure: %+v", snap.Session)
			}
		})
	}
}

func TestStartPlantingWhileGrowing(t *testing.T) {
	c := newTestController()
	if err := c.StartPlanting("🥕 Cenoura", 200, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}

	err := c.StartPlanting("🍅 Tomate", 100, day(1))
	if errors.ReasonOf(err) != errors.ReasonAlreadyGrowing {
		t.Fatalf("second StartPlanting() error = %v, want already growing", err)
	}

	snap := c.Snapshot()
	if snap.Plant != "🥕 Cenoura" || !snap.StartedAt.Equal(t0) {
		t.Errorf("running session was replaced: %+v", snap.Session)
	}
}

func TestStartPlantingText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantDays   int
		wantReason string
	}{
		{"plain", "200", 10, ""},
		{"padded", "  200 ", 10, ""},
		{"decimal point", "150.5", 8, ""},
		{"decimal comma", "150,5", 8, ""},
		{"empty", "", 0, errors.ReasonInvalidArea},
		{"letters", "abc", 0, errors.ReasonInvalidArea},
		{"trailing junk", "12m²", 0, errors.ReasonInvalidArea},
		{"NaN text", "NaN", 0, errors.ReasonInvalidArea},
		{"negative", "-5", 0, errors.ReasonInvalidArea},
		{"zero", "0", 0, errors.ReasonInvalidArea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController()
			err := c.StartPlantingText("🥕 Cenoura", tt.text, t0)

			if tt.wantReason != "" {
				if got := errors.ReasonOf(err); got != tt.wantReason {
					t.Fatalf("reason = %q (err %v), want %q", got, err, tt.wantReason)
				}
				if c.State() != StateSelecting {
					t.Errorf("State() = %v, want selecting", c.State())
				}
				return
			}
			if err != nil {
				t.Fatalf("StartPlantingText(%q) error: %v", tt.text, err)
			}
			if got := c.Snapshot().TotalDays; got != tt.wantDays {
				t.Errorf("TotalDays = %d, want %d", got, tt.wantDays)
			}
		})
	}
}

func TestStartPlantingTextChecksPlantFirst(t *testing.T) {
	c := newTestController()
	err := c.StartPlantingText(catalog.NoneSelected, "abc", t0)
	if got := errors.ReasonOf(err); got != errors.ReasonNoPlantSelected {
		t.Errorf("reason = %q, want %q", got, errors.ReasonNoPlantSelected)
	}

	if err := c.StartPlanting("🍅 Tomate", 33, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}
	err = c.StartPlantingText("🥕 Cenoura", "abc", t0)
	if got := errors.ReasonOf(err); got != errors.ReasonAlreadyGrowing {
		t.Errorf("reason while growing = %q, want %q", got, errors.ReasonAlreadyGrowing)
	}
}

func TestAdvanceCarrotScenario(t *testing.T) {
	c := newTestController()
	if err := c.StartPlanting("🥕 Cenoura", 200, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}

	steps := []struct {
		now       time.Time
		wantDays  int
		wantPhase Phase
		wantState State
	}{
		{t0, 0, PhaseSprout, StateGrowing},
		{day(1).Add(-time.Millisecond), 0, PhaseSprout, StateGrowing},
		{day(2), 2, PhaseSprout, StateGrowing},
		{day(3), 3, PhaseGrowing, StateGrowing},
		{day(6).Add(59 * time.Second), 6, PhaseGrowing, StateGrowing},
		{day(7), 7, PhaseAlmostRipe, StateGrowing},
		{day(9), 9, PhaseAlmostRipe, StateGrowing},
		{day(10), 10, PhaseHarvested, StateHarvested},
	}

	for _, step := range steps {
		snap := c.Advance(step.now)
		if snap.ElapsedDays != step.wantDays || snap.Phase != step.wantPhase || snap.State != step.wantState {
			t.Errorf("Advance(+%v) = days %d phase %v state %v, want %d %v %v",
				step.now.Sub(t0), snap.ElapsedDays, snap.Phase, snap.State,
				step.wantDays, step.wantPhase, step.wantState)
		}
	}
}

func TestAdvanceTomatoScenario(t *testing.T) {
	c := newTestController()
	if err := c.StartPlanting("🍅 Tomate", 33, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}
	if got := c.Snapshot().TotalDays; got != 3 {
		t.Fatalf("TotalDays = %d, want 3", got)
	}

	if snap := c.Advance(day(3)); snap.State != StateHarvested || snap.Phase != PhaseHarvested {
		t.Errorf("Advance(day 3) = %v/%v, want harvested", snap.State, snap.Phase)
	}
}

func TestAdvanceIdempotent(t *testing.T) {
	for _, n := range []int{0, 2, 3, 5, 7, 9, 10, 25} {
		c := newTestController()
		if err := c.StartPlanting("🥕 Cenoura", 200, t0); err != nil {
			t.Fatalf("StartPlanting() error: %v", err)
		}
		now := day(n).Add(17 * time.Second)
		first := c.Advance(now)
		second := c.Advance(now)
		if first != second {
			t.Errorf("day %d: Advance not idempotent: %+v vs %+v", n, first, second)
		}
	}
}

func TestAdvanceClampsPastTotal(t *testing.T) {
	c := newTestController()
	if err := c.StartPlanting("🥕 Cenoura", 200, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}

	snap := c.Advance(day(500))
	if snap.ElapsedDays != 10 {
		t.Errorf("ElapsedDays = %d, want clamped to 10", snap.ElapsedDays)
	}
	if snap.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", snap.Progress())
	}
}

func TestAdvanceClockRollback(t *testing.T) {
	c := newTestController()
	if err := c.StartPlanting("🥕 Cenoura", 200, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}
	c.Advance(day(4))

	snap := c.Advance(t0.Add(-time.Hour))
	if snap.ElapsedDays != 0 {
		t.Errorf("ElapsedDays = %d, want 0 after rollback", snap.ElapsedDays)
	}
	if snap.Phase != PhaseSprout || snap.State != StateGrowing {
		t.Errorf("Phase/State = %v/%v, want sprout/growing", snap.Phase, snap.State)
	}
}

func TestAdvanceOutsideGrowing(t *testing.T) {
	c := newTestController()

	if snap := c.Advance(day(5)); snap.State != StateSelecting {
		t.Errorf("Advance while selecting changed state to %v", snap.State)
	}

	if err := c.StartPlanting("🍅 Tomate", 33, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}
	harvested := c.Advance(day(3))

	// Further ticks are no-ops, even with an earlier clock.
	if snap := c.Advance(t0); snap != harvested {
		t.Errorf("Advance after harvest changed snapshot: %+v", snap)
	}
}

func TestCustomVirtualDayAndThresholds(t *testing.T) {
	c := newTestController(
		WithVirtualDay(time.Second),
		WithThresholds(Thresholds{Sprout: 0.5, Ripening: 0.9}),
		WithVirtualDay(-1), // ignored
	)
	if err := c.StartPlanting("🌽 Milho", 100, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}

	if snap := c.Advance(t0.Add(4 * time.Second)); snap.Phase != PhaseSprout {
		t.Errorf("day 4/10 phase = %v, want sprout", snap.Phase)
	}
	if snap := c.Advance(t0.Add(5 * time.Second)); snap.Phase != PhaseGrowing {
		t.Errorf("day 5/10 phase = %v, want growing", snap.Phase)
	}
	if snap := c.Advance(t0.Add(9 * time.Second)); snap.Phase != PhaseAlmostRipe {
		t.Errorf("day 9/10 phase = %v, want almost ripe", snap.Phase)
	}
}

func TestReset(t *testing.T) {
	c := newTestController()
	if err := c.StartPlanting("🍅 Tomate", 33, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}
	c.Advance(day(3))

	c.Reset()
	if c.State() != StateSelecting {
		t.Errorf("State() = %v after Reset, want selecting", c.State())
	}
	if snap := c.Snapshot(); snap.Plant != "" {
		t.Errorf("session not discarded: %+v", snap)
	}

	// Reset from selecting is harmless
	c.Reset()
	if c.State() != StateSelecting {
		t.Errorf("State() = %v, want selecting", c.State())
	}
}

func TestPlantAgainFromHarvested(t *testing.T) {
	c := newTestController()
	if err := c.StartPlanting("🍅 Tomate", 33, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}
	c.Advance(day(3))

	later := day(10)
	if err := c.StartPlanting("🥔 Batata", 50, later); err != nil {
		t.Fatalf("StartPlanting() from harvested error: %v", err)
	}
	snap := c.Snapshot()
	if snap.State != StateGrowing || snap.Plant != "🥔 Batata" || snap.TotalDays != 3 {
		t.Errorf("snapshot = %+v, want new growing Batata session", snap)
	}
	if !snap.StartedAt.Equal(later) {
		t.Errorf("StartedAt = %v, want %v", snap.StartedAt, later)
	}

	// A rejected replant keeps the harvested session.
	c2 := newTestController()
	_ = c2.StartPlanting("🍅 Tomate", 33, t0)
	c2.Advance(day(3))
	if err := c2.StartPlanting("🍅 Tomate", -1, later); err == nil {
		t.Fatal("expected invalid area error")
	}
	if c2.State() != StateHarvested {
		t.Errorf("State() = %v, want harvested after rejected replant", c2.State())
	}
}

func TestPhaseChangeCallback(t *testing.T) {
	c := newTestController()

	var transitions []string
	c.SetPhaseChangeCallback(func(oldPhase, newPhase Phase, snap Snapshot) {
		transitions = append(transitions, oldPhase.String()+">"+newPhase.String())
	})

	if err := c.StartPlanting("🥕 Cenoura", 200, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}
	for n := 0; n <= 10; n++ {
		c.Advance(day(n))
		c.Advance(day(n)) // repeated ticks do not fire again
	}

	want := "sprout>growing,growing>almost_ripe,almost_ripe>harvested"
	if got := strings.Join(transitions, ","); got != want {
		t.Errorf("transitions = %q, want %q", got, want)
	}
}

func TestNextPhaseAt(t *testing.T) {
	c := newTestController()

	if _, _, ok := c.NextPhaseAt(); ok {
		t.Error("NextPhaseAt() should report false while selecting")
	}

	if err := c.StartPlanting("🥕 Cenoura", 200, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}

	tests := []struct {
		now       time.Time
		wantPhase Phase
		wantAt    time.Time
	}{
		{t0, PhaseGrowing, day(3)},
		{day(4), PhaseAlmostRipe, day(7)},
		{day(8), PhaseHarvested, day(10)},
	}
	for _, tt := range tests {
		c.Advance(tt.now)
		next, at, ok := c.NextPhaseAt()
		if !ok || next != tt.wantPhase || !at.Equal(tt.wantAt) {
			t.Errorf("at +%v: NextPhaseAt() = %v, %v, %v; want %v, %v", tt.now.Sub(t0), next, at, ok, tt.wantPhase, tt.wantAt)
		}
	}

	c.Advance(day(10))
	if _, _, ok := c.NextPhaseAt(); ok {
		t.Error("NextPhaseAt() should report false once harvested")
	}
}

func TestNextPhaseAtSkipsPhases(t *testing.T) {
	c := newTestController()
	// 5 base days × 10 area = 0.5 → 1 day total: sprout goes straight to harvest
	if err := c.StartPlanting("🥕 Cenoura", 10, t0); err != nil {
		t.Fatalf("StartPlanting() error: %v", err)
	}
	next, at, ok := c.NextPhaseAt()
	if !ok || next != PhaseHarvested || !at.Equal(day(1)) {
		t.Errorf("NextPhaseAt() = %v, %v, %v; want harvested at day 1", next, at, ok)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		snap Snapshot
		want float64
	}{
		{Snapshot{}, 0},
		{Snapshot{Session: Session{ElapsedDays: 5, TotalDays: 10}}, 0.5},
		{Snapshot{Session: Session{ElapsedDays: 10, TotalDays: 10}}, 1},
		{Snapshot{Session: Session{ElapsedDays: 15, TotalDays: 10}}, 1},
		{Snapshot{Session: Session{ElapsedDays: -3, TotalDays: 10}}, 0},
	}
	for _, tt := range tests {
		if got := tt.snap.Progress(); got != tt.want {
			t.Errorf("Progress(%d/%d) = %v, want %v", tt.snap.ElapsedDays, tt.snap.TotalDays, got, tt.want)
		}
	}
}

func TestControllerLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	c := newTestController(WithLogger(logging.NewWriterLogger(&buf, logging.LevelDebug)))

	_ = c.StartPlanting(catalog.NoneSelected, 100, t0)
	_ = c.StartPlanting("🍅 Tomate", 33, t0)
	c.Advance(day(3))

	out := buf.String()
	for _, want := range []string{"planting rejected", "no plant selected", "planting started", "harvested", "phase changed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateSelecting, "selecting"},
		{StateGrowing, "growing"},
		{StateHarvested, "harvested"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
