// Package growth implements the plant growth state machine.
//
// A [Controller] moves through three states:
//
//	Selecting --StartPlanting--> Growing --Advance (all days elapsed)--> Harvested
//	    ^                                                                   |
//	    +----------------------------- Reset / StartPlanting ---------------+
//
// Elapsed virtual days are floor((now - start) / virtualDay), clamped to
// [0, TotalDays]. The phase is a pure function of elapsed/total (see
// [PhaseFor]). No method reads the wall clock: callers pass now in, which
// keeps every transition deterministic under test.
package growth
