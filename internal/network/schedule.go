package network

import (
	"fmt"
	"math"
)

// MaxSteps caps the number of times a schedule may produce.
const MaxSteps = 10_000_000

// Schedule describes the simulation times a network is stepped through:
// Start, Start+Step, ... up to and including End when End lands on a step.
type Schedule struct {
	Start float64
	End   float64
	Step  float64
}

// stepEpsilon absorbs rounding in (End-Start)/Step so that End is included
// when it is a whole number of steps away from Start.
const stepEpsilon = 1e-9

// Len returns the number of times in the schedule.
func (s Schedule) Len() (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return int(s.steps()) + 1, nil
}

// At returns the i-th time. It is computed as Start + i*Step rather than
// by accumulation, so long schedules do not drift.
func (s Schedule) At(i int) float64 {
	return s.Start + float64(i)*s.Step
}

// Times returns every time in the schedule.
func (s Schedule) Times() ([]float64, error) {
	n, err := s.Len()
	if err != nil {
		return nil, err
	}

	times := make([]float64, n)
	for i := range times {
		times[i] = s.At(i)
	}
	return times, nil
}

// steps is the index of the last time, before any bounds check.
func (s Schedule) steps() float64 {
	return math.Floor((s.End-s.Start)/s.Step + stepEpsilon)
}

// Validate reports whether the schedule can produce times.
func (s Schedule) Validate() error {
	for _, v := range []float64{s.Start, s.End, s.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("schedule values must be finite (start=%v end=%v step=%v)", s.Start, s.End, s.Step)
		}
	}
	if s.Step <= 0 {
		return fmt.Errorf("schedule step must be positive, got %v", s.Step)
	}
	if s.End < s.Start {
		return fmt.Errorf("schedule end %v is before start %v", s.End, s.Start)
	}
	// End-Start can overflow to +Inf even when both ends are finite.
	if n := s.steps(); math.IsInf(n, 0) || math.IsNaN(n) || n >= MaxSteps {
		return fmt.Errorf("schedule has too many steps (start=%v end=%v step=%v, limit %d)", s.Start, s.End, s.Step, MaxSteps)
	}
	return nil
}
