package harness

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/roach88/synsim/internal/network"
)

// TraceEvent records one expectation check.
type TraceEvent struct {
	Seq      int     `json:"seq"`
	Time     float64 `json:"time"`
	Synapse  int     `json:"synapse"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
	Pass     bool    `json:"pass"`
}

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true when every expectation matched.
	Pass bool `json:"pass"`

	// Trace has one event per evaluated expectation, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors holds one message per failed expectation.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// AssertionError describes a weight that did not match.
type AssertionError struct {
	Index     int
	Time      float64
	Synapse   int
	Expected  float64
	Actual    float64
	Tolerance float64
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("expect[%d]: synapse %d at time %v: expected weight %v (±%v), got %v",
		e.Index, e.Synapse, e.Time, e.Expected, e.Tolerance, e.Actual)
}

// Run loads the scenario's records and checks every expectation.
//
// A record stream that fails to decode is an error; failed expectations
// are not, they are reported in the Result.
func Run(scenario *Scenario) (*Result, error) {
	src, closeFn, err := openRecords(scenario)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	n, err := network.LoadReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	slog.Debug("scenario loaded", "scenario", scenario.Name, "synapses", n.Len())

	result := NewResult()
	for i, e := range scenario.Expect {
		if e.Synapse >= n.Len() {
			result.AddError(fmt.Sprintf("expect[%d]: synapse index %d out of range (%d synapses)", i, e.Synapse, n.Len()))
			continue
		}

		n.Step(e.Time)
		actual := n.Weights()[e.Synapse]
		pass := math.Abs(actual-e.Weight) <= e.tolerance()

		result.Trace = append(result.Trace, TraceEvent{
			Seq:      i + 1,
			Time:     e.Time,
			Synapse:  e.Synapse,
			Expected: e.Weight,
			Actual:   actual,
			Pass:     pass,
		})

		if !pass {
			aerr := &AssertionError{
				Index:     i,
				Time:      e.Time,
				Synapse:   e.Synapse,
				Expected:  e.Weight,
				Actual:    actual,
				Tolerance: e.tolerance(),
			}
			result.AddError(aerr.Error())
		}
	}

	slog.Debug("scenario finished", "scenario", scenario.Name, "pass", result.Pass)
	return result, nil
}

func openRecords(scenario *Scenario) (io.Reader, func(), error) {
	if scenario.RecordsFile == "" {
		return strings.NewReader(scenario.Records), func() {}, nil
	}
	f, err := os.Open(scenario.RecordsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open records file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
