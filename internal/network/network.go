package network

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/synsim/internal/synapse"
)

// Network is an ordered collection of synapses loaded from one record
// stream. It drives the synapses through simulation time; the synapses
// themselves know nothing about each other.
//
// Thread-safety: Network is not safe for concurrent use. Step and Weights
// are expected to be called from a single simulation loop.
type Network struct {
	synapses []*synapse.Synapse
}

// New wraps already constructed synapses.
func New(synapses ...*synapse.Synapse) *Network {
	return &Network{synapses: synapses}
}

// Load decodes records from src until the stream ends cleanly at a record
// boundary. A truncated or malformed record aborts the load; the returned
// error wraps the *synapse.ParseError and names the 1-based record number.
func Load(src synapse.TokenSource) (*Network, error) {
	n := &Network{}
	for {
		s, err := synapse.Decode(src)
		if synapse.IsEndOfStream(err) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(n.synapses)+1, err)
		}
		n.synapses = append(n.synapses, s)
	}

	slog.Debug("network loaded", "synapses", len(n.synapses))
	return n, nil
}

// LoadReader is Load over a whitespace-tokenized reader.
func LoadReader(r io.Reader) (*Network, error) {
	return Load(synapse.NewScanner(r))
}

// Len returns the number of synapses.
func (n *Network) Len() int {
	return len(n.synapses)
}

// Synapses returns the synapses in record order. The slice is a copy; the
// synapses are shared.
func (n *Network) Synapses() []*synapse.Synapse {
	out := make([]*synapse.Synapse, len(n.synapses))
	copy(out, n.synapses)
	return out
}

// Configs returns the static configuration of every synapse in record order.
func (n *Network) Configs() []synapse.Config {
	out := make([]synapse.Config, len(n.synapses))
	for i, s := range n.synapses {
		out[i] = s.Config()
	}
	return out
}

// Step updates every synapse for the given time, in record order.
func (n *Network) Step(time float64) {
	for _, s := range n.synapses {
		s.UpdateWeight(time)
	}
}

// Weights returns a snapshot of the current weights in record order.
func (n *Network) Weights() []float64 {
	out := make([]float64, len(n.synapses))
	for i, s := range n.synapses {
		out[i] = s.Weight()
	}
	return out
}

// Print writes the diagnostic line of every synapse to w.
func (n *Network) Print(w io.Writer) error {
	for i, s := range n.synapses {
		if err := s.Print(w); err != nil {
			return fmt.Errorf("print synapse %d: %w", i, err)
		}
	}
	return nil
}

// Sample is the state of the network after one step.
type Sample struct {
	Time    float64   `json:"time"`
	Weights []float64 `json:"weights"`
}

// Run steps the network through every time in sched and calls fn with the
// resulting weights. Context cancellation is checked between steps; fn
// returning an error stops the run and that error is returned.
func (n *Network) Run(ctx context.Context, sched Schedule, fn func(Sample) error) error {
	steps, err := sched.Len()
	if err != nil {
		return err
	}

	slog.Debug("run starting", "steps", steps, "synapses", len(n.synapses),
		"start", sched.Start, "end", sched.End, "step", sched.Step)

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			slog.Info("run stopped: context cancelled", "completed_steps", i)
			return err
		}
		t := sched.At(i)
		n.Step(t)
		if err := fn(Sample{Time: t, Weights: n.Weights()}); err != nil {
			return err
		}
	}

	slog.Debug("run finished", "steps", steps)
	return nil
}
