package synapse

// Synapse is a directed connection from a source neuron to a target neuron
// with a weight that develops over simulation time.
type Synapse struct {
	source int
	target int

	// interpolation endpoints
	startWeight float64
	endWeight   float64

	// window over which weight moves from startWeight to endWeight.
	// startTime > endTime is accepted as-is.
	startTime float64
	endTime   float64

	// current weight, recomputed by UpdateWeight
	weight float64
}

// Config is the static configuration of a synapse, i.e. everything that
// appears in its record. The derived weight is not part of it.
type Config struct {
	Source      int     `json:"source"`
	Target      int     `json:"target"`
	StartWeight float64 `json:"start_weight"`
	EndWeight   float64 `json:"end_weight"`
	StartTime   float64 `json:"start_time"`
	EndTime     float64 `json:"end_time"`
}

// New creates a synapse with the given configuration. The current weight
// starts at startWeight.
func New(source, target int, startWeight, endWeight, startTime, endTime float64) *Synapse {
	return &Synapse{
		source:      source,
		target:      target,
		startWeight: startWeight,
		endWeight:   endWeight,
		startTime:   startTime,
		endTime:     endTime,
		weight:      startWeight,
	}
}

// NewStatic creates a synapse whose weight never changes. Both endpoints
// are weight and the window is collapsed at time 0.
func NewStatic(source, target int, weight float64) *Synapse {
	return New(source, target, weight, weight, 0, 0)
}

// FromConfig creates a synapse from a Config value.
func FromConfig(c Config) *Synapse {
	return New(c.Source, c.Target, c.StartWeight, c.EndWeight, c.StartTime, c.EndTime)
}

// SourceNeuronIndex returns the index of the upstream neuron.
func (s *Synapse) SourceNeuronIndex() int {
	return s.source
}

// TargetNeuronIndex returns the index of the downstream neuron.
func (s *Synapse) TargetNeuronIndex() int {
	return s.target
}

// Weight returns the weight computed by the last UpdateWeight call, or
// startWeight if UpdateWeight has not been called.
func (s *Synapse) Weight() float64 {
	return s.weight
}

// Config returns a copy of the static configuration.
func (s *Synapse) Config() Config {
	return Config{
		Source:      s.source,
		Target:      s.target,
		StartWeight: s.startWeight,
		EndWeight:   s.endWeight,
		StartTime:   s.startTime,
		EndTime:     s.endTime,
	}
}

// UpdateWeight recomputes the current weight for the given time.
//
// Before the window the weight is startWeight, after it endWeight. A
// zero-width window resolves to endWeight. Inside the window both
// endpoints contribute in proportion to how close time is to each end,
// which is a linear interpolation that hits startWeight and endWeight
// exactly at the boundaries.
//
// The result depends only on time and the configuration, so repeated
// calls with the same time are idempotent.
func (s *Synapse) UpdateWeight(time float64) {
	switch {
	case time < s.startTime:
		s.weight = s.startWeight
	case time > s.endTime:
		s.weight = s.endWeight
	case s.startTime == s.endTime:
		s.weight = s.endWeight
	default:
		span := s.endTime - s.startTime
		startRatio := 1 - (time-s.startTime)/span
		endRatio := 1 - (s.endTime-time)/span
		s.weight = startRatio*s.startWeight + endRatio*s.endWeight
	}
}
