// Package synapse models a single developing synapse: a directed connection
// between two neurons whose weight moves linearly from a start value to an
// end value over a time window.
//
// Neurons are referenced by opaque integer index only. The package never
// resolves or validates those indices and never owns a collection of
// synapses; loading and stepping many synapses is the job of the caller
// (see internal/network).
//
// RECORD FORMAT:
//
// A synapse is deserialized from six whitespace-separated tokens:
//
//	<source:int> <target:int> <startWeight:float> <endWeight:float> <startTime:float> <endTime:float>
//
// Records may be concatenated. Decode consumes exactly one record from a
// TokenSource and leaves the cursor directly after it.
//
// WEIGHT POLICY:
//
// UpdateWeight is total and never fails:
//   - time < startTime          -> startWeight
//   - time > endTime            -> endWeight
//   - startTime == endTime      -> endWeight
//   - otherwise                 -> linear blend of both endpoints
//
// Concurrency: a Synapse has no locks. One writer per instance; the
// surrounding simulation orders UpdateWeight before Weight.
package synapse
