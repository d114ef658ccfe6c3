// Package harness runs weight scenarios: YAML files that pair a synapse
// record stream with the weights expected at given simulation times.
//
// A scenario steps the loaded network once per expectation, in the order
// the expectations are listed. Times may repeat or go backwards; that is
// how scenarios exercise idempotence and out-of-order evaluation.
//
// Example:
//
//	name: ramp
//	description: weight ramps from 0.1 to 0.9 over [10, 20]
//	records: |
//	  3 7 0.1 0.9 10 20
//	expect:
//	  - {time: 5, synapse: 0, weight: 0.1}
//	  - {time: 15, synapse: 0, weight: 0.5}
//	  - {time: 25, synapse: 0, weight: 0.9}
package harness
