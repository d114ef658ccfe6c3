package synapse

import (
	"io"
	"strconv"
)

// FormatReal formats a real the way record and diagnostic lines show it:
// shortest of %e/%f with six significant digits (0.1, 10, 1e-07).
func FormatReal(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Print writes the static configuration as one space-separated line to w:
//
//	source target startWeight endWeight startTime endTime
//
// The current weight is not included. Callers pass a diagnostic sink
// (stderr in the CLI) so the line never interleaves with primary output.
func (s *Synapse) Print(w io.Writer) error {
	_, err := io.WriteString(w, s.line())
	return err
}

// Encode writes the synapse as a record that Decode reads back. Unlike
// Print, reals are written at full precision.
func (s *Synapse) Encode(w io.Writer) error {
	b := make([]byte, 0, 64)
	b = strconv.AppendInt(b, int64(s.source), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(s.target), 10)
	for _, v := range []float64{s.startWeight, s.endWeight, s.startTime, s.endTime} {
		b = append(b, ' ')
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	b = append(b, '\n')
	_, err := w.Write(b)
	return err
}

func (s *Synapse) line() string {
	return strconv.Itoa(s.source) + " " +
		strconv.Itoa(s.target) + " " +
		FormatReal(s.startWeight) + " " +
		FormatReal(s.endWeight) + " " +
		FormatReal(s.startTime) + " " +
		FormatReal(s.endTime) + "\n"
}
