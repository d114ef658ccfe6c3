// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"strconv"
	"strings"
)

// Record is one synapse record as it appears in a stream.
type Record struct {
	Source      int
	Target      int
	StartWeight float64
	EndWeight   float64
	StartTime   float64
	EndTime     float64
}

// String renders the record as six space-separated tokens.
func (r Record) String() string {
	fields := []string{
		strconv.Itoa(r.Source),
		strconv.Itoa(r.Target),
		strconv.FormatFloat(r.StartWeight, 'g', -1, 64),
		strconv.FormatFloat(r.EndWeight, 'g', -1, 64),
		strconv.FormatFloat(r.StartTime, 'g', -1, 64),
		strconv.FormatFloat(r.EndTime, 'g', -1, 64),
	}
	return strings.Join(fields, " ")
}

// Records renders records one per line, in order, ready to be decoded
// back to back.
func Records(records ...Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}
