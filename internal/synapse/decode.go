package synapse

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// TokenSource is a sequential cursor over whitespace-separated tokens.
// Next returns io.EOF once no tokens remain.
type TokenSource interface {
	Next() (string, error)
}

// Scanner is a TokenSource over an io.Reader. Several Decode calls may
// share one Scanner; each advances the same cursor.
type Scanner struct {
	sc *bufio.Scanner
}

// NewScanner returns a Scanner that splits r on whitespace.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Next returns the next token.
func (s *Scanner) Next() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// SliceSource is a TokenSource over pre-split tokens.
type SliceSource struct {
	tokens []string
	pos    int
}

// NewSliceSource returns a SliceSource positioned at the first token.
func NewSliceSource(tokens ...string) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// Next returns the next token.
func (s *SliceSource) Next() (string, error) {
	if s.pos >= len(s.tokens) {
		return "", io.EOF
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

// Remaining returns the number of unread tokens.
func (s *SliceSource) Remaining() int {
	return len(s.tokens) - s.pos
}

// Record field names, in stream order.
const (
	FieldSource      = "source"
	FieldTarget      = "target"
	FieldStartWeight = "startWeight"
	FieldEndWeight   = "endWeight"
	FieldStartTime   = "startTime"
	FieldEndTime     = "endTime"
)

// recordReader reads the fields of one record and remembers the first
// failure, so Decode can read all six fields in a straight line.
type recordReader struct {
	src  TokenSource
	read int
	err  *ParseError
}

func (r *recordReader) next(field string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	tok, err := r.src.Next()
	if err != nil {
		switch {
		case errors.Is(err, io.EOF) && r.read == 0:
			r.err = &ParseError{Code: ErrCodeExhausted, Field: field, Err: io.EOF}
		case errors.Is(err, io.EOF):
			r.err = &ParseError{Code: ErrCodeExhausted, Field: field, Err: io.ErrUnexpectedEOF}
		default:
			r.err = &ParseError{Code: ErrCodeRead, Field: field, Err: err}
		}
		return "", false
	}
	r.read++
	return tok, true
}

func (r *recordReader) readInt(field string) int {
	tok, ok := r.next(field)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		r.err = &ParseError{Code: ErrCodeMalformed, Field: field, Token: tok, Err: err}
		return 0
	}
	return v
}

func (r *recordReader) readFloat(field string) float64 {
	tok, ok := r.next(field)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		r.err = &ParseError{Code: ErrCodeMalformed, Field: field, Token: tok, Err: err}
		return 0
	}
	return v
}

// Decode reads one six-token record from src and returns the synapse it
// describes, with its weight set to startWeight.
//
// On success exactly six tokens are consumed. On failure the returned
// error is a *ParseError and no synapse is returned; the cursor position
// is then unspecified and the stream should be treated as unusable.
func Decode(src TokenSource) (*Synapse, error) {
	r := &recordReader{src: src}

	source := r.readInt(FieldSource)
	target := r.readInt(FieldTarget)
	startWeight := r.readFloat(FieldStartWeight)
	endWeight := r.readFloat(FieldEndWeight)
	startTime := r.readFloat(FieldStartTime)
	endTime := r.readFloat(FieldEndTime)

	if r.err != nil {
		return nil, r.err
	}
	return New(source, target, startWeight, endWeight, startTime, endTime), nil
}
