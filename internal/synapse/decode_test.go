package synapse

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Record(t *testing.T) {
	s, err := Decode(NewScanner(strings.NewReader("3 7 0.1 0.9 10 20")))
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, 3, s.SourceNeuronIndex())
	assert.Equal(t, 7, s.TargetNeuronIndex())
	assert.Equal(t, 0.1, s.Weight())

	s.UpdateWeight(15)
	assert.InDelta(t, 0.5, s.Weight(), tolerance)
}

func TestDecode_DegenerateWindow(t *testing.T) {
	s, err := Decode(NewScanner(strings.NewReader("3 7 0.1 0.9 20 20")))
	require.NoError(t, err)

	s.UpdateWeight(20)
	assert.Equal(t, 0.9, s.Weight())
}

func TestDecode_BackToBackRecords(t *testing.T) {
	src := NewScanner(strings.NewReader("3 7 0.1 0.9 10 20\n4 8 -1 1 0 5\n"))

	first, err := Decode(src)
	require.NoError(t, err)
	second, err := Decode(src)
	require.NoError(t, err)

	assert.Equal(t, Config{Source: 3, Target: 7, StartWeight: 0.1, EndWeight: 0.9, StartTime: 10, EndTime: 20}, first.Config())
	assert.Equal(t, Config{Source: 4, Target: 8, StartWeight: -1, EndWeight: 1, StartTime: 0, EndTime: 5}, second.Config())

	second.UpdateWeight(5)
	assert.Equal(t, 0.1, first.Weight(), "updating one synapse must not affect another")

	_, err = Decode(src)
	assert.True(t, IsEndOfStream(err))
}

func TestDecode_ConsumesExactlySixTokens(t *testing.T) {
	src := NewSliceSource("1", "2", "0.5", "0.5", "0", "1", "extra")

	_, err := Decode(src)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Remaining())

	tok, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "extra", tok)
}

func TestDecode_AcceptsArbitraryWhitespace(t *testing.T) {
	s, err := Decode(NewScanner(strings.NewReader("\t 3\n\n7   0.1\r\n0.9 1e1 2E1 ")))
	require.NoError(t, err)
	assert.Equal(t, Config{Source: 3, Target: 7, StartWeight: 0.1, EndWeight: 0.9, StartTime: 10, EndTime: 20}, s.Config())
}

func TestDecode_EmptyStream(t *testing.T) {
	s, err := Decode(NewSliceSource())
	assert.Nil(t, s)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrCodeExhausted, pe.Code)
	assert.Equal(t, FieldSource, pe.Field)
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, IsEndOfStream(err))
}

func TestDecode_TruncatedRecord(t *testing.T) {
	s, err := Decode(NewScanner(strings.NewReader("3 7 0.1 0.9")))
	assert.Nil(t, s)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrCodeExhausted, pe.Code)
	assert.Equal(t, FieldStartTime, pe.Field)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.False(t, IsEndOfStream(err))
}

func TestDecode_MalformedTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
		token string
	}{
		{"source not an int", "x 7 0.1 0.9 10 20", FieldSource, "x"},
		{"target is a real", "3 7.5 0.1 0.9 10 20", FieldTarget, "7.5"},
		{"start weight", "3 7 abc 0.9 10 20", FieldStartWeight, "abc"},
		{"end weight", "3 7 0.1 0..9 10 20", FieldEndWeight, "0..9"},
		{"start time", "3 7 0.1 0.9 ten 20", FieldStartTime, "ten"},
		{"end time", "3 7 0.1 0.9 10 2O", FieldEndTime, "2O"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(NewScanner(strings.NewReader(tt.input)))
			assert.Nil(t, s)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, ErrCodeMalformed, pe.Code)
			assert.Equal(t, tt.field, pe.Field)
			assert.Equal(t, tt.token, pe.Token)

			var numErr *strconv.NumError
			assert.True(t, errors.As(err, &numErr))
			assert.True(t, IsParseError(err))
			assert.False(t, IsEndOfStream(err))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDecode_ReaderFailure(t *testing.T) {
	_, err := Decode(NewScanner(failingReader{}))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrCodeRead, pe.Code)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Code: ErrCodeMalformed, Field: FieldTarget, Token: "q", Err: strconv.ErrSyntax}
	assert.Equal(t, `MALFORMED_TOKEN: field target: token "q": invalid syntax`, err.Error())

	err = &ParseError{Code: ErrCodeExhausted, Field: FieldEndTime, Err: io.ErrUnexpectedEOF}
	assert.Equal(t, "STREAM_EXHAUSTED: field endTime: unexpected EOF", err.Error())
}

func TestIsParseError_Wrapped(t *testing.T) {
	_, err := Decode(NewSliceSource("1"))
	wrapped := errors.Join(errors.New("record 3"), err)

	assert.True(t, IsParseError(wrapped))
	assert.False(t, IsParseError(errors.New("plain")))
	assert.False(t, IsEndOfStream(errors.New("plain")))
}

func TestEncode_DecodesBack(t *testing.T) {
	orig := New(12, 5, 0.1, 1.0/3.0, -2.5, 1e-7)

	var buf bytes.Buffer
	require.NoError(t, orig.Encode(&buf))

	got, err := Decode(NewScanner(&buf))
	require.NoError(t, err)
	assert.Equal(t, orig.Config(), got.Config())
}
