// Package record reads and writes the line-oriented JSON records shared by
// every pipeline stage, plus the TSV files exchanged with annotators.
package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMalformedRecord marks a record that is missing a required field or has the wrong shape
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError describes where and why a record failed to decode
type MalformedRecordError struct {
	Line   int    // 1-based line number, 0 when unknown
	Field  string // Offending field, empty for whole-record problems
	Reason string
}

func (e *MalformedRecordError) Error() string {
	msg := "malformed record"
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: field %q", msg, e.Field)
	}
	return msg + ": " + e.Reason
}

// Is lets errors.Is match ErrMalformedRecord
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func malformed(field, reason string) error {
	return &MalformedRecordError{Field: field, Reason: reason}
}

// maxLineBytes bounds a single record line; aspect records for large pages can be long
const maxLineBytes = 16 << 20

// Decoder turns one line into a record
type Decoder[T any] func(line []byte) (T, error)

// Read decodes every non-blank line of r. The first bad line aborts the batch.
func Read[T any](r io.Reader, decode Decoder[T]) ([]T, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []T
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, err := decode(line)
		if err != nil {
			var mre *MalformedRecordError
			if errors.As(err, &mre) {
				mre.Line = lineNo
				return nil, mre
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	return records, nil
}

// ReadFile decodes all records of a file
func ReadFile[T any](path string, decode Decoder[T]) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := Read(f, decode)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// Write encodes each record as one JSON line
func Write[T any](w io.Writer, records []T) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	for i, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes records to path, replacing any existing file
func WriteFile[T any](path string, records []T) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := Write(f, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// fields decodes a line into its top-level JSON members
func fields(line []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(line, &m); err != nil {
		return nil, malformed("", fmt.Sprintf("not a JSON object: %v", err))
	}
	if m == nil {
		return nil, malformed("", "null record")
	}
	return m, nil
}

// requireString extracts a required string member
func requireString(m map[string]json.RawMessage, field string) (string, error) {
	raw, ok := m[field]
	if !ok {
		return "", malformed(field, "missing")
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", malformed(field, "expected string")
	}
	return *s, nil
}

// optionalString extracts a string member, empty when absent
func optionalString(m map[string]json.RawMessage, field string) (string, error) {
	if _, ok := m[field]; !ok {
		return "", nil
	}
	return requireString(m, field)
}
