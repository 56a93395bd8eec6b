// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
)

var (
	ErrDataLoad         = errors.New("survey data could not be loaded")
	ErrUnknownCandidate = errors.New("unknown candidate")
	ErrMissingField     = errors.New("missing region value")
)

// DataLoadError reports an unreadable or malformed survey source.
// It is fatal at startup.
type DataLoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *DataLoadError) Error() string {
	msg := fmt.Sprintf("load %s: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataLoadError) Unwrap() error { return e.Err }

func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// UnknownCandidateError is returned when a name has no row in the table.
type UnknownCandidateError struct {
	Name string
}

func (e *UnknownCandidateError) Error() string {
	return fmt.Sprintf("unknown candidate %q", e.Name)
}

func (e *UnknownCandidateError) Is(target error) bool { return target == ErrUnknownCandidate }

// MissingFieldError is returned when a row has no value for a declared region.
type MissingFieldError struct {
	Candidate string
	Region    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("candidate %q has no value for region %q", e.Candidate, e.Region)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }
