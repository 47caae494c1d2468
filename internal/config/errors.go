// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed resolution errors below. Callers that
// only care about the failure class should use [errors.Is]; callers that need
// the offending variable should use [errors.As] with the concrete type.
var (
	// ErrMissingRequiredValue indicates that a variable with no default
	// (only DATABASE_URL) is absent from the source.
	ErrMissingRequiredValue = errors.New("missing required value")
	// ErrParse indicates that a present variable could not be converted to
	// its target type.
	ErrParse = errors.New("invalid value")
	// ErrValidation indicates that a present variable was parsed but is not
	// one of the accepted values (only APP_ENV).
	ErrValidation = errors.New("validation failed")
)

// MissingRequiredValueError is returned when a required variable is absent.
type MissingRequiredValueError struct {
	Name string
}

func (e *MissingRequiredValueError) Error() string {
	return fmt.Sprintf("%s must be set", e.Name)
}

func (e *MissingRequiredValueError) Is(target error) bool {
	return target == ErrMissingRequiredValue
}

// ParseError is returned when the text of a present variable cannot be parsed
// as the requested type.
type ParseError struct {
	// Name is the variable that was read.
	Name string
	// Value is the raw text found in the source.
	Value string
	// Kind describes the target type, e.g. "boolean" or "uint32".
	Kind string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s invalid %s %q", e.Name, e.Kind, e.Value)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when a variable holds text outside of its
// closed set of accepted values.
type ValidationError struct {
	Name  string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s invalid value %q", e.Name, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
