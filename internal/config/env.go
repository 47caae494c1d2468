// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// MapSource is a [Source] backed by a plain map. It is the snapshot type
// produced by [ProcessSource] and [SourceBuilder], and the usual way to feed
// controlled values to the resolvers in tests.
type MapSource map[string]string

// Lookup implements [Source].
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ProcessSource captures the current process environment once. Later changes
// to the environment are not visible through the returned snapshot.
func ProcessSource() MapSource {
	return env.ToMap(os.Environ())
}

var (
	durationType        = reflect.TypeFor[time.Duration]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Parsable reads name from src and converts it to T.
//
// If the variable is absent defaultValue is returned. If it is present but
// cannot be parsed, a *[ParseError] is returned together with the zero value
// of T; the default is never substituted for malformed text.
//
// Supported targets are every integer and float kind (honouring the bit size
// of T), strings, strict booleans ("true" / "false"), [time.Duration] in Go
// duration syntax, and any type whose pointer implements
// [encoding.TextUnmarshaler].
func Parsable[T any](src Source, name string, defaultValue T) (T, error) {
	raw, ok := src.Lookup(name)
	if !ok {
		return defaultValue, nil
	}

	var value T
	if err := parseText(raw, &value); err != nil {
		var zero T
		return zero, &ParseError{
			Name:  name,
			Value: raw,
			Kind:  kindName(reflect.TypeFor[T]()),
			Err:   err,
		}
	}

	return value, nil
}

// Bool reads a boolean variable. "0" and "1" are accepted as false and true;
// any other text is lower-cased and must then be exactly "true" or "false".
func Bool(src Source, name string, defaultValue bool) (bool, error) {
	raw, ok := src.Lookup(name)
	if !ok {
		return defaultValue, nil
	}

	normalized := raw
	switch raw {
	case "0":
		normalized = "false"
	case "1":
		normalized = "true"
	default:
		normalized = strings.ToLower(raw)
	}

	switch normalized {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, &ParseError{Name: name, Value: raw, Kind: "boolean"}
}

// String reads a variable as raw text, falling back to defaultValue when it
// is absent. It never fails.
func String(src Source, name, defaultValue string) string {
	if v, ok := src.Lookup(name); ok {
		return v
	}
	return defaultValue
}

func parseText(raw string, dst any) error {
	if u, ok := dst.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(raw))
	}

	rv := reflect.ValueOf(dst).Elem()
	if rv.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		rv.SetInt(int64(d))
		return nil
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Bool:
		switch raw {
		case "true":
			rv.SetBool(true)
		case "false":
			rv.SetBool(false)
		default:
			return fmt.Errorf("%q is not a boolean literal", raw)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// strconv.ParseInt accepts a leading "+", ParseUint does not
		n, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type %s", rv.Type())
	}

	return nil
}

func kindName(t reflect.Type) string {
	switch {
	case t == durationType:
		return "duration"
	case reflect.PointerTo(t).Implements(textUnmarshalerType):
		return "value"
	case t.Kind() == reflect.Bool:
		return "boolean"
	case t.Kind() == reflect.String:
		return "string"
	default:
		return t.Kind().String()
	}
}
