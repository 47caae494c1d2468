// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Variables read by [NewDatabase].
const (
	EnvDatabaseURL       = "DATABASE_URL"
	EnvMinConnections    = "MIN_CONNECTIONS"
	EnvMaxConnections    = "MAX_CONNECTIONS"
	EnvAcquireTimeoutMS  = "ACQUIRE_TIMEOUT_MS"
	EnvIdleTimeoutSec    = "IDLE_TIMEOUT_SEC"
	EnvTestBeforeAcquire = "TEST_BEFORE_ACQUIRE"
)

// Defaults applied by [NewDatabase] when the matching variable is absent.
const (
	DefaultMinConnections    uint32 = 1
	DefaultMaxConnections    uint32 = 10
	DefaultAcquireTimeoutMS  uint64 = 750
	DefaultIdleTimeoutSec    uint64 = 300
	DefaultTestBeforeAcquire        = false
)

// testDatabaseSuffix is appended to DATABASE_URL in the test environment so
// tests never run against a local or production database by mistake.
const testDatabaseSuffix = "_test"

// Database holds the settings needed to open a connection pool. It only
// describes the pool; nothing in this package connects to a database.
type Database struct {
	// URL is the connection string. Env: DATABASE_URL (required).
	URL string
	// MinConnections is the number of connections kept open at start-up.
	// Env: MIN_CONNECTIONS, default 1.
	MinConnections uint32
	// MaxConnections caps the pool size. Env: MAX_CONNECTIONS, default 10.
	MaxConnections uint32
	// AcquireTimeout is how long a caller may wait for a connection.
	// Env: ACQUIRE_TIMEOUT_MS, default 750 milliseconds.
	AcquireTimeout time.Duration
	// IdleTimeout is how long a connection may stay idle before it is
	// closed. Env: IDLE_TIMEOUT_SEC, default 300 seconds.
	IdleTimeout time.Duration
	// TestBeforeAcquire enables a liveness check on every acquire.
	// Env: TEST_BEFORE_ACQUIRE, default false.
	TestBeforeAcquire bool
}

// NewDatabase resolves a [Database] from src. DATABASE_URL is the only
// required variable; every other field falls back to its default.
//
// env is the already resolved deployment environment. When it is
// [EnvironmentTest] the URL gets the "_test" suffix, see [TestDatabaseURL].
func NewDatabase(src Source, env Environment) (Database, error) {
	url, ok := src.Lookup(EnvDatabaseURL)
	if !ok {
		return Database{}, &MissingRequiredValueError{Name: EnvDatabaseURL}
	}
	if env == EnvironmentTest {
		url = TestDatabaseURL(url)
	}

	minConns, err := Parsable(src, EnvMinConnections, DefaultMinConnections)
	if err != nil {
		return Database{}, err
	}
	maxConns, err := Parsable(src, EnvMaxConnections, DefaultMaxConnections)
	if err != nil {
		return Database{}, err
	}
	acquireMS, err := Parsable(src, EnvAcquireTimeoutMS, DefaultAcquireTimeoutMS)
	if err != nil {
		return Database{}, err
	}
	idleSec, err := Parsable(src, EnvIdleTimeoutSec, DefaultIdleTimeoutSec)
	if err != nil {
		return Database{}, err
	}
	testBeforeAcquire, err := Bool(src, EnvTestBeforeAcquire, DefaultTestBeforeAcquire)
	if err != nil {
		return Database{}, err
	}

	acquireTimeout, err := durationOf(EnvAcquireTimeoutMS, acquireMS, time.Millisecond)
	if err != nil {
		return Database{}, err
	}
	idleTimeout, err := durationOf(EnvIdleTimeoutSec, idleSec, time.Second)
	if err != nil {
		return Database{}, err
	}

	return Database{
		URL:               url,
		MinConnections:    minConns,
		MaxConnections:    maxConns,
		AcquireTimeout:    acquireTimeout,
		IdleTimeout:       idleTimeout,
		TestBeforeAcquire: testBeforeAcquire,
	}, nil
}

// durationOf converts n units into a time.Duration, failing with a
// *[ParseError] when the result does not fit.
func durationOf(name string, n uint64, unit time.Duration) (time.Duration, error) {
	if n > uint64(math.MaxInt64/int64(unit)) {
		return 0, &ParseError{
			Name:  name,
			Value: strconv.FormatUint(n, 10),
			Kind:  "duration",
			Err:   fmt.Errorf("exceeds %s", time.Duration(math.MaxInt64).Truncate(unit)),
		}
	}
	return time.Duration(n) * unit, nil
}

// TestDatabaseURL appends "_test" to url unless it already ends with it or
// carries connection arguments (contains "?"). Applying it twice is a no-op.
func TestDatabaseURL(url string) string {
	if strings.HasSuffix(url, testDatabaseSuffix) || strings.Contains(url, "?") {
		return url
	}
	return url + testDatabaseSuffix
}

// String renders the settings as NAME=value lines using the variable names
// they are read from.
func (d Database) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%s\n", EnvDatabaseURL, quote(d.URL))
	fmt.Fprintf(&b, "%s=%d\n", EnvMinConnections, d.MinConnections)
	fmt.Fprintf(&b, "%s=%d\n", EnvMaxConnections, d.MaxConnections)
	fmt.Fprintf(&b, "%s=%d\n", EnvAcquireTimeoutMS, d.AcquireTimeout.Milliseconds())
	fmt.Fprintf(&b, "%s=%d\n", EnvIdleTimeoutSec, int64(d.IdleTimeout/time.Second))
	fmt.Fprintf(&b, "%s=%t\n", EnvTestBeforeAcquire, d.TestBeforeAcquire)
	return b.String()
}
