// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

//go:generate go run github.com/dmarkham/enumer -type=Environment -trimprefix=Environment -transform=snake -text -json -yaml -output=environment_enumer.go

// EnvAppEnv is the variable that selects the deployment environment.
const EnvAppEnv = "APP_ENV"

// Environment is the deployment environment the application runs in. The
// zero value is [EnvironmentLocal].
type Environment int

const (
	EnvironmentLocal Environment = iota
	EnvironmentTest
	EnvironmentStage
	EnvironmentProduction
)

// ResolveEnvironment reads APP_ENV from src. An absent variable yields
// [EnvironmentLocal]; text that matches no variant (case-insensitively)
// yields a *[ValidationError].
func ResolveEnvironment(src Source) (Environment, error) {
	raw, ok := src.Lookup(EnvAppEnv)
	if !ok {
		return EnvironmentLocal, nil
	}

	e, err := EnvironmentString(raw)
	if err != nil {
		return EnvironmentLocal, &ValidationError{Name: EnvAppEnv, Value: raw, Err: err}
	}

	return e, nil
}
