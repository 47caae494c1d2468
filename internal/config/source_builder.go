package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// SourceBuilder assembles a [MapSource] from several layers. Layers are
// merged in the order they are added; a variable defined in a later layer
// replaces the one from an earlier layer.
//
// The usual order is:
//  1. .env files
//  2. process environment
//  3. explicit overrides (e.g. command-line KEY=VALUE pairs)
type SourceBuilder struct {
	layers []MapSource
	err    error
}

// NewSourceBuilder returns an empty builder.
func NewSourceBuilder() *SourceBuilder {
	return &SourceBuilder{
		layers: make([]MapSource, 0, 3),
	}
}

// Build merges every layer into a single snapshot. Errors collected by the
// With* methods are returned joined.
func (b *SourceBuilder) Build() (MapSource, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building source: %w", b.err)
	}

	merged := make(map[string]string)
	for _, layer := range b.layers {
		if err := mergo.Merge(&merged, map[string]string(layer), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging sources: %w", err)
		}
	}

	return merged, nil
}

// WithDotenv adds one layer per .env file. Every path is read, so a missing
// or malformed file is reported even if another one succeeds.
func (b *SourceBuilder) WithDotenv(paths ...string) *SourceBuilder {
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error reading env file %s: %w", path, err))
			continue
		}
		b.layers = append(b.layers, vars)
	}

	return b
}

// WithProcessEnv adds a snapshot of the process environment.
func (b *SourceBuilder) WithProcessEnv() *SourceBuilder {
	b.layers = append(b.layers, ProcessSource())
	return b
}

// WithOverrides adds vars as a layer. A nil or empty map is ignored.
func (b *SourceBuilder) WithOverrides(vars map[string]string) *SourceBuilder {
	if len(vars) == 0 {
		return b
	}

	b.layers = append(b.layers, vars)
	return b
}
