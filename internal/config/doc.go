// Package config resolves the runtime configuration of a server from
// environment variables.
//
// Resolution is a single synchronous pass over a read-only [Source]:
//  1. the deployment environment is read from APP_ENV ([ResolveEnvironment]);
//  2. the database settings are read and, in the test environment, the
//     database name gets a "_test" suffix ([NewDatabase]);
//  3. the HTTP server settings are read and its URL derived ([NewServer]).
//
// The result is an immutable [Config] that can be printed back in .env
// format with [Config.String].
//
// Values are read with the generic [Parsable] reader and the [Bool] reader.
// Absent variables take their documented default, DATABASE_URL excepted.
// Malformed values are never replaced by defaults: resolution fails with a
// *[ParseError], *[ValidationError] or *[MissingRequiredValueError].
//
// The main entry points are [Init] and [InitFor] for the process
// environment, and [Resolver] for any other [Source], e.g. one assembled by
// [SourceBuilder] from .env files and overrides.
package config
