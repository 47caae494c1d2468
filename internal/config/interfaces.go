package config

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Source is a read-only view of named variables, usually a snapshot of the
// process environment. Resolution never writes to a Source.
type Source interface {
	// Lookup returns the value stored under name and whether it is present.
	// A variable set to the empty string is present.
	Lookup(name string) (string, bool)
}
