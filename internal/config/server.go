// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Variables read by [NewServer].
const (
	EnvHost   = "HOST"
	EnvPort   = "PORT"
	EnvAppURI = "APP_URI"
)

// DefaultHost is the bind address used by [Resolver] when HOST is absent.
const DefaultHost = "127.0.0.1"

// Server is the basic configuration of an HTTP server.
type Server struct {
	// Addr is the bind address. "0" means every interface.
	// Env: HOST.
	Addr string
	// Port is the TCP port. Env: PORT.
	Port uint16
	// URI is the path the API is mounted under, without slashes
	// (e.g. "api/v1"). Env: APP_URI, default "".
	URI string
}

// NewServer resolves a [Server] from src, using defaultHost and defaultPort
// when HOST and PORT are absent.
func NewServer(src Source, defaultHost string, defaultPort uint16) (Server, error) {
	addr := String(src, EnvHost, defaultHost)
	port, err := Parsable(src, EnvPort, defaultPort)
	if err != nil {
		return Server{}, err
	}
	uri := String(src, EnvAppURI, "")

	return Server{Addr: addr, Port: port, URI: uri}, nil
}

// URL returns the canonical URL of the server, always ending with "/".
//
// An Addr of "0" is shown as "localhost", port 80 is omitted and an empty
// URI adds no path segment:
//
//	{Addr: "0", Port: 8080, URI: "api/v1"} -> http://localhost:8080/api/v1/
//	{Addr: "example.com", Port: 80}        -> http://example.com/
func (s Server) URL() string {
	var b strings.Builder
	b.WriteString("http://")
	if s.Addr == "0" {
		b.WriteString("localhost")
	} else {
		b.WriteString(s.Addr)
	}
	if s.Port != 80 {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(s.Port), 10))
	}
	if s.URI != "" {
		b.WriteByte('/')
		b.WriteString(s.URI)
	}
	b.WriteByte('/')
	return b.String()
}

func (s Server) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%s\n", EnvAppURI, quote(s.URI))
	fmt.Fprintf(&b, "%s=%s\n", EnvHost, bare(s.Addr))
	fmt.Fprintf(&b, "%s=%d\n", EnvPort, s.Port)
	return b.String()
}
