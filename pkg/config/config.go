// Package config loads ClientOptions from, in order of precedence:
//
//  1. A struct literal built by the caller
//  2. A YAML options file, if LoadFromFile is used
//  3. Environment variables, read by Load
//  4. Package defaults
//
// Environment variables are prefixed REDLINE_ and use uppercase names,
// e.g. REDLINE_NODES, REDLINE_CONNECT_TIMEOUT.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ghodss/yaml"
)

const (
	DefaultConnectTimeout = 2 * time.Second
	DefaultReadTimeout    = 5 * time.Second
	DefaultWriteTimeout   = 5 * time.Second
)

// ClientOptions holds everything needed to build a Client: the node list
// and the three transport timeouts. There is deliberately no connection
// pool size or retry count here; this client opens exactly one connection
// per node and never retries a failed command on the caller's behalf.
type ClientOptions struct {
	Nodes          []string      `json:"nodes"`
	ConnectTimeout time.Duration `json:"connect_timeout"`
	ReadTimeout    time.Duration `json:"read_timeout"`
	WriteTimeout   time.Duration `json:"write_timeout"`
}

// DefaultClientOptions returns the package defaults with no nodes set.
func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{
		ConnectTimeout: DefaultConnectTimeout,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
	}
}

// Load builds ClientOptions from REDLINE_* environment variables, falling
// back to defaults for anything unset.
func Load() *ClientOptions {
	opts := DefaultClientOptions()

	if nodes := os.Getenv("REDLINE_NODES"); nodes != "" {
		parts := strings.Split(nodes, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		opts.Nodes = parts
	}
	if v := os.Getenv("REDLINE_CONNECT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.ConnectTimeout = d
		}
	}
	if v := os.Getenv("REDLINE_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.ReadTimeout = d
		}
	}
	if v := os.Getenv("REDLINE_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.WriteTimeout = d
		}
	}
	return opts
}

// LoadFromFile reads a YAML options file on top of what Load returns, so
// fields the file leaves unset keep their environment or default values
// and a file that only sets "nodes" still gets sane timeouts.
func LoadFromFile(path string) (*ClientOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	opts := Load()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks that the options are usable: at least one node, each
// shaped like host:port, and every timeout strictly positive.
func (o *ClientOptions) Validate() error {
	if len(o.Nodes) == 0 {
		return fmt.Errorf("config: at least one node must be specified")
	}
	for _, node := range o.Nodes {
		if node == "" {
			return fmt.Errorf("config: empty node address")
		}
		if !strings.Contains(node, ":") {
			return fmt.Errorf("config: invalid node address %q, want host:port", node)
		}
	}
	if o.ConnectTimeout <= 0 {
		return fmt.Errorf("config: connect timeout must be positive: %s", o.ConnectTimeout)
	}
	if o.ReadTimeout <= 0 {
		return fmt.Errorf("config: read timeout must be positive: %s", o.ReadTimeout)
	}
	if o.WriteTimeout <= 0 {
		return fmt.Errorf("config: write timeout must be positive: %s", o.WriteTimeout)
	}
	return nil
}
