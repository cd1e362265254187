// Package command describes the catalog of known commands: how each one
// is serialized onto the wire, how its reply is shaped into a plain Go
// value, and whether it can be routed by key on a sharded connection set.
package command

import "github.com/cachemir/redline/pkg/resp"

// Encoding picks which of the three request encodings a command uses.
type Encoding int

const (
	Inline Encoding = iota
	Bulk
	MultiBulk
)

// Shaper turns a decoded wire Reply into the value returned to the caller.
// It returns a *resp.ServerError when the reply itself was a server error;
// any other returned error indicates the reply didn't match what the
// command promises to receive.
type Shaper func(*resp.Reply) (interface{}, error)

// ArgFilter is a pure transform of a command's flattened argument list,
// applied just before serialization. Most descriptors leave this nil.
type ArgFilter func(args [][]byte) [][]byte

// Descriptor is the immutable, catalog-registered definition of one
// command name.
type Descriptor struct {
	// Verb is the literal wire verb sent as the first token or array
	// element, e.g. "GET", "HSET". Multiple catalog names may point at
	// descriptors sharing a verb (aliases); the verb itself is never
	// looked up directly.
	Verb string

	Encoding Encoding
	Shaper   Shaper

	// Shardable marks whether this command's first argument is a
	// meaningful routing key on a sharded connection set. Server-scope
	// commands (PING, FLUSHALL, INFO, ...) are not shardable and always
	// fall back to a fixed connection.
	Shardable bool

	// ClosesConnection marks commands whose successful send terminates
	// the connection from the server side, so no reply is read (QUIT,
	// SHUTDOWN).
	ClosesConnection bool

	ArgFilter ArgFilter
}

// Command is one instance of a Descriptor bound to a concrete, already
// byte-flattened argument list.
type Command struct {
	Descriptor *Descriptor
	Args       [][]byte
}

// RoutingKey returns the bytes used to pick a shard, if any.
func (c *Command) RoutingKey() ([]byte, bool) {
	if !c.Descriptor.Shardable || len(c.Args) == 0 {
		return nil, false
	}
	return c.Args[0], true
}

// Serialize renders the command's request bytes, running its ArgFilter
// first if it has one.
func (c *Command) Serialize() []byte {
	args := c.Args
	if c.Descriptor.ArgFilter != nil {
		args = c.Descriptor.ArgFilter(args)
	}
	switch c.Descriptor.Encoding {
	case Inline:
		return resp.EncodeInline(c.Descriptor.Verb, args)
	case Bulk:
		return resp.EncodeBulk(c.Descriptor.Verb, args)
	default:
		return resp.EncodeMultiBulk(c.Descriptor.Verb, args)
	}
}
