// Package connset implements the two connection-set shapes a Client can be
// built on: a Single connection to one address, and a Ring of connections
// sharded across many addresses by a consistent hash.
package connset

import (
	"github.com/cachemir/redline/pkg/command"
)

// ConnSet is the capability surface shared by Single and Ring.
type ConnSet interface {
	Connect() error
	Disconnect() error
	IsConnected() bool
	Execute(cmd *command.Command) (interface{}, error)
}

// Batch groups every buffered command that routes to the same transport,
// whether or not they were submitted next to each other, along with their
// original positions in the submitted command list so a pipeline can
// reassemble results in order.
type Batch struct {
	Transport Transport
	Indices   []int
	Commands  []*command.Command
}

// Transport is the slice of transport.Transport's surface the pipeline
// coordinator needs. It's declared here, rather than importing the
// transport package's concrete type, so connset stays the single place
// that knows how Single and Ring map commands to transports.
type Transport interface {
	WriteCommand(cmd *command.Command) error
	ReadResponse(cmd *command.Command) (interface{}, error)
}

// Batcher is implemented by connection sets that can also group a slice of
// commands into per-transport batches for pipelining.
type Batcher interface {
	ConnSet
	Batches(cmds []*command.Command) []Batch
}
