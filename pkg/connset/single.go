package connset

import (
	"github.com/cachemir/redline/pkg/command"
	"github.com/cachemir/redline/pkg/resp"
	"github.com/cachemir/redline/pkg/transport"
)

// Single wraps one transport.Transport. It is the only connection set that
// exposes RawCommand.
type Single struct {
	t *transport.Transport
}

// NewSingle returns a Single connection to host:port, applying opts to the
// underlying transport before returning.
func NewSingle(host string, port int, opts ...Option) *Single {
	t := transport.New(host, port)
	for _, opt := range opts {
		opt(t)
	}
	return &Single{t: t}
}

func (s *Single) Connect() error      { return s.t.Connect() }
func (s *Single) Disconnect() error   { return s.t.Disconnect() }
func (s *Single) IsConnected() bool   { return s.t.IsConnected() }

func (s *Single) Execute(cmd *command.Command) (interface{}, error) {
	if err := s.t.WriteCommand(cmd); err != nil {
		return nil, err
	}
	return s.t.ReadResponse(cmd)
}

// Batches puts every command into a single batch against the one
// transport, preserving submission order.
func (s *Single) Batches(cmds []*command.Command) []Batch {
	if len(cmds) == 0 {
		return nil
	}
	indices := make([]int, len(cmds))
	for i := range cmds {
		indices[i] = i
	}
	return []Batch{{Transport: s.t, Indices: indices, Commands: cmds}}
}

// RawCommand is the single-endpoint escape hatch: it bypasses the command
// catalog entirely and writes data verbatim.
func (s *Single) RawCommand(data []byte, readReply bool) (*resp.Reply, error) {
	return s.t.RawCommand(data, readReply)
}
