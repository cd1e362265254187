package connset

import (
	"strconv"
	"strings"

	"github.com/cachemir/redline/pkg/command"
	"github.com/cachemir/redline/pkg/hash"
	"github.com/cachemir/redline/pkg/resp"
	"github.com/cachemir/redline/pkg/transport"
)

// Ring shards across a fixed set of node addresses with a consistent hash
// ring, falling back to the first node for commands with no meaningful
// routing key.
type Ring struct {
	nodes     []string
	transports []*transport.Transport
	byNode    map[string]int
	ring      *hash.Ring
}

// NewRing builds a Ring over nodes, each given as "host:port". Connect
// order and fallback-slot order both follow the order nodes is given in.
func NewRing(nodes []string, opts ...Option) *Ring {
	r := &Ring{
		nodes:  append([]string(nil), nodes...),
		byNode: make(map[string]int, len(nodes)),
		ring:   hash.New(),
	}
	for i, node := range nodes {
		host, port := splitHostPort(node)
		t := transport.New(host, port)
		for _, opt := range opts {
			opt(t)
		}
		r.transports = append(r.transports, t)
		r.byNode[node] = i
		r.ring.AddNode(node)
	}
	return r
}

func splitHostPort(addr string) (string, int) {
	idx := strings.LastIndex(addr, ":")
	if idx < 0 {
		return addr, 0
	}
	port, _ := strconv.Atoi(addr[idx+1:])
	return addr[:idx], port
}

func (r *Ring) Connect() error {
	for _, t := range r.transports {
		if err := t.Connect(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Ring) Disconnect() error {
	var firstErr error
	for _, t := range r.transports {
		if err := t.Disconnect(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Ring) IsConnected() bool {
	for _, t := range r.transports {
		if t.IsConnected() {
			return true
		}
	}
	return false
}

// transportFor routes cmd to a member transport: by CRC32 hash of its
// first argument when the command is shardable, otherwise always the
// fixed fallback slot at index 0.
func (r *Ring) transportFor(cmd *command.Command) *transport.Transport {
	if len(r.transports) == 0 {
		return nil
	}
	key, ok := cmd.RoutingKey()
	if !ok {
		return r.transports[0]
	}
	node, ok := r.ring.GetBytes(key)
	if !ok {
		return r.transports[0]
	}
	idx, ok := r.byNode[node]
	if !ok {
		return r.transports[0]
	}
	return r.transports[idx]
}

func (r *Ring) Execute(cmd *command.Command) (interface{}, error) {
	t := r.transportFor(cmd)
	if t == nil {
		return nil, &resp.ClientError{Msg: "ring has no member connections"}
	}
	if err := t.WriteCommand(cmd); err != nil {
		return nil, err
	}
	return t.ReadResponse(cmd)
}

// Batches groups cmds by the transport each routes to, preserving relative
// order both within a group and across the groups' first appearance.
func (r *Ring) Batches(cmds []*command.Command) []Batch {
	if len(cmds) == 0 {
		return nil
	}
	order := make([]*transport.Transport, 0)
	groups := make(map[*transport.Transport]*Batch)
	for i, cmd := range cmds {
		t := r.transportFor(cmd)
		b, ok := groups[t]
		if !ok {
			b = &Batch{Transport: t}
			groups[t] = b
			order = append(order, t)
		}
		b.Indices = append(b.Indices, i)
		b.Commands = append(b.Commands, cmd)
	}
	out := make([]Batch, 0, len(order))
	for _, t := range order {
		out = append(out, *groups[t])
	}
	return out
}
