// Package client provides the public entry point of the library: Client
// dispatches commands by name against either a single connection or a
// consistent-hash-sharded set, and supports pipelining a batch of commands
// through a single write-then-read round trip.
package client

import (
	"sync"

	"github.com/cachemir/redline/pkg/command"
	"github.com/cachemir/redline/pkg/config"
	"github.com/cachemir/redline/pkg/connset"
	"github.com/cachemir/redline/pkg/pipeline"
	"github.com/cachemir/redline/pkg/resp"
)

// Client is the single entry point callers use. It holds exactly one
// connection set (Single or Ring) and a command catalog that starts with
// the built-in command set and can be extended with RegisterCommand(s).
type Client struct {
	conn    connset.Batcher
	catalog *command.Catalog

	mu         sync.Mutex
	pipelining bool
}

func newClient(conn connset.Batcher) *Client {
	return &Client{conn: conn, catalog: command.NewCatalog()}
}

// New returns a Client backed by a single connection to host:port.
func New(host string, port int, opts ...connset.Option) *Client {
	return newClient(connset.NewSingle(host, port, opts...))
}

// NewSharded returns a Client backed by a consistent-hash ring over nodes,
// each given as "host:port".
func NewSharded(nodes []string, opts ...connset.Option) *Client {
	return newClient(connset.NewRing(nodes, opts...))
}

// NewFromOptions builds a Client from loaded ClientOptions: a single
// connection when exactly one node is configured, a sharded ring
// otherwise.
func NewFromOptions(opts *config.ClientOptions) *Client {
	connOpts := []connset.Option{
		connset.WithConnectTimeout(opts.ConnectTimeout),
		connset.WithReadTimeout(opts.ReadTimeout),
		connset.WithWriteTimeout(opts.WriteTimeout),
	}
	if len(opts.Nodes) == 1 {
		host, port := splitHostPort(opts.Nodes[0])
		return New(host, port, connOpts...)
	}
	return NewSharded(opts.Nodes, connOpts...)
}

// Connect dials every underlying transport.
func (c *Client) Connect() error { return c.conn.Connect() }

// Disconnect closes every underlying transport.
func (c *Client) Disconnect() error { return c.conn.Disconnect() }

// IsConnected reports whether any underlying transport is connected.
func (c *Client) IsConnected() bool { return c.conn.IsConnected() }

// RegisterCommand adds or overrides a single dispatch name.
func (c *Client) RegisterCommand(name string, d *command.Descriptor) {
	c.catalog.Register(name, d)
}

// RegisterCommands adds or overrides a batch of dispatch names.
func (c *Client) RegisterCommands(m map[string]*command.Descriptor) {
	c.catalog.RegisterMany(m)
}

func (c *Client) buildCommand(name string, args []interface{}) (*command.Command, error) {
	desc, err := c.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &command.Command{Descriptor: desc, Args: command.BuildArgs(args)}, nil
}

// Do dispatches one command by name and returns its shaped reply. It is an
// error to call Do while a Pipeline block is in progress on this Client;
// use the Pipeliner passed into the block instead.
func (c *Client) Do(name string, args ...interface{}) (interface{}, error) {
	c.mu.Lock()
	piping := c.pipelining
	c.mu.Unlock()
	if piping {
		return nil, &resp.ClientError{Msg: "Do called while a pipeline is in progress"}
	}
	cmd, err := c.buildCommand(name, args)
	if err != nil {
		return nil, err
	}
	return c.conn.Execute(cmd)
}

// RawCommand writes data to the wire verbatim, bypassing the catalog
// entirely, and optionally reads back one undecoded reply. It is only
// available on a Client built with New; a sharded Client has no single
// connection for it to target.
func (c *Client) RawCommand(data []byte, readReply bool) (*resp.Reply, error) {
	single, ok := c.conn.(*connset.Single)
	if !ok {
		return nil, &resp.ClientError{Msg: "raw command requires a single-endpoint client"}
	}
	return single.RawCommand(data, readReply)
}

// Pipeliner is the buffering handle passed to a Pipeline block. Its Do
// enqueues a command instead of sending it immediately.
type Pipeliner struct {
	client *Client
	pl     *pipeline.Pipeline
}

// Do buffers one command for the enclosing Pipeline's next Flush.
func (p *Pipeliner) Do(name string, args ...interface{}) error {
	cmd, err := p.client.buildCommand(name, args)
	if err != nil {
		return err
	}
	p.pl.Enqueue(cmd)
	return nil
}

// Pipeline runs fn with a Pipeliner that buffers every command issued
// against it, then flushes the whole batch in one write-then-read round
// trip (per target node, for a sharded Client) and returns the replies in
// submission order.
//
// If fn returns an error, or any buffered command fails to write, read or
// shape, Pipeline discards all results and returns a *resp.PipelineError.
// Nested calls to Pipeline on the same Client are rejected.
func (c *Client) Pipeline(fn func(p *Pipeliner) error) ([]interface{}, error) {
	c.mu.Lock()
	if c.pipelining {
		c.mu.Unlock()
		return nil, &resp.ClientError{Msg: "pipelines cannot be nested"}
	}
	c.pipelining = true
	pl := pipeline.New(c.conn)
	c.mu.Unlock()

	err := fn(&Pipeliner{client: c, pl: pl})

	c.mu.Lock()
	c.pipelining = false
	c.mu.Unlock()

	if err != nil {
		return nil, &resp.PipelineError{Cause: err}
	}
	return pl.Flush()
}
