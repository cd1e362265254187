// Package pipeline implements the buffered write-then-read command
// coordinator. Submitted commands are written in full before any reply is
// read back; on a sharded connection set the buffer is split by target
// node first, and each node's sub-sequence is pipelined independently.
package pipeline

import (
	"github.com/cachemir/redline/pkg/command"
	"github.com/cachemir/redline/pkg/connset"
	"github.com/cachemir/redline/pkg/resp"
)

// Pipeline accumulates commands for one flush. It is not safe for
// concurrent use.
type Pipeline struct {
	conn   connset.Batcher
	buffer []*command.Command
}

// New returns a Pipeline writing through conn.
func New(conn connset.Batcher) *Pipeline {
	return &Pipeline{conn: conn}
}

// Enqueue buffers cmd; nothing is written to the wire until Flush.
func (p *Pipeline) Enqueue(cmd *command.Command) {
	p.buffer = append(p.buffer, cmd)
}

// Flush writes every buffered command and reads back every reply, in the
// order the commands were enqueued, and clears the buffer regardless of
// outcome. Every node's sub-sequence is fully drained even after an error
// elsewhere, so no connection is left mid-frame for the next call.
//
// Any single write or read failure, including a reply that itself carries
// a server error, causes Flush to discard all results and return a
// PipelineError wrapping the first such failure.
func (p *Pipeline) Flush() ([]interface{}, error) {
	cmds := p.buffer
	p.buffer = nil
	if len(cmds) == 0 {
		return nil, nil
	}

	results := make([]interface{}, len(cmds))
	var firstErr error

	for _, batch := range p.conn.Batches(cmds) {
		writeErr := make([]error, len(batch.Commands))
		for i, cmd := range batch.Commands {
			if err := batch.Transport.WriteCommand(cmd); err != nil {
				writeErr[i] = err
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		for i, cmd := range batch.Commands {
			if writeErr[i] != nil {
				continue
			}
			val, err := batch.Transport.ReadResponse(cmd)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			results[batch.Indices[i]] = val
		}
	}

	if firstErr != nil {
		return nil, &resp.PipelineError{Cause: firstErr}
	}
	return results, nil
}
