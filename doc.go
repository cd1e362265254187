// Package redline provides a client library for a Redis-like line
// protocol server, built around client-side consistent-hash sharding.
//
// # Architecture Overview
//
// redline consists of several layered components:
//
//   - pkg/resp: the wire codec — inline, bulk and multibulk request
//     encoding, and a decoder covering all five reply kinds
//   - pkg/command: the command catalog — names dispatch to descriptors
//     that know a command's encoding, reply shaper, and whether it can be
//     routed by key
//   - pkg/hash: a CRC32 consistent-hash ring with fixed virtual replicas
//   - pkg/transport: one TCP connection, with connect/disconnect and
//     timeout handling
//   - pkg/connset: the Single and Ring connection-set shapes built on top
//     of one or many transports
//   - pkg/pipeline: the buffered write-then-read command coordinator,
//     grouping by target node on a sharded connection set
//   - pkg/client: the public Client facade tying the above together
//   - pkg/config: ClientOptions loading from environment variables and an
//     optional YAML file
//
// # Quick Start
//
// Single endpoint:
//
//	import "github.com/cachemir/redline/pkg/client"
//
//	c := client.New("localhost", 6379)
//	if err := c.Connect(); err != nil {
//		log.Fatal(err)
//	}
//	defer c.Disconnect()
//
//	if _, err := c.Do("set", "user:123", "john_doe"); err != nil {
//		log.Fatal(err)
//	}
//	value, err := c.Do("get", "user:123")
//
// Sharded across several nodes:
//
//	c := client.NewSharded([]string{"node1:6379", "node2:6379", "node3:6379"})
//	c.Connect()
//	c.Do("set", "session:42", "active")
//
// Pipelining a batch of commands in one round trip:
//
//	results, err := c.Pipeline(func(p *client.Pipeliner) error {
//		if err := p.Do("set", "a", "1"); err != nil {
//			return err
//		}
//		return p.Do("incr", "counter")
//	})
//
// # Non-goals
//
// redline does not pool multiple connections per node, retry a failed
// command automatically, reconnect after a dropped connection, or support
// TLS, pub/sub, transactions or Lua scripting. Callers who need those
// build them on top of Client, which exposes the raw connection and
// command primitives needed to do so.
package redline
