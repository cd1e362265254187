package command

import (
	"sync"

	"github.com/cachemir/redline/pkg/resp"
)

// Catalog maps command names to descriptors. Names include both the
// lowercase wire verb (get, set, hgetall) and the occasional stable alias
// (getSet, setPreserve) kept for callers migrating off an older client.
// A Catalog starts pre-populated with the built-in commands and grows only
// through Register/RegisterMany; there is no way to unregister a name.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]*Descriptor
}

// NewCatalog returns a Catalog seeded with the full built-in command set.
func NewCatalog() *Catalog {
	c := &Catalog{byName: make(map[string]*Descriptor)}
	c.registerDefaults()
	return c
}

// Register adds or overwrites a single name.
func (c *Catalog) Register(name string, d *Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName[name] = d
}

// RegisterMany adds or overwrites a batch of names in one call.
func (c *Catalog) RegisterMany(m map[string]*Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, d := range m {
		c.byName[name] = d
	}
}

// Lookup resolves a dispatch name to its descriptor. An unknown name is a
// ClientError, not a server round trip.
func (c *Catalog) Lookup(name string) (*Descriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.byName[name]
	if !ok {
		return nil, &resp.ClientError{Msg: "unregistered command: " + name}
	}
	return d, nil
}

func inline(verb string, shaper Shaper, shardable bool) *Descriptor {
	return &Descriptor{Verb: verb, Encoding: Inline, Shaper: shaper, Shardable: shardable}
}

func multi(verb string, shaper Shaper, shardable bool) *Descriptor {
	return &Descriptor{Verb: verb, Encoding: MultiBulk, Shaper: shaper, Shardable: shardable}
}

// registerDefaults installs the built-in command set. GET is the one
// command whose argument (a single whitespace-free key) is safe to send
// inline; every other command carrying a binary-unsafe payload or more
// than one argument uses MultiBulk's length-prefixed framing, and
// no-argument or purely textual server-scope commands use Inline. Bulk
// remains available to callers registering their own commands through
// RegisterCommand, by constructing a Descriptor directly, but nothing in
// the built-in set needs it.
func (c *Catalog) registerDefaults() {
	ping := inline("PING", ShapePing, false)
	c.byName["ping"] = ping

	quit := inline("QUIT", nil, false)
	quit.ClosesConnection = true
	c.byName["quit"] = quit

	shutdown := inline("SHUTDOWN", nil, false)
	shutdown.ClosesConnection = true
	c.byName["shutdown"] = shutdown

	c.byName["auth"] = inline("AUTH", ShapeStatus, false)
	c.byName["select"] = inline("SELECT", ShapeStatus, false)
	c.byName["echo"] = inline("ECHO", ShapeBulkString, false)
	c.byName["dbsize"] = inline("DBSIZE", ShapeInteger, false)
	c.byName["randomkey"] = inline("RANDOMKEY", ShapeRandomKey, false)
	c.byName["flushdb"] = inline("FLUSHDB", ShapeStatus, false)
	c.byName["flushall"] = inline("FLUSHALL", ShapeStatus, false)
	c.byName["save"] = inline("SAVE", ShapeStatus, false)
	c.byName["bgsave"] = inline("BGSAVE", ShapeStatus, false)
	c.byName["lastsave"] = inline("LASTSAVE", ShapeInteger, false)
	c.byName["info"] = inline("INFO", ShapeInfo, false)

	slaveof := inline("SLAVEOF", ShapeStatus, false)
	slaveof.ArgFilter = SlaveofFilter
	c.byName["slaveof"] = slaveof

	// GET uses the inline encoding, matching the protocol's original form.
	// Inline has no length framing, so a key containing whitespace or CRLF
	// does not round-trip safely; callers needing that should go through a
	// binary-safe custom descriptor instead. Every command below here
	// writes a binary-unsafe payload argument and needs MultiBulk's
	// length-prefixed framing.
	c.byName["get"] = inline("GET", ShapeBulkString, true)
	c.byName["set"] = multi("SET", ShapeStatus, true)
	c.byName["setnx"] = multi("SETNX", ShapeBool, true)
	c.byName["setPreserve"] = c.byName["setnx"]
	c.byName["getset"] = multi("GETSET", ShapeBulkString, true)
	c.byName["getSet"] = c.byName["getset"]
	c.byName["setex"] = multi("SETEX", ShapeStatus, true)
	c.byName["append"] = multi("APPEND", ShapeInteger, true)
	c.byName["strlen"] = multi("STRLEN", ShapeInteger, true)

	c.byName["del"] = multi("DEL", ShapeBool, true)
	c.byName["exists"] = multi("EXISTS", ShapeBool, true)
	c.byName["type"] = multi("TYPE", ShapeStatus, true)
	c.byName["rename"] = multi("RENAME", ShapeStatus, false)
	c.byName["renamenx"] = multi("RENAMENX", ShapeBool, false)
	c.byName["move"] = multi("MOVE", ShapeBool, false)
	c.byName["keys"] = multi("KEYS", ShapeArrayOfStrings, false)
	c.byName["mget"] = multi("MGET", ShapeOptionalStringArray, false)
	c.byName["mset"] = multi("MSET", ShapeStatus, false)
	c.byName["msetnx"] = multi("MSETNX", ShapeBool, false)

	c.byName["incr"] = multi("INCR", ShapeInteger, true)
	c.byName["decr"] = multi("DECR", ShapeInteger, true)
	c.byName["incrby"] = multi("INCRBY", ShapeInteger, true)
	c.byName["decrby"] = multi("DECRBY", ShapeInteger, true)

	c.byName["expire"] = multi("EXPIRE", ShapeBool, true)
	c.byName["expireat"] = multi("EXPIREAT", ShapeBool, true)
	c.byName["ttl"] = multi("TTL", ShapeInteger, true)
	c.byName["persist"] = multi("PERSIST", ShapeBool, true)

	c.byName["hget"] = multi("HGET", ShapeBulkString, true)
	c.byName["hset"] = multi("HSET", ShapeStatus, true)
	c.byName["hdel"] = multi("HDEL", ShapeInteger, true)
	c.byName["hexists"] = multi("HEXISTS", ShapeBool, true)
	c.byName["hgetall"] = multi("HGETALL", ShapeHash, true)
	c.byName["hkeys"] = multi("HKEYS", ShapeArrayOfStrings, true)

	c.byName["lpush"] = multi("LPUSH", ShapeInteger, true)
	c.byName["rpush"] = multi("RPUSH", ShapeInteger, true)
	c.byName["lpop"] = multi("LPOP", ShapeBulkString, true)
	c.byName["rpop"] = multi("RPOP", ShapeBulkString, true)
	c.byName["llen"] = multi("LLEN", ShapeInteger, true)
	c.byName["lrange"] = multi("LRANGE", ShapeArrayOfStrings, true)

	c.byName["sadd"] = multi("SADD", ShapeBool, true)
	c.byName["srem"] = multi("SREM", ShapeBool, true)
	c.byName["smembers"] = multi("SMEMBERS", ShapeArrayOfStrings, true)
	c.byName["sismember"] = multi("SISMEMBER", ShapeBool, true)
	c.byName["smove"] = multi("SMOVE", ShapeBool, false)
	c.byName["scard"] = multi("SCARD", ShapeInteger, true)

	c.byName["zadd"] = multi("ZADD", ShapeBool, true)
	c.byName["zrem"] = multi("ZREM", ShapeBool, true)
	c.byName["zscore"] = multi("ZSCORE", ShapeBulkString, true)
	c.byName["zrange"] = multi("ZRANGE", ShapeArrayOfStrings, true)

	sort := multi("SORT", ShapeArrayOfStrings, true)
	sort.ArgFilter = SortArgFilter
	c.byName["sort"] = sort
}
