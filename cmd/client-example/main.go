// Command client-example demonstrates basic use of the redline client
// against a single node and against a sharded set.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cachemir/redline/pkg/client"
)

func main() {
	c := client.New("localhost", 6379)
	runBasics(c)

	sharded := client.NewSharded([]string{"localhost:6379", "localhost:6380", "localhost:6381"})
	if err := sharded.Connect(); err != nil {
		log.Printf("sharded connect failed (expected if no cluster is running): %v", err)
		return
	}
	defer sharded.Disconnect()

	if _, err := sharded.Do("set", "session:42", "active"); err != nil {
		log.Fatalf("set: %v", err)
	}
	v, err := sharded.Do("get", "session:42")
	if err != nil {
		log.Fatalf("get: %v", err)
	}
	fmt.Printf("session:42 = %v\n", v)

	results, err := sharded.Pipeline(func(p *client.Pipeliner) error {
		for i := 0; i < 5; i++ {
			if err := p.Do("incr", "visits"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}
	fmt.Printf("pipeline results: %v\n", results)
}

func runBasics(c *client.Client) {
	if err := c.Connect(); err != nil {
		log.Printf("connect failed (expected if no server is running): %v", err)
		return
	}
	defer c.Disconnect()

	if ok, err := c.Do("ping"); err != nil {
		log.Fatalf("ping: %v", err)
	} else {
		fmt.Printf("ping -> %v\n", ok)
	}

	if _, err := c.Do("set", "user:123", "john_doe"); err != nil {
		log.Fatalf("set: %v", err)
	}
	if v, err := c.Do("get", "user:123"); err != nil {
		log.Fatalf("get: %v", err)
	} else {
		fmt.Printf("user:123 = %v\n", v)
	}

	ttlSeconds := int(time.Hour / time.Second)
	if _, err := c.Do("setex", "session:ttl", ttlSeconds, "value"); err != nil {
		log.Fatalf("setex: %v", err)
	}

	if _, err := c.Do("hset", "profile:123", "name", "john"); err != nil {
		log.Fatalf("hset: %v", err)
	}
	hash, err := c.Do("hgetall", "profile:123")
	if err != nil {
		log.Fatalf("hgetall: %v", err)
	}
	fmt.Printf("profile:123 = %v\n", hash)
}
