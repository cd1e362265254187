package connset

import (
	"time"

	"github.com/cachemir/redline/pkg/transport"
)

// Option configures a transport.Transport at construction time.
type Option func(*transport.Transport)

func WithConnectTimeout(d time.Duration) Option {
	return func(t *transport.Transport) { t.ConnectTimeout = d }
}

func WithReadTimeout(d time.Duration) Option {
	return func(t *transport.Transport) { t.ReadTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(t *transport.Transport) { t.WriteTimeout = d }
}
