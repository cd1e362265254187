package transport

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// controlReuseAddr is installed as a net.Dialer's Control hook so outbound
// connections set SO_REUSEADDR before bind/connect, letting a client
// rebuild a connection against the same local port right after tearing the
// previous one down instead of waiting out TIME_WAIT.
func controlReuseAddr(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
