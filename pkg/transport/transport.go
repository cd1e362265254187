// Package transport implements the single-endpoint connection: dial,
// write-command, read-response, disconnect, against one TCP address.
package transport

import (
	"fmt"
	"net"
	"time"

	"github.com/cachemir/redline/pkg/command"
	"github.com/cachemir/redline/pkg/resp"
)

const (
	DefaultConnectTimeout = 2 * time.Second
	DefaultReadTimeout    = 5 * time.Second
	DefaultWriteTimeout   = 5 * time.Second
)

// Transport owns exactly one TCP connection to one address. It is not safe
// for concurrent use; callers serialize access the same way they'd
// serialize use of a single socket.
type Transport struct {
	Host string
	Port int

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	conn net.Conn
	dec  *resp.Decoder
}

// New returns a Transport for host:port with the package's default
// timeouts. Use the exported fields to override any of them before the
// first Connect.
func New(host string, port int) *Transport {
	return &Transport{
		Host:           host,
		Port:           port,
		ConnectTimeout: DefaultConnectTimeout,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
	}
}

func (t *Transport) Address() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// Connect dials the address. Calling Connect while already connected is a
// ClientError; call Disconnect first.
func (t *Transport) Connect() error {
	if t.conn != nil {
		return &resp.ClientError{Msg: "transport already connected to " + t.Address()}
	}
	dialer := &net.Dialer{Timeout: t.ConnectTimeout, Control: controlReuseAddr}
	conn, err := dialer.Dial("tcp", t.Address())
	if err != nil {
		return &resp.CommunicationError{Err: err}
	}
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	t.conn = conn
	t.dec = resp.NewDecoder(conn)
	return nil
}

// Disconnect closes the underlying socket, if any. Disconnecting an
// already-disconnected Transport is a no-op.
func (t *Transport) Disconnect() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	t.dec = nil
	return err
}

func (t *Transport) IsConnected() bool {
	return t.conn != nil
}

// WriteCommand serializes and writes cmd. If the command's descriptor
// closes the connection on success (QUIT, SHUTDOWN), the write is followed
// by an immediate local disconnect; no reply is expected from the server.
func (t *Transport) WriteCommand(cmd *command.Command) error {
	if t.conn == nil {
		return &resp.ClientError{Msg: "transport is not connected"}
	}
	if err := t.conn.SetWriteDeadline(time.Now().Add(t.WriteTimeout)); err != nil {
		return &resp.CommunicationError{Err: err}
	}
	data := cmd.Serialize()
	for len(data) > 0 {
		n, err := t.conn.Write(data)
		if err != nil {
			_ = t.Disconnect()
			return &resp.CommunicationError{Err: err}
		}
		data = data[n:]
	}
	if cmd.Descriptor.ClosesConnection {
		_ = t.Disconnect()
	}
	return nil
}

// ReadResponse reads one reply and runs it through cmd's shaper. Commands
// that close the connection have nothing to read.
func (t *Transport) ReadResponse(cmd *command.Command) (interface{}, error) {
	if cmd.Descriptor.ClosesConnection {
		return nil, nil
	}
	if t.conn == nil {
		return nil, &resp.ClientError{Msg: "transport is not connected"}
	}
	if err := t.conn.SetReadDeadline(time.Now().Add(t.ReadTimeout)); err != nil {
		return nil, &resp.CommunicationError{Err: err}
	}
	reply, err := t.dec.ReadReply()
	if err != nil {
		_ = t.Disconnect()
		return nil, err
	}
	if cmd.Descriptor.Shaper == nil {
		return nil, nil
	}
	return cmd.Descriptor.Shaper(reply)
}

// RawCommand is the escape hatch: it writes data verbatim and, if
// readReply is true, decodes and returns exactly one reply without running
// any shaper. Higher layers only expose this on a single, unsharded
// connection.
func (t *Transport) RawCommand(data []byte, readReply bool) (*resp.Reply, error) {
	if t.conn == nil {
		return nil, &resp.ClientError{Msg: "transport is not connected"}
	}
	if err := t.conn.SetWriteDeadline(time.Now().Add(t.WriteTimeout)); err != nil {
		return nil, &resp.CommunicationError{Err: err}
	}
	for len(data) > 0 {
		n, err := t.conn.Write(data)
		if err != nil {
			_ = t.Disconnect()
			return nil, &resp.CommunicationError{Err: err}
		}
		data = data[n:]
	}
	if !readReply {
		return nil, nil
	}
	if err := t.conn.SetReadDeadline(time.Now().Add(t.ReadTimeout)); err != nil {
		return nil, &resp.CommunicationError{Err: err}
	}
	reply, err := t.dec.ReadReply()
	if err != nil {
		_ = t.Disconnect()
		return nil, err
	}
	return reply, nil
}
