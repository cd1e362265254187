package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cachemir/redline/internal/mocksrv"
	"github.com/cachemir/redline/pkg/command"
)

func TestClientDoGetSet(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve([]mocksrv.Step{
		{Reply: []byte("+OK\r\n")},
		{Reply: []byte("$5\r\nworld\r\n")},
	})
	host, port := srv.Addr()
	c := New(host, port)
	require.NoError(t, c.Connect())
	defer c.Disconnect()

	ok, err := c.Do("set", "hello", "world")
	require.NoError(t, err)
	require.Equal(t, true, ok)

	v, err := c.Do("get", "hello")
	require.NoError(t, err)
	require.Equal(t, "world", v)
}

func TestClientDoUnregisteredCommand(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve(nil)
	host, port := srv.Addr()
	c := New(host, port)
	require.NoError(t, c.Connect())
	defer c.Disconnect()

	_, err := c.Do("notacommand")
	require.Error(t, err)
}

func TestClientPipeline(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve([]mocksrv.Step{
		{Reply: []byte("+OK\r\n")},
		{Reply: []byte(":1\r\n")},
	})
	host, port := srv.Addr()
	c := New(host, port)
	require.NoError(t, c.Connect())
	defer c.Disconnect()

	results, err := c.Pipeline(func(p *Pipeliner) error {
		if err := p.Do("set", "a", "1"); err != nil {
			return err
		}
		return p.Do("incr", "counter")
	})
	require.NoError(t, err)
	require.Equal(t, []interface{}{true, int64(1)}, results)
}

func TestClientDoWhilePipeliningRejected(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve([]mocksrv.Step{{Reply: []byte("+OK\r\n")}})
	host, port := srv.Addr()
	c := New(host, port)
	require.NoError(t, c.Connect())
	defer c.Disconnect()

	_, err := c.Pipeline(func(p *Pipeliner) error {
		_, doErr := c.Do("set", "a", "1")
		require.Error(t, doErr)
		return p.Do("set", "a", "1")
	})
	require.NoError(t, err)
}

func TestClientSortEndToEnd(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve([]mocksrv.Step{
		{
			WantRequest: []byte("*8\r\n$4\r\nSORT\r\n$6\r\nmylist\r\n$2\r\nBY\r\n$8\r\nweight_*\r\n$5\r\nLIMIT\r\n$1\r\n0\r\n$2\r\n10\r\n$5\r\nALPHA\r\n"),
			Reply:       []byte("*2\r\n$1\r\na\r\n$1\r\nb\r\n"),
		},
	})
	host, port := srv.Addr()
	c := New(host, port)
	require.NoError(t, c.Connect())
	defer c.Disconnect()

	opts := &command.SortOptions{By: "weight_*", HasLimit: true, Offset: 0, Count: 10, Alpha: true}
	got, err := c.Do("sort", "mylist", opts.ToPairs())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestClientRawCommandRejectedOnSharded(t *testing.T) {
	c := NewSharded([]string{"127.0.0.1:1", "127.0.0.1:2"})
	_, err := c.RawCommand([]byte("PING\r\n"), true)
	require.Error(t, err)
}
