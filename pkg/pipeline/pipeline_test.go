package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cachemir/redline/internal/mocksrv"
	"github.com/cachemir/redline/pkg/command"
	"github.com/cachemir/redline/pkg/connset"
	"github.com/cachemir/redline/pkg/resp"
)

func TestPipelineFlushInOrder(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve([]mocksrv.Step{
		{Reply: []byte("+OK\r\n")},
		{Reply: []byte(":1\r\n")},
		{Reply: []byte("$1\r\n1\r\n")},
	})
	host, port := srv.Addr()
	s := connset.NewSingle(host, port)
	require.NoError(t, s.Connect())
	defer s.Disconnect()

	catalog := command.NewCatalog()
	setDesc, _ := catalog.Lookup("set")
	incrDesc, _ := catalog.Lookup("incr")
	getDesc, _ := catalog.Lookup("get")

	p := New(s)
	p.Enqueue(&command.Command{Descriptor: setDesc, Args: [][]byte{[]byte("counter"), []byte("0")}})
	p.Enqueue(&command.Command{Descriptor: incrDesc, Args: [][]byte{[]byte("counter")}})
	p.Enqueue(&command.Command{Descriptor: getDesc, Args: [][]byte{[]byte("counter")}})

	results, err := p.Flush()
	require.NoError(t, err)
	require.Equal(t, []interface{}{true, int64(1), "1"}, results)
}

func TestPipelineFlushAggregatesServerError(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve([]mocksrv.Step{
		{Reply: []byte("+OK\r\n")},
		{Reply: []byte("-ERR value is not an integer\r\n")},
		{Reply: []byte("$1\r\n1\r\n")},
	})
	host, port := srv.Addr()
	s := connset.NewSingle(host, port)
	require.NoError(t, s.Connect())
	defer s.Disconnect()

	catalog := command.NewCatalog()
	setDesc, _ := catalog.Lookup("set")
	incrDesc, _ := catalog.Lookup("incr")
	getDesc, _ := catalog.Lookup("get")

	p := New(s)
	p.Enqueue(&command.Command{Descriptor: setDesc, Args: [][]byte{[]byte("counter"), []byte("notanumber")}})
	p.Enqueue(&command.Command{Descriptor: incrDesc, Args: [][]byte{[]byte("counter")}})
	p.Enqueue(&command.Command{Descriptor: getDesc, Args: [][]byte{[]byte("counter")}})

	results, err := p.Flush()
	require.Nil(t, results)
	require.Error(t, err)

	var pipelineErr *resp.PipelineError
	require.ErrorAs(t, err, &pipelineErr)
	var serverErr *resp.ServerError
	require.ErrorAs(t, err, &serverErr)
}

func TestPipelineFlushEmptyIsNoop(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve(nil)
	host, port := srv.Addr()
	s := connset.NewSingle(host, port)
	require.NoError(t, s.Connect())
	defer s.Disconnect()

	p := New(s)
	results, err := p.Flush()
	require.NoError(t, err)
	require.Nil(t, results)
}
