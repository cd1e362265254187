package connset

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cachemir/redline/internal/mocksrv"
	"github.com/cachemir/redline/pkg/command"
)

func TestSingleExecute(t *testing.T) {
	srv := mocksrv.Start(t)
	srv.Serve([]mocksrv.Step{
		{Reply: []byte("+PONG\r\n")},
	})
	host, port := srv.Addr()
	s := NewSingle(host, port)
	require.NoError(t, s.Connect())
	defer s.Disconnect()

	catalog := command.NewCatalog()
	desc, _ := catalog.Lookup("ping")
	reply, err := s.Execute(&command.Command{Descriptor: desc})
	require.NoError(t, err)
	require.Equal(t, true, reply)
}

func TestRingRoutesShardableCommandsConsistently(t *testing.T) {
	srvA := mocksrv.Start(t)
	srvB := mocksrv.Start(t)
	srvA.Serve(nil)
	srvB.Serve(nil)

	hostA, portA := srvA.Addr()
	hostB, portB := srvB.Addr()
	nodeA := hostA + ":" + strconv.Itoa(portA)
	nodeB := hostB + ":" + strconv.Itoa(portB)

	r := NewRing([]string{nodeA, nodeB})
	require.NoError(t, r.Connect())
	defer r.Disconnect()

	catalog := command.NewCatalog()
	setDesc, _ := catalog.Lookup("set")

	// Route the same key twice; both must land on the same transport.
	cmd1 := &command.Command{Descriptor: setDesc, Args: [][]byte{[]byte("samekey"), []byte("v1")}}
	t1 := r.transportFor(cmd1)
	cmd2 := &command.Command{Descriptor: setDesc, Args: [][]byte{[]byte("samekey"), []byte("v2")}}
	t2 := r.transportFor(cmd2)
	require.Same(t, t1, t2)
}

func TestRingNonShardableFallsBackToFirstNode(t *testing.T) {
	srvA := mocksrv.Start(t)
	srvB := mocksrv.Start(t)
	srvA.Serve(nil)
	srvB.Serve(nil)

	hostA, portA := srvA.Addr()
	hostB, portB := srvB.Addr()
	nodeA := hostA + ":" + strconv.Itoa(portA)
	nodeB := hostB + ":" + strconv.Itoa(portB)

	r := NewRing([]string{nodeA, nodeB})
	catalog := command.NewCatalog()
	pingDesc, _ := catalog.Lookup("ping")
	cmd := &command.Command{Descriptor: pingDesc}
	require.Same(t, r.transports[0], r.transportFor(cmd))
}
