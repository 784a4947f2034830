package link

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUDP_WriteReachesPeer(t *testing.T) {
	peer, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer peer.Close()

	u, err := NewUDP(peer.LocalAddr().String())
	require.NoError(t, err)
	defer u.Close()

	_, err = u.Write([]byte("ping\n"))
	require.NoError(t, err)

	require.NoError(t, peer.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 64)
	n, _, err := peer.ReadFromUDP(buf)
	require.NoError(t, err)
	assert.Equal(t, "ping\n", string(buf[:n]))
}

func TestUDP_EmptyWriteIsNoop(t *testing.T) {
	peer, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer peer.Close()

	u, err := NewUDP(peer.LocalAddr().String())
	require.NoError(t, err)
	defer u.Close()

	n, err := u.Write(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUDP_BadDest(t *testing.T) {
	_, err := NewUDP("not-an-endpoint")
	assert.Error(t, err)
}

// readOne reads a single datagram off tr on a goroutine so a lost packet
// fails the test instead of hanging it.
func readOne(t *testing.T, tr Transport) []byte {
	t.Helper()
	got := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 256)
		n, err := tr.Read(buf)
		if err != nil {
			return
		}
		got <- buf[:n]
	}()
	select {
	case b := <-got:
		return b
	case <-time.After(2 * time.Second):
		t.Fatal("no datagram received")
		return nil
	}
}

func TestUDPListener_PairsWithDialer(t *testing.T) {
	// The dev wiring: the daemon listens, the simulator dials in.
	lst, err := ListenUDP("127.0.0.1:0")
	require.NoError(t, err)
	defer lst.Close()

	dialer, err := NewUDP(lst.Addr().String())
	require.NoError(t, err)
	defer dialer.Close()

	// Inbound: the dialer's datagram reaches the listener's reader.
	_, err = dialer.Write([]byte("heartbeat\n"))
	require.NoError(t, err)
	assert.Equal(t, "heartbeat\n", string(readOne(t, lst)))

	// Outbound: once a peer has spoken, replies go back to it.
	_, err = lst.Write([]byte("stream-request\n"))
	require.NoError(t, err)
	assert.Equal(t, "stream-request\n", string(readOne(t, dialer)))
}

func TestUDPListener_WriteBeforePeerDropped(t *testing.T) {
	lst, err := ListenUDP("127.0.0.1:0")
	require.NoError(t, err)
	defer lst.Close()

	// No peer yet: the write is dropped, not an error.
	n, err := lst.Write([]byte("heartbeat\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestUDPListener_Name(t *testing.T) {
	lst, err := ListenUDP("127.0.0.1:0")
	require.NoError(t, err)
	defer lst.Close()

	assert.Contains(t, lst.Name(), "udp-listen:")
}

func TestUDP_Name(t *testing.T) {
	peer, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer peer.Close()

	u, err := NewUDP(peer.LocalAddr().String())
	require.NoError(t, err)
	defer u.Close()

	assert.Contains(t, u.Name(), "udp:")
}
