package link

import (
	"fmt"
	"net"
	"sync"
)

// UDP is a datagram link to a fixed ground-station endpoint.
type UDP struct {
	dest string
	conn *net.UDPConn
}

func NewUDP(dest string) (*UDP, error) {
	addr, err := net.ResolveUDPAddr("udp", dest)
	if err != nil {
		return nil, fmt.Errorf("resolve dest: %w", err)
	}

	// DialUDP selects a suitable local address automatically.
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial udp: %w", err)
	}

	return &UDP{dest: dest, conn: conn}, nil
}

func (u *UDP) Name() string { return "udp:" + u.dest }

func (u *UDP) Read(p []byte) (int, error) {
	n, _, err := u.conn.ReadFromUDP(p)
	return n, err
}

func (u *UDP) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return u.conn.Write(p)
}

func (u *UDP) Close() error {
	if u.conn == nil {
		return nil
	}
	return u.conn.Close()
}

// UDPListener is a datagram link bound to a local endpoint, for peers that
// dial us (a ground station or the target simulator). The peer is whoever
// sent the most recent datagram; outbound traffic goes back to it.
type UDPListener struct {
	addr string
	conn *net.UDPConn

	mu   sync.Mutex
	peer *net.UDPAddr
}

func ListenUDP(addr string) (*UDPListener, error) {
	la, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve listen addr: %w", err)
	}

	conn, err := net.ListenUDP("udp", la)
	if err != nil {
		return nil, fmt.Errorf("listen udp: %w", err)
	}

	return &UDPListener{addr: addr, conn: conn}, nil
}

func (u *UDPListener) Name() string { return "udp-listen:" + u.addr }

// Addr reports the bound local address.
func (u *UDPListener) Addr() net.Addr { return u.conn.LocalAddr() }

func (u *UDPListener) Read(p []byte) (int, error) {
	n, from, err := u.conn.ReadFromUDP(p)
	if err == nil && from != nil {
		u.mu.Lock()
		u.peer = from
		u.mu.Unlock()
	}
	return n, err
}

func (u *UDPListener) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	u.mu.Lock()
	peer := u.peer
	u.mu.Unlock()
	if peer == nil {
		// Nobody has dialed in yet; telemetry is fire-and-forget.
		return len(p), nil
	}
	return u.conn.WriteToUDP(p, peer)
}

func (u *UDPListener) Close() error {
	if u.conn == nil {
		return nil
	}
	return u.conn.Close()
}
