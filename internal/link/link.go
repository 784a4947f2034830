// Package link provides the ground-link transports a channel writes to.
// One Transport per physical connection; the protocol core owns ordering
// and rate control above this layer.
package link

import (
	"io"
)

// Transport is one bidirectional ground-link connection.
type Transport interface {
	io.ReadWriter
	io.Closer
	Name() string
}
