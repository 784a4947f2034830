//go:build !linux

package safetysw

import "fmt"

// Open is unavailable off Linux; use None.
func Open(pin int) (Switch, error) {
	return nil, fmt.Errorf("safetysw: gpio not supported on this platform")
}
