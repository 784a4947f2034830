// Package safetysw reads the hardware safety interlock. The armed bit in
// the outbound heartbeat is gated on this switch not being in the disarmed
// position.
package safetysw

import "tracker-gcs/internal/vehicle"

// Switch samples the interlock position.
type Switch interface {
	State() vehicle.SafetySwitchState
	Close() error
}

// None is the no-hardware switch: always reports SafetyNone, which does
// not block arming.
type None struct{}

func (None) State() vehicle.SafetySwitchState { return vehicle.SafetyNone }

func (None) Close() error { return nil }
