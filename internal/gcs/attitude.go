package gcs

import (
	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
)

// handleSetAttitudeTarget validates a guided pointing command and forwards
// the setpoint. Invalid commands are dropped without an acknowledgment;
// that matches what ground stations already expect from this message kind.
func (s *Server) handleSetAttitudeTarget(m mav.SetAttitudeTarget) {
	if s.state.Mode != vehicle.ModeGuided {
		return
	}

	// Sanity checks:
	if m.BodyRollRate != 0 {
		return
	}
	if m.TypeMask&mav.AttMaskIgnoreBodyRollRate == 0 {
		// not told to ignore body roll rate
		return
	}
	if m.TypeMask&mav.AttMaskIgnoreThrottle == 0 {
		// not told to ignore throttle
		return
	}
	if m.TypeMask&mav.AttMaskIgnoreAttitude != 0 {
		// told to ignore attitude (continuous motion unsupported)
		return
	}
	if m.TypeMask&mav.AttMaskReserved3 != 0 && m.TypeMask&mav.AttMaskReserved4 != 0 {
		// told to ignore both pitch and yaw rates - nothing to do
		return
	}

	useYawRate := m.TypeMask&mav.AttMaskIgnoreBodyYawRate == 0
	s.ctrl.SetGuidedAngle(m.Q, useYawRate, m.BodyYawRate)
}
