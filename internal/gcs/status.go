package gcs

import (
	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
)

// BaseMode computes the heartbeat base-mode bitmask. The bits are only
// loosely meaningful for a tracker; generic ground stations read the
// custom mode for anything precise.
func BaseMode(mode vehicle.Mode, safety vehicle.SafetySwitchState, softArmed bool) uint8 {
	base := mav.ModeFlagCustomModeEnabled

	switch mode {
	case vehicle.ModeManual:
		base |= mav.ModeFlagManualInputEnabled
	case vehicle.ModeScan, vehicle.ModeServoTest, vehicle.ModeAuto, vehicle.ModeGuided:
		base |= mav.ModeFlagGuidedEnabled | mav.ModeFlagStabilizeEnabled
	case vehicle.ModeStop, vehicle.ModeInitialising:
		// no extra bits
	}

	// Armed if the safety switch is not in the disarmed position, we are
	// out of initialising, and software arming has happened.
	if safety != vehicle.SafetyDisarmed && mode != vehicle.ModeInitialising && softArmed {
		base |= mav.ModeFlagSafetyArmed
	}

	return base
}

// CustomMode is the mode's numeric id as advertised in the heartbeat.
func CustomMode(mode vehicle.Mode) uint32 {
	return uint32(mode)
}

// SystemStatus maps the active mode onto the coarse heartbeat state.
func SystemStatus(mode vehicle.Mode) mav.SystemStatus {
	if mode == vehicle.ModeInitialising {
		return mav.StatusCalibrating
	}
	return mav.StatusActive
}
