// Package vehicle holds the tracker-side state the protocol core reads and
// the control surface it drives. Mode behavior itself (the actual pointing
// logic) lives outside this repo; the core only requests transitions and
// forwards setpoints through the Controller interface.
package vehicle

import (
	"time"

	"tracker-gcs/internal/mav"
)

// Mode is the closed set of tracker control modes. Numeric values are the
// ids advertised as the heartbeat custom mode.
type Mode uint8

const (
	ModeManual       Mode = 0
	ModeStop         Mode = 1
	ModeScan         Mode = 2
	ModeServoTest    Mode = 3
	ModeGuided       Mode = 4
	ModeAuto         Mode = 10
	ModeInitialising Mode = 16
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "MANUAL"
	case ModeStop:
		return "STOP"
	case ModeScan:
		return "SCAN"
	case ModeServoTest:
		return "SERVOTEST"
	case ModeGuided:
		return "GUIDED"
	case ModeAuto:
		return "AUTO"
	case ModeInitialising:
		return "INITIALISING"
	}
	return "UNKNOWN"
}

// ModeReason records why a mode transition was requested.
type ModeReason uint8

const (
	ReasonStartup ModeReason = iota
	ReasonGCSCommand
	ReasonServoTest
	ReasonBatteryFailsafe
)

// AltFrame tags how a location's altitude is referenced.
type AltFrame uint8

const (
	AltFrameAbsolute AltFrame = iota
	AltFrameAboveHome
)

// Location is a position in 1e7-degree fixed point with altitude in
// centimeters.
type Location struct {
	LatE7 int32
	LngE7 int32
	AltCm int32
	Frame AltFrame
}

// SafetySwitchState mirrors the three-position hardware interlock.
type SafetySwitchState uint8

const (
	SafetyNone SafetySwitchState = iota
	SafetyDisarmed
	SafetyArmed
)

// NavStatus is the pointing controller's view of the target, refreshed by
// the estimation layer outside this repo.
type NavStatus struct {
	PitchDeg   float32
	BearingDeg float32
	DistanceM  float32

	AltDifferenceBaroM float32
	AltDifferenceGPSM  float32

	// NeedAltitudeCalibration requests a one-shot zeroing of the baro
	// altitude difference on the next pressure update.
	NeedAltitudeCalibration bool
}

// Attitude is the tracker's own orientation estimate.
type Attitude struct {
	RollRad  float32
	PitchRad float32
	YawRad   float32
	// YawSensorCd is the compass heading in centidegrees.
	YawSensorCd uint16
}

// State is the process-wide tracker context. All writes happen from the
// single run loop, so fields are plain; a port to concurrent processing
// must add its own exclusive-access discipline.
type State struct {
	Mode      Mode
	SoftArmed bool
	Safety    SafetySwitchState

	// Stationary is true when the tracker sits at a fixed surveyed
	// location instead of riding on a moving platform.
	Stationary bool

	CurrentLoc Location
	Home       Location
	HomeSet    bool

	Nav NavStatus
	Att Attitude

	BootTime time.Time

	// Most recent reports eavesdropped from the tracked vehicle.
	TargetPosition mav.GlobalPositionInt
	TargetPressure mav.ScaledPressure

	// Tracker-side sensor readings, refreshed by the estimation layer.
	OwnIMU      mav.RawIMU
	OwnPressure mav.ScaledPressure

	PitchPID PIDInfo
	YawPID   PIDInfo

	ServoOutputs [2]uint16
	RCInputs     [2]uint16
	BatteryMv    uint16
}

// PIDInfo is one servo controller's reportable state.
type PIDInfo struct {
	Desired  float32
	Achieved float32
	FF       float32
	P        float32
	I        float32
	D        float32
	SRate    float32
	PDmod    float32
}

// NewState returns a State in the boot configuration: initialising,
// disarmed, no home.
func NewState(now time.Time) *State {
	return &State{
		Mode:     ModeInitialising,
		BootTime: now,
	}
}

// Armed reports the effective armed state used in the heartbeat: the
// hardware interlock is not disarmed, the vehicle is out of the
// initialising mode, and software arming has happened.
func (s *State) Armed() bool {
	return s.Safety != SafetyDisarmed && s.Mode != ModeInitialising && s.SoftArmed
}

// Controller is the control surface the protocol core drives. The real
// mode implementations live outside this repo; Tracker below is the
// minimal state-keeping implementation.
type Controller interface {
	SetMode(Mode, ModeReason)
	ArmServos() bool
	DisarmServos() bool
	// SetServo drives one output channel to a raw PWM value while in
	// servo-test mode. Reports false when the channel or value is out of
	// range.
	SetServo(servo uint8, pwm uint16) bool
	// SetGuidedAngle forwards a guided-mode pointing setpoint.
	SetGuidedAngle(q [4]float32, useYawRate bool, yawRateRads float32)
	SetHome(Location) bool
	UpdateTargetPosition(mav.GlobalPositionInt)
	UpdateTargetPressure(mav.ScaledPressure)
	HandleManualControl(mav.ManualControl)
}
