package vehicle

import (
	"github.com/sirupsen/logrus"

	"tracker-gcs/internal/mav"
)

// Tracker is the default Controller: it keeps State consistent with the
// requested transitions but implements no pointing behavior. Deployments
// with real servo control swap in their own Controller.
type Tracker struct {
	State *State
	Log   *logrus.Logger

	// Guided setpoint, transient: last forwarded angle command.
	GuidedQuat       [4]float32
	GuidedUseYawRate bool
	GuidedYawRate    float32
}

func NewTracker(st *State, log *logrus.Logger) *Tracker {
	return &Tracker{State: st, Log: log}
}

func (t *Tracker) SetMode(m Mode, reason ModeReason) {
	if t.State.Mode == m {
		return
	}
	t.Log.WithFields(logrus.Fields{"mode": m.String(), "reason": reason}).Info("mode change")
	t.State.Mode = m
}

func (t *Tracker) ArmServos() bool {
	t.State.SoftArmed = true
	return true
}

func (t *Tracker) DisarmServos() bool {
	t.State.SoftArmed = false
	return true
}

func (t *Tracker) SetServo(servo uint8, pwm uint16) bool {
	if int(servo) < 1 || int(servo) > len(t.State.ServoOutputs) {
		return false
	}
	if pwm < 800 || pwm > 2200 {
		return false
	}
	t.State.ServoOutputs[servo-1] = pwm
	return true
}

func (t *Tracker) SetGuidedAngle(q [4]float32, useYawRate bool, yawRateRads float32) {
	t.GuidedQuat = q
	t.GuidedUseYawRate = useYawRate
	t.GuidedYawRate = yawRateRads
}

func (t *Tracker) SetHome(loc Location) bool {
	t.State.Home = loc
	t.State.HomeSet = true
	if t.State.Stationary {
		t.State.CurrentLoc = loc
	}
	return true
}

func (t *Tracker) UpdateTargetPosition(p mav.GlobalPositionInt) {
	t.State.TargetPosition = p
}

func (t *Tracker) UpdateTargetPressure(p mav.ScaledPressure) {
	t.State.TargetPressure = p
	if t.State.Nav.NeedAltitudeCalibration {
		// One-shot recalibration: the next pressure report becomes the
		// zero reference.
		t.State.Nav.AltDifferenceBaroM = 0
		t.State.Nav.NeedAltitudeCalibration = false
	}
}

func (t *Tracker) HandleManualControl(m mav.ManualControl) {
	if t.State.Mode != ModeManual {
		return
	}
	// Map the joystick axes straight onto the two output channels.
	t.State.RCInputs[0] = uint16(1500 + int32(m.X)/4)
	t.State.RCInputs[1] = uint16(1500 + int32(m.Y)/4)
}
