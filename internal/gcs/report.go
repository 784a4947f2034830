package gcs

import (
	"math"

	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
)

// SendHeartbeat emits the tracker heartbeat on every channel. The daemon
// calls this at 1 Hz, outside the stream budget.
func (s *Server) SendHeartbeat() {
	st := s.state
	hb := mav.Heartbeat{
		Type:         mav.TypeAntennaTracker,
		Autopilot:    3, // ArduPilot-compatible autopilot id
		BaseMode:     BaseMode(st.Mode, st.Safety, st.SoftArmed),
		CustomMode:   CustomMode(st.Mode),
		SystemStatus: SystemStatus(st.Mode),
	}
	for _, ch := range s.channels {
		ch.Send(hb)
	}
}

// buildStreamMessage produces the payload for one scheduled kind. Kinds
// with no local producer report false and are skipped without consuming
// buffer space.
func (s *Server) buildStreamMessage(kind mav.Kind) (mav.Message, bool) {
	st := s.state
	now := s.now()
	bootMs := uint32(now.Sub(st.BootTime).Milliseconds())

	switch kind {
	case mav.KindRawIMU:
		imu := st.OwnIMU
		imu.TimeUsec = uint64(now.Sub(st.BootTime).Microseconds())
		return imu, true

	case mav.KindScaledPressure:
		p := st.OwnPressure
		p.TimeBootMs = bootMs
		return p, true

	case mav.KindSysStatus:
		return mav.SysStatus{VoltageBattery: st.BatteryMv}, true

	case mav.KindNavControllerOutput:
		return s.buildNavControllerOutput(), true

	case mav.KindGlobalPositionInt:
		return s.buildGlobalPositionInt(bootMs), true

	case mav.KindServoOutputRaw:
		return mav.ServoOutputRaw{
			TimeUsec:  uint32(now.Sub(st.BootTime).Microseconds()),
			Servo1Raw: st.ServoOutputs[0],
			Servo2Raw: st.ServoOutputs[1],
		}, true

	case mav.KindRCChannels:
		return mav.RCChannels{
			TimeBootMs: bootMs,
			Chan1Raw:   st.RCInputs[0],
			Chan2Raw:   st.RCInputs[1],
			ChanCount:  uint8(len(st.RCInputs)),
		}, true

	case mav.KindAttitude:
		return mav.Attitude{
			TimeBootMs: bootMs,
			Roll:       st.Att.RollRad,
			Pitch:      st.Att.PitchRad,
			Yaw:        st.Att.YawRad,
		}, true

	case mav.KindAHRS:
		return mav.AHRS{}, true

	case mav.KindSystemTime:
		return mav.SystemTime{
			TimeUnixUsec: uint64(now.UnixMicro()),
			TimeBootMs:   bootMs,
		}, true
	}

	return nil, false
}

// buildNavControllerOutput reports the pointing error: where the dish aims
// versus where the target is. Distance saturates at the 16-bit field.
func (s *Server) buildNavControllerOutput() mav.NavControllerOutput {
	nav := s.state.Nav

	altDiff := nav.AltDifferenceBaroM
	if s.p.AltSource == AltSourceGPS {
		altDiff = nav.AltDifferenceGPSM
	}

	dist := nav.DistanceM
	if dist > math.MaxUint16 {
		dist = math.MaxUint16
	}
	if dist < 0 {
		dist = 0
	}

	return mav.NavControllerOutput{
		NavPitch:      nav.PitchDeg,
		NavBearing:    int16(nav.BearingDeg),
		TargetBearing: int16(nav.BearingDeg),
		WpDist:        uint16(dist),
		AltError:      altDiff,
	}
}

// buildGlobalPositionInt reports the position the tracker is using. A
// stationary tracker synthesizes the report from its fixed location with
// zero velocity and the compass heading; a moving one reports the live
// estimate.
func (s *Server) buildGlobalPositionInt(bootMs uint32) mav.GlobalPositionInt {
	st := s.state

	if st.Stationary {
		return mav.GlobalPositionInt{
			TimeBootMs: bootMs,
			Lat:        st.CurrentLoc.LatE7,
			Lon:        st.CurrentLoc.LngE7,
			Alt:        st.CurrentLoc.AltCm * 10, // cm to mm
			Hdg:        st.Att.YawSensorCd,
		}
	}

	return mav.GlobalPositionInt{
		TimeBootMs:  bootMs,
		Lat:         st.CurrentLoc.LatE7,
		Lon:         st.CurrentLoc.LngE7,
		Alt:         st.CurrentLoc.AltCm * 10,
		RelativeAlt: relativeAltMm(st.CurrentLoc.AltCm, st.Home.AltCm),
		Hdg:         st.Att.YawSensorCd,
	}
}

func relativeAltMm(altCm, homeAltCm int32) int32 {
	return (altCm - homeAltCm) * 10
}

// sendPIDTuning emits the pid-tuning reports selected by the axis mask,
// checking buffer space before each axis.
func (s *Server) sendPIDTuning(ch *Channel) bool {
	st := s.state

	if s.p.PIDMask&1 != 0 {
		if !ch.trySend(pidTuningMsg(mav.PIDTuningPitch, st.PitchPID)) {
			return false
		}
	}
	if s.p.PIDMask&2 != 0 {
		if !ch.trySend(pidTuningMsg(mav.PIDTuningYaw, st.YawPID)) {
			return false
		}
	}
	return true
}

func pidTuningMsg(axis uint8, info vehicle.PIDInfo) mav.PIDTuning {
	return mav.PIDTuning{
		Axis:     axis,
		Desired:  info.Desired,
		Achieved: info.Achieved,
		FF:       info.FF,
		P:        info.P,
		I:        info.I,
		D:        info.D,
		SRate:    info.SRate,
		PDmod:    info.PDmod,
	}
}
