package gcs

import (
	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
)

// handleCommandLong routes a long-form command and acknowledges it with
// the dispatch result.
func (s *Server) handleCommandLong(ch *Channel, pkt mav.Packet, cmd mav.CommandLong) {
	var result mav.Result

	switch cmd.Command {
	case mav.CmdDoSetServo:
		// Servo test implies servo-test mode.
		s.ctrl.SetMode(vehicle.ModeServoTest, vehicle.ReasonServoTest)
		if s.ctrl.SetServo(uint8(cmd.Param1), uint16(cmd.Param2)) {
			result = mav.ResultAccepted
		} else {
			result = mav.ResultFailed
		}

	case mav.CmdMissionStart:
		// Ground stations send this when auto mode is entered.
		s.ctrl.SetMode(vehicle.ModeAuto, vehicle.ReasonGCSCommand)
		result = mav.ResultAccepted

	case mav.CmdPreflightCalibration:
		result = s.common.HandleCommand(ch, pkt, cmd)
		if result == mav.ResultAccepted && cmd.Param3 == 1 {
			// Zero the altitude difference on the next baro update.
			s.state.Nav.NeedAltitudeCalibration = true
		}

	default:
		result = s.common.HandleCommand(ch, pkt, cmd)
	}

	ch.Send(mav.CommandAck{Command: cmd.Command, Result: result})
}

// handleCommandInt routes an int-form command.
func (s *Server) handleCommandInt(ch *Channel, pkt mav.Packet, cmd mav.CommandInt) {
	var result mav.Result

	switch cmd.Command {
	case mav.CmdComponentArmDisarm:
		result = s.handleArmDisarm(cmd.Param1)
	default:
		result = s.common.HandleCommand(ch, pkt, mav.CommandLong{
			TargetSystem:    cmd.TargetSystem,
			TargetComponent: cmd.TargetComponent,
			Command:         cmd.Command,
			Param1:          cmd.Param1,
			Param2:          cmd.Param2,
			Param3:          cmd.Param3,
			Param4:          cmd.Param4,
		})
	}

	ch.Send(mav.CommandAck{Command: cmd.Command, Result: result})
}

// handleArmDisarm interprets param1: 1.0 arms, 0.0 disarms, anything else
// is unsupported.
func (s *Server) handleArmDisarm(param1 float32) mav.Result {
	switch param1 {
	case 1:
		if s.ctrl.ArmServos() {
			return mav.ResultAccepted
		}
		return mav.ResultFailed
	case 0:
		if s.ctrl.DisarmServos() {
			return mav.ResultAccepted
		}
		return mav.ResultFailed
	}
	return mav.ResultUnsupported
}
