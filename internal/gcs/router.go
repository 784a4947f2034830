package gcs

import (
	"tracker-gcs/internal/mav"
)

// HandlePacket dispatches one decoded inbound packet. Each message goes to
// at most one domain handler; everything else falls through to the common
// handler.
func (s *Server) HandlePacket(ch *Channel, pkt mav.Packet) {
	// Sender filter: once a target sysid is set, other vehicles only reach
	// the common handler. Heartbeats are still examined so lock-on can
	// happen before the filter has a sysid to match.
	if s.p.SysIDTarget != 0 && pkt.SysID != s.p.SysIDTarget {
		if hb, ok := pkt.Msg.(mav.Heartbeat); ok {
			s.checkTarget(pkt, hb)
		}
		s.common.HandleMessage(ch, pkt)
		return
	}

	switch m := pkt.Msg.(type) {
	case mav.Heartbeat:
		s.checkTarget(pkt, m)
		s.common.HandleMessage(ch, pkt)
	case mav.GlobalPositionInt:
		s.ctrl.UpdateTargetPosition(m)
	case mav.ScaledPressure:
		s.ctrl.UpdateTargetPressure(m)
	case mav.SetAttitudeTarget:
		s.handleSetAttitudeTarget(m)
	case mav.MissionWritePartialList:
		s.handleMissionWritePartialList(ch, pkt, m)
	case mav.MissionItem:
		s.handleMissionItem(ch, pkt, m)
	case mav.ManualControl:
		s.ctrl.HandleManualControl(m)
	case mav.CommandLong:
		s.handleCommandLong(ch, pkt, m)
	case mav.CommandInt:
		s.handleCommandInt(ch, pkt, m)
	default:
		s.common.HandleMessage(ch, pkt)
	}
}
