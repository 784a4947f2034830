package gcs

import (
	"github.com/sirupsen/logrus"

	"tracker-gcs/internal/mav"
)

// checkTarget locks the tracker onto the first heartbeat from a vehicle
// worth tracking and asks it for position and air-pressure streams.
// Once locked, further heartbeats are a no-op until an external reset.
func (s *Server) checkTarget(pkt mav.Packet, hb mav.Heartbeat) {
	if s.targetLocked {
		return
	}

	// Never lock onto another tracker, a ground station, a companion
	// computer or a gimbal.
	switch hb.Type {
	case mav.TypeAntennaTracker, mav.TypeGCS, mav.TypeOnboardController, mav.TypeGimbal:
		return
	}

	if s.p.SysIDTarget == 0 {
		s.p.SysIDTarget = pkt.SysID
	}

	// Ask the vehicle for its position and pressure streams on every
	// channel. Fire-and-forget: an undelivered request is not retried, so
	// the vehicle's stream rate is not guaranteed.
	for _, ch := range s.channels {
		ch.Send(mav.RequestDataStream{
			TargetSystem:    pkt.SysID,
			TargetComponent: pkt.CompID,
			ReqStreamID:     mav.StreamPosition,
			ReqMessageRate:  1,
			StartStop:       1,
		})
		ch.Send(mav.RequestDataStream{
			TargetSystem:    pkt.SysID,
			TargetComponent: pkt.CompID,
			ReqStreamID:     mav.StreamRawSensors,
			ReqMessageRate:  1,
			StartStop:       1,
		})
	}

	s.targetLocked = true
	s.log.WithFields(logrus.Fields{"sysid": s.p.SysIDTarget, "type": hb.Type}).Info("target locked")
}
