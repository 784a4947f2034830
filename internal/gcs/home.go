package gcs

import (
	"math"

	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
)

const earthRadiusM = 6378100.0

// handleMissionWritePartialList starts the home-waypoint exchange: a
// partial list beginning at index 0 means the ground station wants to push
// a new home, so ask for that item.
func (s *Server) handleMissionWritePartialList(ch *Channel, pkt mav.Packet, m mav.MissionWritePartialList) {
	if m.StartIndex != 0 {
		return
	}
	ch.waypointReceiving = true
	ch.Send(mav.MissionRequest{
		TargetSystem:    pkt.SysID,
		TargetComponent: pkt.CompID,
		Seq:             0,
		MissionType:     mav.MissionTypeMission,
	})
}

// handleMissionItem converts and applies an uploaded waypoint. Exactly one
// mission-ack goes back to the sender whatever the outcome.
func (s *Server) handleMissionItem(ch *Channel, pkt mav.Packet, item mav.MissionItem) {
	result := s.processMissionItem(ch, item)
	ch.Send(mav.MissionAck{
		TargetSystem:    pkt.SysID,
		TargetComponent: pkt.CompID,
		Result:          result,
		MissionType:     mav.MissionTypeMission,
	})
}

func (s *Server) processMissionItem(ch *Channel, item mav.MissionItem) mav.MissionResult {
	loc, result := s.locationFromItem(item)
	if result != mav.MissionAccepted {
		return result
	}

	// An item outside an announced upload window is an error.
	if !ch.waypointReceiving {
		return mav.MissionError
	}

	// Only the home waypoint (index 0) is stored. Other indices are
	// acknowledged but dropped: the tracker keeps no mission.
	if item.Seq == 0 {
		if !s.ctrl.SetHome(loc) {
			return mav.MissionError
		}
		s.statusTextAll(mav.SeverityInfo, "New HOME received")
		ch.waypointReceiving = false
	}
	return mav.MissionAccepted
}

// locationFromItem converts the item's position out of its declared frame.
// X is east/longitude-axis, Y is north/latitude-axis, Z altitude meters.
func (s *Server) locationFromItem(item mav.MissionItem) (vehicle.Location, mav.MissionResult) {
	switch item.Frame {
	case mav.FrameGlobal, mav.FrameMission:
		return vehicle.Location{
			LatE7: degE7(item.Y),
			LngE7: degE7(item.X),
			AltCm: altCm(item.Z),
			Frame: vehicle.AltFrameAbsolute,
		}, mav.MissionAccepted

	case mav.FrameGlobalRelativeAlt:
		return vehicle.Location{
			LatE7: degE7(item.Y),
			LngE7: degE7(item.X),
			AltCm: altCm(item.Z),
			Frame: vehicle.AltFrameAboveHome,
		}, mav.MissionAccepted

	case mav.FrameLocalNED:
		home := s.state.Home
		return vehicle.Location{
			LatE7: home.LatE7 + latOffsetE7(item.Y, home.LatE7),
			LngE7: home.LngE7 + lngOffsetE7(item.X),
			AltCm: altCm(-item.Z),
			Frame: vehicle.AltFrameAboveHome,
		}, mav.MissionAccepted

	case mav.FrameLocalENU:
		home := s.state.Home
		return vehicle.Location{
			LatE7: home.LatE7 + latOffsetE7(item.Y, home.LatE7),
			LngE7: home.LngE7 + lngOffsetE7(item.X),
			AltCm: altCm(item.Z),
			Frame: vehicle.AltFrameAboveHome,
		}, mav.MissionAccepted
	}

	return vehicle.Location{}, mav.MissionUnsupportedFrame
}

func degE7(deg float64) int32 {
	return int32(math.Round(deg * 1e7))
}

func altCm(meters float64) int32 {
	return int32(math.Round(meters * 100))
}

// latOffsetE7 converts a north offset in meters to 1e7 degrees using the
// local-tangent-plane approximation around the home latitude.
func latOffsetE7(northM float64, homeLatE7 int32) int32 {
	homeLatRad := float64(homeLatE7) / 1e7 * math.Pi / 180
	deg := northM / (earthRadiusM * math.Cos(homeLatRad)) * 180 / math.Pi
	return int32(math.Round(deg * 1e7))
}

// lngOffsetE7 converts an east offset in meters to 1e7 degrees.
func lngOffsetE7(eastM float64) int32 {
	deg := eastM / earthRadiusM * 180 / math.Pi
	return int32(math.Round(deg * 1e7))
}

// statusTextAll sends an operator notice on every channel.
func (s *Server) statusTextAll(sev mav.Severity, text string) {
	for _, ch := range s.channels {
		ch.Send(mav.StatusText{Severity: sev, Text: text})
	}
}
