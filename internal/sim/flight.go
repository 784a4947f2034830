// Package sim generates a deterministic simulated tracked vehicle for
// development: a flight path plus the telemetry reports a real vehicle
// would emit, so the tracker daemon can be exercised without hardware.
package sim

import (
	"math"
	"time"

	"tracker-gcs/internal/mav"
)

const earthRadiusM = 6378100

// FlightSim flies a deterministic figure-eight around a center point.
type FlightSim struct {
	CenterLatDeg float64
	CenterLonDeg float64
	AltM         float64
	RadiusM      float64
	Period       time.Duration

	// SysID is the simulated vehicle's system id on the link.
	SysID uint8
}

// Position returns the path position at now. The path is a Lissajous
// figure-eight: the north-south component stays within half the radius so
// the whole track fits the configured bounds.
func (s FlightSim) Position(now time.Time) (latDeg, lonDeg float64) {
	period := s.Period
	if period <= 0 {
		period = 120 * time.Second
	}
	radiusM := s.RadiusM
	if radiusM <= 0 {
		radiusM = 500
	}

	radiusDeg := radiusM / earthRadiusM * 180 / math.Pi

	phase := float64(now.UnixNano()%period.Nanoseconds()) / float64(period.Nanoseconds())
	w := 2 * math.Pi * phase
	x := math.Cos(w)
	y := 0.5 * math.Sin(2*w)

	latDeg = s.CenterLatDeg + radiusDeg*y
	lonDeg = s.CenterLonDeg + (radiusDeg*x)/math.Cos(s.CenterLatDeg*math.Pi/180)
	return latDeg, lonDeg
}

// Altitude returns a sinusoidal vertical profile around AltM, decoupled
// from the horizontal period so the track does not repeat in sync.
func (s FlightSim) Altitude(now time.Time) float64 {
	alt := s.AltM
	if alt == 0 {
		alt = 1000
	}
	period := s.Period
	if period <= 0 {
		period = 120 * time.Second
	}
	vp := period / 2
	if vp < 30*time.Second {
		vp = 30 * time.Second
	}
	const ampM = 150

	phase := float64(now.UnixNano()%vp.Nanoseconds()) / float64(vp.Nanoseconds())
	return alt + ampM*math.Sin(2*math.Pi*phase)
}

// Heartbeat is the simulated vehicle's periodic announcement. The type is
// a generic onboard controller so the tracker's acquirer treats it as a
// lockable target.
func (s FlightSim) Heartbeat() mav.Packet {
	return mav.Packet{SysID: s.SysID, CompID: 1, Msg: mav.Heartbeat{
		Type:         mav.TypeOnboardController,
		Autopilot:    3,
		SystemStatus: mav.StatusActive,
	}}
}

// GlobalPosition reports the simulated position at now.
func (s FlightSim) GlobalPosition(now, boot time.Time) mav.Packet {
	lat, lon := s.Position(now)
	alt := s.Altitude(now)
	return mav.Packet{SysID: s.SysID, CompID: 1, Msg: mav.GlobalPositionInt{
		TimeBootMs:  uint32(now.Sub(boot).Milliseconds()),
		Lat:         int32(math.Round(lat * 1e7)),
		Lon:         int32(math.Round(lon * 1e7)),
		Alt:         int32(math.Round(alt * 1000)),
		RelativeAlt: int32(math.Round(alt * 1000)),
	}}
}

// Pressure reports the barometric pressure the vehicle would measure at
// its simulated altitude, per the standard-atmosphere model.
func (s FlightSim) Pressure(now, boot time.Time) mav.Packet {
	alt := s.Altitude(now)
	press := 1013.25 * math.Pow(1-2.25577e-5*alt, 5.25588)
	return mav.Packet{SysID: s.SysID, CompID: 1, Msg: mav.ScaledPressure{
		TimeBootMs:  uint32(now.Sub(boot).Milliseconds()),
		PressAbs:    float32(press),
		Temperature: 1500, // centidegrees C
	}}
}
