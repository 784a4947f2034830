// target-sim feeds the tracker daemon a simulated vehicle over UDP:
// heartbeats, positions and barometric pressure along a deterministic
// flight path, or along a scripted one.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"tracker-gcs/internal/link"
	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/sim"
	"tracker-gcs/internal/wire"
)

func main() {
	var (
		dest       string
		scriptPath string
		sysID      int
		lat, lon   float64
		altM       float64
		radiusM    float64
	)
	flag.StringVar(&dest, "dest", "127.0.0.1:14550", "Tracker UDP endpoint")
	flag.StringVar(&scriptPath, "script", "", "Optional YAML flight script (overrides the built-in path)")
	flag.IntVar(&sysID, "sysid", 17, "Simulated vehicle system id")
	flag.Float64Var(&lat, "lat", 37.7749, "Path center latitude")
	flag.Float64Var(&lon, "lon", -122.4194, "Path center longitude")
	flag.Float64Var(&altM, "alt", 1000, "Base altitude in meters")
	flag.Float64Var(&radiusM, "radius", 500, "Path radius in meters")
	flag.Parse()

	log := logrus.New()

	var scripted *sim.ScriptedFlight
	if scriptPath != "" {
		var err error
		scripted, err = sim.LoadScript(scriptPath)
		if err != nil {
			log.Fatalf("script load failed: %v", err)
		}
		if scripted.SysID() != 0 {
			sysID = int(scripted.SysID())
		}
	}

	flight := sim.FlightSim{
		CenterLatDeg: lat,
		CenterLonDeg: lon,
		AltM:         altM,
		RadiusM:      radiusM,
		Period:       120 * time.Second,
		SysID:        uint8(sysID),
	}

	udp, err := link.NewUDP(dest)
	if err != nil {
		log.Fatalf("udp init failed: %v", err)
	}
	defer udp.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.WithFields(logrus.Fields{"dest": dest, "sysid": sysID}).Info("target-sim starting")

	send := func(pkt mav.Packet) {
		b, err := wire.Encode(pkt)
		if err != nil {
			log.WithError(err).Warn("encode failed")
			return
		}
		if _, err := udp.Write(b); err != nil {
			log.WithError(err).Debug("send failed")
		}
	}

	boot := time.Now()
	heartbeatTick := time.NewTicker(1 * time.Second)
	defer heartbeatTick.Stop()
	positionTick := time.NewTicker(500 * time.Millisecond)
	defer positionTick.Stop()
	pressureTick := time.NewTicker(1 * time.Second)
	defer pressureTick.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("target-sim stopping")
			return
		case <-heartbeatTick.C:
			send(flight.Heartbeat())
		case now := <-positionTick.C:
			send(positionPacket(flight, scripted, now, boot))
		case now := <-pressureTick.C:
			send(flight.Pressure(now, boot))
		}
	}
}

// positionPacket samples the scripted path when one is loaded, the
// built-in figure-eight otherwise.
func positionPacket(flight sim.FlightSim, scripted *sim.ScriptedFlight, now, boot time.Time) mav.Packet {
	if scripted == nil {
		return flight.GlobalPosition(now, boot)
	}
	kf := scripted.At(now.Sub(boot), true)
	return mav.Packet{SysID: flight.SysID, CompID: 1, Msg: mav.GlobalPositionInt{
		TimeBootMs:  uint32(now.Sub(boot).Milliseconds()),
		Lat:         int32(kf.LatDeg * 1e7),
		Lon:         int32(kf.LonDeg * 1e7),
		Alt:         int32(kf.AltM * 1000),
		RelativeAlt: int32(kf.AltM * 1000),
	}}
}
