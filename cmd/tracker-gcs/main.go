package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"tracker-gcs/internal/config"
	"tracker-gcs/internal/gcs"
	"tracker-gcs/internal/link"
	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/safetysw"
	"tracker-gcs/internal/vehicle"
	"tracker-gcs/internal/wire"
)

// inboundPacket pairs a decoded packet with the channel it arrived on.
// Reader goroutines only decode; all handling happens on the run loop, so
// per-channel arrival order is preserved and state has a single writer.
type inboundPacket struct {
	ch  *gcs.Channel
	pkt mav.Packet
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./dev.yaml", "Path to YAML config")
	flag.Parse()

	log := logrus.New()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("bad log level %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var sw safetysw.Switch = safetysw.None{}
	if cfg.Safety.Enable {
		sw, err = safetysw.Open(cfg.Safety.GPIOPin)
		if err != nil {
			log.Fatalf("safety switch init failed: %v", err)
		}
	}
	defer sw.Close()

	state := vehicle.NewState(time.Now())
	state.Stationary = cfg.GCS.Stationary
	tracker := vehicle.NewTracker(state, log)

	altSource := gcs.AltSourceBaro
	if cfg.GCS.AltSource == "gps" {
		altSource = gcs.AltSourceGPS
	}

	server := gcs.NewServer(gcs.Params{
		SysIDThis:   cfg.GCS.SysIDThis,
		SysIDMyGCS:  cfg.GCS.SysIDMyGCS,
		SysIDTarget: cfg.GCS.SysIDTarget,
		PIDMask:     cfg.GCS.PIDMask,
		AltSource:   altSource,
	}, cfg.Streams.Resolved(), state, tracker, &gcs.DefaultCommonHandler{Log: log}, log)
	server.AnnounceParams()

	var transports []link.Transport
	if cfg.Links.UDPDest != "" {
		udp, err := link.NewUDP(cfg.Links.UDPDest)
		if err != nil {
			log.Fatalf("udp link init failed: %v", err)
		}
		transports = append(transports, udp)
	}
	if cfg.Links.UDPListen != "" {
		udp, err := link.ListenUDP(cfg.Links.UDPListen)
		if err != nil {
			log.Fatalf("udp listen init failed: %v", err)
		}
		transports = append(transports, udp)
	}
	if cfg.Links.SerialPort != "" {
		ser, err := link.NewSerial(cfg.Links.SerialPort, cfg.Links.SerialBaud)
		if err != nil {
			log.Fatalf("serial link init failed: %v", err)
		}
		transports = append(transports, ser)
	}

	inbound := make(chan inboundPacket, 64)
	for _, tr := range transports {
		tr := tr
		defer tr.Close()

		ch := gcs.NewChannel(tr, wire.Encode, cfg.Links.BudgetBytes, cfg.GCS.SysIDThis, log)
		server.AddChannel(ch)
		log.WithField("chan", tr.Name()).Info("link up")

		go readLink(ctx, log, tr, ch, inbound)
	}

	log.Info("tracker-gcs starting")

	// Startup complete: leave the initialising mode.
	tracker.SetMode(vehicle.ModeManual, vehicle.ReasonStartup)

	// One execution context processes inbound packets and drives the
	// stream scheduler; handlers run to completion.
	streamTick := time.NewTicker(20 * time.Millisecond)
	defer streamTick.Stop()
	heartbeatTick := time.NewTicker(1 * time.Second)
	defer heartbeatTick.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("tracker-gcs stopping")
			return
		case in := <-inbound:
			server.HandlePacket(in.ch, in.pkt)
		case now := <-streamTick.C:
			server.TickStreams(now)
		case <-heartbeatTick.C:
			state.Safety = sw.State()
			server.SendHeartbeat()
		}
	}
}

// readLink decodes packets off one transport and feeds the run loop.
func readLink(ctx context.Context, log *logrus.Logger, tr link.Transport, ch *gcs.Channel, inbound chan<- inboundPacket) {
	dec := wire.NewDecoder(tr)
	for {
		pkt, err := dec.Decode()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}
			log.WithError(err).WithField("chan", tr.Name()).Debug("decode failed")
			continue
		}
		select {
		case inbound <- inboundPacket{ch: ch, pkt: pkt}:
		case <-ctx.Done():
			return
		}
	}
}
