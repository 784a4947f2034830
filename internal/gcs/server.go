// Package gcs is the ground-control protocol core for the antenna tracker:
// it routes inbound telemetry-link messages, locks onto the tracked
// vehicle, negotiates home-waypoint updates, validates guided pointing
// commands, and schedules rate-limited outbound telemetry per channel.
//
// Everything here runs on a single goroutine (the daemon's run loop);
// handlers run to completion and the state they touch has exactly one
// writer.
package gcs

import (
	"time"

	"github.com/sirupsen/logrus"

	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
)

// AltSource selects which altitude-difference estimate feeds the
// nav-controller-output report.
type AltSource int

const (
	AltSourceBaro AltSource = iota
	AltSourceGPS
)

// Params is the configuration surface of the core.
type Params struct {
	// SysIDThis is the tracker's own system id.
	SysIDThis uint8
	// SysIDMyGCS is the ground station's system id.
	SysIDMyGCS uint8
	// SysIDTarget filters inbound traffic; 0 accepts all senders. Target
	// lock-on fills it in when it starts at 0.
	SysIDTarget uint8
	// PIDMask gates pid-tuning telemetry: bit0 pitch, bit1 yaw.
	PIDMask uint8
	// AltSource picks baro vs. positioning-system altitude difference.
	AltSource AltSource
}

// CommonHandler is the external fallback for message kinds and commands
// this core does not own.
type CommonHandler interface {
	// HandleMessage receives every packet the core does not consume.
	HandleMessage(ch *Channel, pkt mav.Packet)
	// HandleCommand handles delegated commands and returns the result to
	// acknowledge with.
	HandleCommand(ch *Channel, pkt mav.Packet, cmd mav.CommandLong) mav.Result
}

// Server is the protocol core's context object: parameters, vehicle state,
// channels and the target lock, threaded explicitly through every handler.
type Server struct {
	p     Params
	rates [numCategories]int

	state *vehicle.State
	ctrl  vehicle.Controller

	channels []*Channel
	common   CommonHandler

	// Target lock. Once locked the stored sysid never changes without an
	// external reset.
	targetLocked bool

	paramQueue []mav.ParamValue

	log *logrus.Logger
	now func() time.Time
}

func NewServer(p Params, rates [numCategories]int, st *vehicle.State, ctrl vehicle.Controller, common CommonHandler, log *logrus.Logger) *Server {
	s := &Server{
		p:      p,
		state:  st,
		ctrl:   ctrl,
		common: common,
		log:    log,
		now:    time.Now,
	}
	copy(s.rates[:], rates[:])
	return s
}

// AddChannel registers a ground-link connection.
func (s *Server) AddChannel(ch *Channel) {
	s.channels = append(s.channels, ch)
}

// Rates reports the per-category stream rates (Hz).
func (s *Server) Rates() [numCategories]int { return s.rates }

// SetRate adjusts one category's rate at runtime. Out-of-range values are
// clamped to [0, 50].
func (s *Server) SetRate(cat Category, hz int) {
	if cat < 0 || cat >= numCategories {
		return
	}
	if hz < 0 {
		hz = 0
	}
	if hz > 50 {
		hz = 50
	}
	s.rates[cat] = hz
}

// TargetSysID reports the tracked vehicle's system id (0 = unset).
func (s *Server) TargetSysID() uint8 { return s.p.SysIDTarget }

// TargetLocked reports whether lock-on has happened.
func (s *Server) TargetLocked() bool { return s.targetLocked }

// ResetTargetLock clears the lock so the next eligible heartbeat acquires a
// new target. Only an explicit operator action calls this.
func (s *Server) ResetTargetLock() {
	s.targetLocked = false
	s.p.SysIDTarget = 0
}

// AnnounceParams queues the parameter table for the params stream to
// drain, one value per due cycle.
func (s *Server) AnnounceParams() {
	named := []struct {
		id string
		v  float32
	}{
		{"SR_RAW_SENS", float32(s.rates[CategoryRawSensors])},
		{"SR_EXT_STAT", float32(s.rates[CategoryExtendedStatus])},
		{"SR_POSITION", float32(s.rates[CategoryPosition])},
		{"SR_RAW_CTRL", float32(s.rates[CategoryRawController])},
		{"SR_RC_CHAN", float32(s.rates[CategoryRCChannels])},
		{"SR_EXTRA1", float32(s.rates[CategoryExtra1])},
		{"SR_EXTRA2", float32(s.rates[CategoryExtra2])},
		{"SR_EXTRA3", float32(s.rates[CategoryExtra3])},
		{"SR_PARAMS", float32(s.rates[CategoryParams])},
		{"SYSID_TARGET", float32(s.p.SysIDTarget)},
		{"SYSID_MYGCS", float32(s.p.SysIDMyGCS)},
		{"GCS_PID_MASK", float32(s.p.PIDMask)},
		{"ALT_SOURCE", float32(s.p.AltSource)},
	}
	count := uint16(len(named))
	s.paramQueue = s.paramQueue[:0]
	for i, e := range named {
		s.paramQueue = append(s.paramQueue, mav.ParamValue{
			ParamID:    e.id,
			ParamValue: e.v,
			ParamCount: count,
			ParamIndex: uint16(i),
		})
	}
}

// sendNextParam drains one queued param value when the params category is
// due. Reports false only on buffer exhaustion.
func (s *Server) sendNextParam(ch *Channel) bool {
	if len(s.paramQueue) == 0 {
		return true
	}
	if !ch.trySend(s.paramQueue[0]) {
		return false
	}
	s.paramQueue = s.paramQueue[1:]
	return true
}

// DefaultCommonHandler is the in-repo stand-in for the surrounding GCS
// library: it logs what it drops and answers the baro preflight
// calibration so the recalibration path is reachable end to end.
type DefaultCommonHandler struct {
	Log *logrus.Logger
}

func (h *DefaultCommonHandler) HandleMessage(ch *Channel, pkt mav.Packet) {
	if h.Log == nil {
		return
	}
	h.Log.WithFields(logrus.Fields{
		"chan": ch.Name(),
		"kind": uint32(pkt.Msg.MsgKind()),
		"sys":  pkt.SysID,
	}).Debug("unhandled message")
}

func (h *DefaultCommonHandler) HandleCommand(ch *Channel, pkt mav.Packet, cmd mav.CommandLong) mav.Result {
	if cmd.Command == mav.CmdPreflightCalibration && cmd.Param3 == 1 {
		return mav.ResultAccepted
	}
	return mav.ResultUnsupported
}
