package gcs

import (
	"time"

	"github.com/sirupsen/logrus"

	"tracker-gcs/internal/link"
	"tracker-gcs/internal/mav"
)

// EncodeFunc renders a packet for the wire. The binary codec is an external
// collaborator; the daemon injects whichever implementation the link speaks.
type EncodeFunc func(mav.Packet) ([]byte, error)

// Channel is one ground-link connection as the protocol core sees it:
// a transport plus the per-channel protocol flags and stream cursors.
type Channel struct {
	tr     link.Transport
	encode EncodeFunc
	log    *logrus.Entry

	sysID  uint8
	compID uint8

	// Outbound byte budget for the current scheduler tick. Replenished by
	// the scheduler; scheduled telemetry that does not fit is dropped for
	// the cycle.
	budgetMax int
	budget    int

	// waypointReceiving is true between a partial-list announcement for
	// index 0 and the arrival of the home mission item.
	waypointReceiving bool

	lastRun [numCategories]time.Time
}

// The tracker's own component id on the link.
const compIDAutopilot = 1

func NewChannel(tr link.Transport, enc EncodeFunc, budgetBytes int, sysID uint8, log *logrus.Logger) *Channel {
	return &Channel{
		tr:        tr,
		encode:    enc,
		log:       log.WithField("chan", tr.Name()),
		sysID:     sysID,
		compID:    compIDAutopilot,
		budgetMax: budgetBytes,
		budget:    budgetBytes,
	}
}

func (c *Channel) Name() string { return c.tr.Name() }

// Send writes a message immediately, outside the stream budget. Protocol
// replies (acks, mission requests) and the heartbeat use this path;
// delivery is fire-and-forget.
func (c *Channel) Send(msg mav.Message) {
	b, err := c.encode(mav.Packet{SysID: c.sysID, CompID: c.compID, Msg: msg})
	if err != nil {
		c.log.WithError(err).WithField("kind", msg.MsgKind()).Warn("encode failed")
		return
	}
	if _, err := c.tr.Write(b); err != nil {
		c.log.WithError(err).WithField("kind", msg.MsgKind()).Debug("send failed")
	}
}

// trySend writes a scheduled message if it fits the remaining budget.
// Reports false when the channel is out of space for this cycle.
func (c *Channel) trySend(msg mav.Message) bool {
	b, err := c.encode(mav.Packet{SysID: c.sysID, CompID: c.compID, Msg: msg})
	if err != nil {
		c.log.WithError(err).WithField("kind", msg.MsgKind()).Warn("encode failed")
		return true // not a space problem; keep the category going
	}
	if len(b) > c.budget {
		return false
	}
	if _, err := c.tr.Write(b); err != nil {
		c.log.WithError(err).WithField("kind", msg.MsgKind()).Debug("send failed")
	}
	c.budget -= len(b)
	return true
}

// resetBudget replenishes the outbound budget at the start of a tick.
func (c *Channel) resetBudget() {
	c.budget = c.budgetMax
}
