package gcs

import (
	"time"

	"tracker-gcs/internal/mav"
)

// Category indexes the stream-rate table. Declaration order is importance
// order: when a channel congests, later categories are the first to lose
// their slot in the cycle.
type Category int

const (
	CategoryRawSensors Category = iota
	CategoryExtendedStatus
	CategoryPosition
	CategoryRawController
	CategoryRCChannels
	CategoryExtra1
	CategoryExtra2
	CategoryExtra3
	CategoryParams

	numCategories
)

var categoryNames = [numCategories]string{
	"raw_sensors",
	"ext_status",
	"position",
	"raw_ctrl",
	"rc_channels",
	"extra1",
	"extra2",
	"extra3",
	"params",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// streamTable maps each category to the message kinds it emits, in emission
// order. The table is fixed; only rates are configurable.
var streamTable = [numCategories][]mav.Kind{
	CategoryRawSensors:     {mav.KindRawIMU, mav.KindScaledPressure},
	CategoryExtendedStatus: {mav.KindSysStatus, mav.KindNavControllerOutput},
	CategoryPosition:       {mav.KindGlobalPositionInt},
	CategoryRawController:  {mav.KindServoOutputRaw},
	CategoryRCChannels:     {mav.KindRCChannels},
	CategoryExtra1:         {mav.KindAttitude, mav.KindPIDTuning},
	CategoryExtra2:         {},
	CategoryExtra3:         {mav.KindAHRS, mav.KindSystemTime},
	CategoryParams:         {mav.KindParamValue},
}

// TickStreams walks the category table for every channel and emits due
// categories, honoring per-channel back-pressure. Call it from the single
// run loop.
func (s *Server) TickStreams(now time.Time) {
	for _, ch := range s.channels {
		s.tickChannel(ch, now)
	}
}

func (s *Server) tickChannel(ch *Channel, now time.Time) {
	ch.resetBudget()
	for cat := Category(0); cat < numCategories; cat++ {
		rate := s.rates[cat]
		if rate <= 0 {
			continue
		}
		period := time.Duration(float64(time.Second) / float64(rate))
		if !ch.lastRun[cat].IsZero() && now.Sub(ch.lastRun[cat]) < period {
			continue
		}
		ch.lastRun[cat] = now
		for _, kind := range streamTable[cat] {
			if !s.sendStreamMessage(ch, kind) {
				// Out of buffer: drop the rest of this category for the
				// cycle and give up on the channel until the next tick.
				return
			}
		}
	}
}

// sendStreamMessage emits one scheduled message kind. Reports false only
// when the channel ran out of outbound space.
func (s *Server) sendStreamMessage(ch *Channel, kind mav.Kind) bool {
	switch kind {
	case mav.KindPIDTuning:
		return s.sendPIDTuning(ch)
	case mav.KindParamValue:
		return s.sendNextParam(ch)
	default:
		msg, ok := s.buildStreamMessage(kind)
		if !ok {
			return true
		}
		return ch.trySend(msg)
	}
}
