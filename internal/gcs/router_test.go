package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker-gcs/internal/mav"
)

func TestRouter_FilterPassesOnlyTargetSender(t *testing.T) {
	rig := newTestRig(t, Params{SysIDTarget: 7})

	// Matching sender reaches the domain handler.
	rig.srv.HandlePacket(rig.ch, mav.Packet{SysID: 7, Msg: mav.GlobalPositionInt{Lat: 1}})
	require.Len(t, rig.ctrl.positions, 1)

	// Mismatched sender only reaches the common handler.
	rig.srv.HandlePacket(rig.ch, mav.Packet{SysID: 8, Msg: mav.GlobalPositionInt{Lat: 2}})
	assert.Len(t, rig.ctrl.positions, 1)
	assert.Len(t, rig.com.messages, 1)
}

func TestRouter_FilteredHeartbeatStillExamined(t *testing.T) {
	rig := newTestRig(t, Params{SysIDTarget: 7})

	// A heartbeat from another sysid still reaches the acquirer, which
	// locks without overwriting the configured target id.
	rig.srv.HandlePacket(rig.ch, heartbeatFrom(9, mav.TypeQuadrotor))

	assert.True(t, rig.srv.TargetLocked())
	assert.Equal(t, uint8(7), rig.srv.TargetSysID())
	// And it still falls through to the common handler.
	assert.Len(t, rig.com.messages, 1)
}

func TestRouter_UnknownKindGoesToCommonHandler(t *testing.T) {
	rig := newTestRig(t, Params{})

	rig.srv.HandlePacket(rig.ch, mav.Packet{SysID: 3, Msg: mav.SystemTime{}})

	require.Len(t, rig.com.messages, 1)
	assert.Equal(t, mav.KindSystemTime, rig.com.messages[0].Msg.MsgKind())
}

func TestRouter_HeartbeatAlsoReachesCommonHandler(t *testing.T) {
	rig := newTestRig(t, Params{})

	rig.srv.HandlePacket(rig.ch, heartbeatFrom(7, mav.TypeQuadrotor))

	require.Len(t, rig.com.messages, 1)
	assert.Equal(t, mav.KindHeartbeat, rig.com.messages[0].Msg.MsgKind())
}

func TestRouter_ScaledPressureUpdatesTarget(t *testing.T) {
	rig := newTestRig(t, Params{})

	rig.srv.HandlePacket(rig.ch, mav.Packet{SysID: 7, Msg: mav.ScaledPressure{PressAbs: 1013.2}})

	require.Len(t, rig.ctrl.pressures, 1)
	assert.InDelta(t, 1013.2, float64(rig.ctrl.pressures[0].PressAbs), 0.001)
}

func TestRouter_ManualControlForwarded(t *testing.T) {
	rig := newTestRig(t, Params{})

	rig.srv.HandlePacket(rig.ch, mav.Packet{SysID: 255, Msg: mav.ManualControl{X: 100, Y: -100}})

	require.Len(t, rig.ctrl.manual, 1)
	assert.Equal(t, int16(100), rig.ctrl.manual[0].X)
}
