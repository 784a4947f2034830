package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
)

// validMask ignores roll rate and throttle, keeps attitude.
const validMask = mav.AttMaskIgnoreBodyRollRate | mav.AttMaskIgnoreThrottle

func attitudeTarget(mask uint8) mav.Packet {
	return mav.Packet{SysID: 255, Msg: mav.SetAttitudeTarget{
		TypeMask:    mask,
		Q:           [4]float32{1, 0, 0, 0},
		BodyYawRate: 0.5,
	}}
}

func TestAttitudeTarget_ForwardedInGuidedMode(t *testing.T) {
	rig := newTestRig(t, Params{})
	rig.st.Mode = vehicle.ModeGuided

	rig.srv.HandlePacket(rig.ch, attitudeTarget(validMask))

	require.Len(t, rig.ctrl.guidedCalls, 1)
	call := rig.ctrl.guidedCalls[0]
	assert.Equal(t, [4]float32{1, 0, 0, 0}, call.q)
	assert.True(t, call.useYawRate)
	assert.InDelta(t, 0.5, float64(call.yawRate), 1e-6)
}

func TestAttitudeTarget_IgnoredOutsideGuidedMode(t *testing.T) {
	for _, mode := range []vehicle.Mode{
		vehicle.ModeManual, vehicle.ModeStop, vehicle.ModeScan,
		vehicle.ModeServoTest, vehicle.ModeAuto, vehicle.ModeInitialising,
	} {
		rig := newTestRig(t, Params{})
		rig.st.Mode = mode

		rig.srv.HandlePacket(rig.ch, attitudeTarget(validMask))

		assert.Empty(t, rig.ctrl.guidedCalls, "mode %v must drop the command", mode)
		// Silent drop: nothing goes out.
		assert.Empty(t, rig.tr.sent(t))
	}
}

func TestAttitudeTarget_NonzeroRollRateRejected(t *testing.T) {
	rig := newTestRig(t, Params{})
	rig.st.Mode = vehicle.ModeGuided

	rig.srv.HandlePacket(rig.ch, mav.Packet{SysID: 255, Msg: mav.SetAttitudeTarget{
		TypeMask:     validMask,
		Q:            [4]float32{1, 0, 0, 0},
		BodyRollRate: 0.01,
	}})

	assert.Empty(t, rig.ctrl.guidedCalls)
	assert.Empty(t, rig.tr.sent(t))
}

func TestAttitudeTarget_MaskValidation(t *testing.T) {
	cases := []struct {
		name string
		mask uint8
		want bool
	}{
		{"valid", validMask, true},
		{"roll_rate_not_ignored", mav.AttMaskIgnoreThrottle, false},
		{"throttle_not_ignored", mav.AttMaskIgnoreBodyRollRate, false},
		{"attitude_ignored", validMask | mav.AttMaskIgnoreAttitude, false},
		{"both_rates_ignored", validMask | mav.AttMaskReserved3 | mav.AttMaskReserved4, false},
		{"one_rate_ignored_ok", validMask | mav.AttMaskReserved3, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rig := newTestRig(t, Params{})
			rig.st.Mode = vehicle.ModeGuided

			rig.srv.HandlePacket(rig.ch, attitudeTarget(tc.mask))

			if tc.want {
				assert.Len(t, rig.ctrl.guidedCalls, 1)
			} else {
				assert.Empty(t, rig.ctrl.guidedCalls)
			}
		})
	}
}

func TestAttitudeTarget_YawRateDerivedFromMask(t *testing.T) {
	rig := newTestRig(t, Params{})
	rig.st.Mode = vehicle.ModeGuided

	rig.srv.HandlePacket(rig.ch, attitudeTarget(validMask|mav.AttMaskIgnoreBodyYawRate))

	require.Len(t, rig.ctrl.guidedCalls, 1)
	assert.False(t, rig.ctrl.guidedCalls[0].useYawRate)
}
