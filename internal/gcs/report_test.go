package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
)

func TestNavControllerOutput_DistanceSaturates(t *testing.T) {
	cases := []struct {
		name string
		dist float32
		want uint16
	}{
		{"nominal", 1234.0, 1234},
		{"saturates_high", 1e6, 65535},
		{"clamped_low", -5.0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rig := newTestRig(t, Params{})
			rig.st.Nav.DistanceM = tc.dist

			out := rig.srv.buildNavControllerOutput()
			assert.Equal(t, tc.want, out.WpDist)
		})
	}
}

func TestNavControllerOutput_AltSourceSelection(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source AltSource
		want   float32
	}{
		{"baro", AltSourceBaro, 12.5},
		{"gps", AltSourceGPS, -3.25},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rig := newTestRig(t, Params{AltSource: tc.source})
			rig.st.Nav.AltDifferenceBaroM = 12.5
			rig.st.Nav.AltDifferenceGPSM = -3.25

			out := rig.srv.buildNavControllerOutput()
			assert.InDelta(t, tc.want, out.AltError, 1e-6)
		})
	}
}

func TestGlobalPositionInt_StationarySynthesized(t *testing.T) {
	rig := newTestRig(t, Params{})
	rig.st.Stationary = true
	rig.st.CurrentLoc = vehicle.Location{LatE7: 377749000, LngE7: -1224194000, AltCm: 3000}
	rig.st.Att.YawSensorCd = 9000

	gpi := rig.srv.buildGlobalPositionInt(1000)

	assert.Equal(t, int32(377749000), gpi.Lat)
	assert.Equal(t, int32(-1224194000), gpi.Lon)
	assert.Equal(t, int32(30000), gpi.Alt) // cm to mm
	assert.Equal(t, uint16(9000), gpi.Hdg)
	// Velocity stays zero for a fixed installation.
	assert.Zero(t, gpi.Vx)
	assert.Zero(t, gpi.Vy)
	assert.Zero(t, gpi.Vz)
	assert.Zero(t, gpi.RelativeAlt)
}

func TestGlobalPositionInt_MovingReportsRelativeAlt(t *testing.T) {
	rig := newTestRig(t, Params{})
	rig.st.Stationary = false
	rig.st.CurrentLoc = vehicle.Location{AltCm: 5000}
	rig.st.Home = vehicle.Location{AltCm: 2000}

	gpi := rig.srv.buildGlobalPositionInt(1000)

	assert.Equal(t, int32(30000), gpi.RelativeAlt) // (5000-2000) cm in mm
}

func TestBuildStreamMessage_TimestampsFromBoot(t *testing.T) {
	rig := newTestRig(t, Params{})

	msg, ok := rig.srv.buildStreamMessage(mav.KindScaledPressure)
	require.True(t, ok)

	// Rig clock is 1000 s past boot.
	assert.Equal(t, uint32(1_000_000), msg.(mav.ScaledPressure).TimeBootMs)
}

func TestBuildStreamMessage_UnknownKindSkipped(t *testing.T) {
	rig := newTestRig(t, Params{})

	_, ok := rig.srv.buildStreamMessage(mav.KindStatusText)
	assert.False(t, ok)
}
