package wire

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker-gcs/internal/mav"
)

func TestEncodeDecodeLine(t *testing.T) {
	in := mav.Packet{SysID: 7, CompID: 1, Msg: mav.Heartbeat{
		Type:         mav.TypeAntennaTracker,
		Autopilot:    3,
		BaseMode:     0x51,
		CustomMode:   4,
		SystemStatus: mav.StatusActive,
	}}

	line, err := Encode(in)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), line[len(line)-1])

	out, err := DecodeLine(line[:len(line)-1])
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncode_NilMessage(t *testing.T) {
	_, err := Encode(mav.Packet{})
	assert.Error(t, err)
}

func TestDecodeLine_PreservesMissionItemPrecision(t *testing.T) {
	in := mav.Packet{SysID: 255, CompID: 190, Msg: mav.MissionItem{
		Seq:   0,
		Frame: mav.FrameGlobal,
		X:     -122.4194,
		Y:     37.7749,
		Z:     30.0,
	}}

	line, err := Encode(in)
	require.NoError(t, err)
	out, err := DecodeLine(line)
	require.NoError(t, err)

	item := out.Msg.(mav.MissionItem)
	assert.Equal(t, -122.4194, item.X)
	assert.Equal(t, 37.7749, item.Y)
}

func TestDecodeLine_UnknownKind(t *testing.T) {
	_, err := DecodeLine([]byte(`{"k":9999,"sys":1,"comp":1,"p":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown message kind")
}

func TestDecodeLine_BadJSON(t *testing.T) {
	_, err := DecodeLine([]byte(`{"k":0,"sys":`))
	assert.Error(t, err)
}

func TestDecoder_StreamSkipsBlankLines(t *testing.T) {
	hb, err := Encode(mav.Packet{SysID: 2, Msg: mav.Heartbeat{Type: mav.TypeGCS}})
	require.NoError(t, err)
	att, err := Encode(mav.Packet{SysID: 2, Msg: mav.Attitude{Yaw: 1.5}})
	require.NoError(t, err)

	stream := string(hb) + "\n" + string(att)
	d := NewDecoder(strings.NewReader(stream))

	first, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, mav.KindHeartbeat, first.Msg.MsgKind())

	second, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, mav.KindAttitude, second.Msg.MsgKind())

	_, err = d.Decode()
	assert.Equal(t, io.EOF, err)
}

func TestDecoder_ErrorLeavesStreamUsable(t *testing.T) {
	hb, err := Encode(mav.Packet{SysID: 2, Msg: mav.Heartbeat{}})
	require.NoError(t, err)

	stream := "not json\n" + string(hb)
	d := NewDecoder(strings.NewReader(stream))

	_, err = d.Decode()
	require.Error(t, err)

	pkt, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, mav.KindHeartbeat, pkt.Msg.MsgKind())
}
