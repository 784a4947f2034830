// Package wire is the development codec for the telemetry link: packets as
// newline-delimited JSON envelopes. Production deployments swap in the real
// binary codec behind the same Encode/Decode surface; everything above the
// link layer is codec-agnostic.
package wire

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"tracker-gcs/internal/mav"
)

type envelope struct {
	Kind    mav.Kind        `json:"k"`
	SysID   uint8           `json:"sys"`
	CompID  uint8           `json:"comp"`
	Payload json.RawMessage `json:"p"`
}

// Encode renders one packet as a single NDJSON line, trailing newline
// included.
func Encode(pkt mav.Packet) ([]byte, error) {
	if pkt.Msg == nil {
		return nil, fmt.Errorf("wire: nil message")
	}
	payload, err := json.Marshal(pkt.Msg)
	if err != nil {
		return nil, fmt.Errorf("wire: marshal payload: %w", err)
	}
	b, err := json.Marshal(envelope{
		Kind:    pkt.Msg.MsgKind(),
		SysID:   pkt.SysID,
		CompID:  pkt.CompID,
		Payload: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("wire: marshal envelope: %w", err)
	}
	return append(b, '\n'), nil
}

// Decoder reads packets line by line from a link.
type Decoder struct {
	sc *bufio.Scanner
}

const maxLineBytes = 64 * 1024

func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	return &Decoder{sc: sc}
}

// Decode returns the next packet. Lines that do not parse or carry an
// unknown kind yield an error; the stream stays usable.
func (d *Decoder) Decode() (mav.Packet, error) {
	for d.sc.Scan() {
		line := d.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		return DecodeLine(line)
	}
	if err := d.sc.Err(); err != nil {
		return mav.Packet{}, err
	}
	return mav.Packet{}, io.EOF
}

// DecodeLine parses a single envelope line.
func DecodeLine(line []byte) (mav.Packet, error) {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return mav.Packet{}, fmt.Errorf("wire: bad envelope: %w", err)
	}
	msg, err := newMessage(env.Kind)
	if err != nil {
		return mav.Packet{}, err
	}
	if err := json.Unmarshal(env.Payload, msg); err != nil {
		return mav.Packet{}, fmt.Errorf("wire: bad payload for kind %d: %w", env.Kind, err)
	}
	return mav.Packet{SysID: env.SysID, CompID: env.CompID, Msg: deref(msg)}, nil
}

// newMessage allocates the concrete struct for a kind. Pointers let the
// JSON decoder fill the value; deref below returns messages by value the
// way the rest of the core passes them.
func newMessage(k mav.Kind) (mav.Message, error) {
	switch k {
	case mav.KindHeartbeat:
		return &mav.Heartbeat{}, nil
	case mav.KindSysStatus:
		return &mav.SysStatus{}, nil
	case mav.KindSystemTime:
		return &mav.SystemTime{}, nil
	case mav.KindParamValue:
		return &mav.ParamValue{}, nil
	case mav.KindRawIMU:
		return &mav.RawIMU{}, nil
	case mav.KindScaledPressure:
		return &mav.ScaledPressure{}, nil
	case mav.KindAttitude:
		return &mav.Attitude{}, nil
	case mav.KindGlobalPositionInt:
		return &mav.GlobalPositionInt{}, nil
	case mav.KindServoOutputRaw:
		return &mav.ServoOutputRaw{}, nil
	case mav.KindMissionWritePartialList:
		return &mav.MissionWritePartialList{}, nil
	case mav.KindMissionItem:
		return &mav.MissionItem{}, nil
	case mav.KindMissionRequest:
		return &mav.MissionRequest{}, nil
	case mav.KindMissionAck:
		return &mav.MissionAck{}, nil
	case mav.KindNavControllerOutput:
		return &mav.NavControllerOutput{}, nil
	case mav.KindRCChannels:
		return &mav.RCChannels{}, nil
	case mav.KindRequestDataStream:
		return &mav.RequestDataStream{}, nil
	case mav.KindManualControl:
		return &mav.ManualControl{}, nil
	case mav.KindCommandInt:
		return &mav.CommandInt{}, nil
	case mav.KindCommandLong:
		return &mav.CommandLong{}, nil
	case mav.KindCommandAck:
		return &mav.CommandAck{}, nil
	case mav.KindSetAttitudeTarget:
		return &mav.SetAttitudeTarget{}, nil
	case mav.KindAHRS:
		return &mav.AHRS{}, nil
	case mav.KindPIDTuning:
		return &mav.PIDTuning{}, nil
	case mav.KindStatusText:
		return &mav.StatusText{}, nil
	}
	return nil, fmt.Errorf("wire: unknown message kind %d", k)
}

func deref(m mav.Message) mav.Message {
	switch v := m.(type) {
	case *mav.Heartbeat:
		return *v
	case *mav.SysStatus:
		return *v
	case *mav.SystemTime:
		return *v
	case *mav.ParamValue:
		return *v
	case *mav.RawIMU:
		return *v
	case *mav.ScaledPressure:
		return *v
	case *mav.Attitude:
		return *v
	case *mav.GlobalPositionInt:
		return *v
	case *mav.ServoOutputRaw:
		return *v
	case *mav.MissionWritePartialList:
		return *v
	case *mav.MissionItem:
		return *v
	case *mav.MissionRequest:
		return *v
	case *mav.MissionAck:
		return *v
	case *mav.NavControllerOutput:
		return *v
	case *mav.RCChannels:
		return *v
	case *mav.RequestDataStream:
		return *v
	case *mav.ManualControl:
		return *v
	case *mav.CommandInt:
		return *v
	case *mav.CommandLong:
		return *v
	case *mav.CommandAck:
		return *v
	case *mav.SetAttitudeTarget:
		return *v
	case *mav.AHRS:
		return *v
	case *mav.PIDTuning:
		return *v
	case *mav.StatusText:
		return *v
	}
	return m
}
