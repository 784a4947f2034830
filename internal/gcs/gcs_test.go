package gcs

import (
	"bufio"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"tracker-gcs/internal/mav"
	"tracker-gcs/internal/vehicle"
	"tracker-gcs/internal/wire"
)

// fakeTransport records everything the core sends so tests can decode and
// inspect it.
type fakeTransport struct {
	name string
	buf  bytes.Buffer
}

func (f *fakeTransport) Name() string { return f.name }

func (f *fakeTransport) Read(p []byte) (int, error) { return 0, io.EOF }

func (f *fakeTransport) Write(p []byte) (int, error) { return f.buf.Write(p) }

func (f *fakeTransport) Close() error { return nil }

// sent decodes the recorded outbound packets.
func (f *fakeTransport) sent(t *testing.T) []mav.Packet {
	t.Helper()
	var out []mav.Packet
	sc := bufio.NewScanner(bytes.NewReader(f.buf.Bytes()))
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		pkt, err := wire.DecodeLine(sc.Bytes())
		if err != nil {
			t.Fatalf("decode sent line: %v", err)
		}
		out = append(out, pkt)
	}
	return out
}

func (f *fakeTransport) reset() { f.buf.Reset() }

// sentOfKind filters the recorded packets by kind.
func sentOfKind(t *testing.T, f *fakeTransport, k mav.Kind) []mav.Message {
	t.Helper()
	var out []mav.Message
	for _, pkt := range f.sent(t) {
		if pkt.Msg.MsgKind() == k {
			out = append(out, pkt.Msg)
		}
	}
	return out
}

type servoCall struct {
	servo uint8
	pwm   uint16
}

type guidedCall struct {
	q          [4]float32
	useYawRate bool
	yawRate    float32
}

// fakeController records every control request the core makes.
type fakeController struct {
	modes       []vehicle.Mode
	armCalls    int
	disarmCalls int
	armOK       bool

	servoCalls []servoCall
	servoOK    bool

	guidedCalls []guidedCall

	homeCalls []vehicle.Location
	homeOK    bool

	positions []mav.GlobalPositionInt
	pressures []mav.ScaledPressure
	manual    []mav.ManualControl
}

func newFakeController() *fakeController {
	return &fakeController{armOK: true, servoOK: true, homeOK: true}
}

func (f *fakeController) SetMode(m vehicle.Mode, _ vehicle.ModeReason) {
	f.modes = append(f.modes, m)
}

func (f *fakeController) ArmServos() bool {
	f.armCalls++
	return f.armOK
}

func (f *fakeController) DisarmServos() bool {
	f.disarmCalls++
	return f.armOK
}

func (f *fakeController) SetServo(servo uint8, pwm uint16) bool {
	f.servoCalls = append(f.servoCalls, servoCall{servo, pwm})
	return f.servoOK
}

func (f *fakeController) SetGuidedAngle(q [4]float32, useYawRate bool, yawRate float32) {
	f.guidedCalls = append(f.guidedCalls, guidedCall{q, useYawRate, yawRate})
}

func (f *fakeController) SetHome(loc vehicle.Location) bool {
	f.homeCalls = append(f.homeCalls, loc)
	return f.homeOK
}

func (f *fakeController) UpdateTargetPosition(p mav.GlobalPositionInt) {
	f.positions = append(f.positions, p)
}

func (f *fakeController) UpdateTargetPressure(p mav.ScaledPressure) {
	f.pressures = append(f.pressures, p)
}

func (f *fakeController) HandleManualControl(m mav.ManualControl) {
	f.manual = append(f.manual, m)
}

// fakeCommon records fallthrough traffic and answers delegated commands.
type fakeCommon struct {
	messages []mav.Packet
	commands []mav.CommandLong
	result   mav.Result
}

func (f *fakeCommon) HandleMessage(ch *Channel, pkt mav.Packet) {
	f.messages = append(f.messages, pkt)
}

func (f *fakeCommon) HandleCommand(ch *Channel, pkt mav.Packet, cmd mav.CommandLong) mav.Result {
	f.commands = append(f.commands, cmd)
	return f.result
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type testRig struct {
	srv   *Server
	st    *vehicle.State
	ctrl  *fakeController
	com   *fakeCommon
	tr    *fakeTransport
	ch    *Channel
	clock time.Time
}

func newTestRig(t *testing.T, p Params) *testRig {
	t.Helper()
	log := quietLogger()
	st := vehicle.NewState(time.Unix(1000, 0))
	ctrl := newFakeController()
	com := &fakeCommon{result: mav.ResultUnsupported}

	rig := &testRig{
		st:    st,
		ctrl:  ctrl,
		com:   com,
		clock: time.Unix(2000, 0),
	}

	rig.srv = NewServer(p, [numCategories]int{1, 1, 1, 1, 1, 1, 1, 1, 10}, st, ctrl, com, log)
	rig.srv.now = func() time.Time { return rig.clock }

	rig.tr = &fakeTransport{name: "test0"}
	rig.ch = NewChannel(rig.tr, wire.Encode, 4096, 1, log)
	rig.srv.AddChannel(rig.ch)
	return rig
}

func (r *testRig) advance(d time.Duration) {
	r.clock = r.clock.Add(d)
}
