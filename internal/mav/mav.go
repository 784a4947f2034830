// Package mav models the decoded telemetry-link messages the tracker core
// consumes and produces. The binary wire codec is an external collaborator;
// this package only defines the codec-independent message structs and the
// protocol enums/constants they reference.
package mav

// Kind identifies a message type on the telemetry link. Values follow the
// common dialect ids so logs and captures line up with other tools.
type Kind uint32

const (
	KindHeartbeat               Kind = 0
	KindSysStatus               Kind = 1
	KindSystemTime              Kind = 2
	KindParamValue              Kind = 22
	KindRawIMU                  Kind = 27
	KindScaledPressure          Kind = 29
	KindAttitude                Kind = 30
	KindGlobalPositionInt       Kind = 33
	KindServoOutputRaw          Kind = 36
	KindMissionWritePartialList Kind = 38
	KindMissionItem             Kind = 39
	KindMissionRequest          Kind = 40
	KindMissionAck              Kind = 47
	KindNavControllerOutput     Kind = 62
	KindRCChannels              Kind = 65
	KindRequestDataStream       Kind = 66
	KindManualControl           Kind = 69
	KindCommandInt              Kind = 75
	KindCommandLong             Kind = 76
	KindCommandAck              Kind = 77
	KindSetAttitudeTarget       Kind = 82
	KindAHRS                    Kind = 163
	KindPIDTuning               Kind = 194
	KindStatusText              Kind = 253
)

// Message is any decoded telemetry-link message.
type Message interface {
	MsgKind() Kind
}

// Packet is a decoded message plus its link addressing.
type Packet struct {
	SysID  uint8
	CompID uint8
	Msg    Message
}

// VehicleType reports what kind of system sent a heartbeat.
type VehicleType uint8

const (
	TypeGeneric           VehicleType = 0
	TypeFixedWing         VehicleType = 1
	TypeQuadrotor         VehicleType = 2
	TypeAntennaTracker    VehicleType = 5
	TypeGCS               VehicleType = 6
	TypeGroundRover       VehicleType = 10
	TypeOnboardController VehicleType = 18
	TypeGimbal            VehicleType = 26
)

// Result is the outcome code carried in a command acknowledgment.
type Result uint8

const (
	ResultAccepted            Result = 0
	ResultTemporarilyRejected Result = 1
	ResultDenied              Result = 2
	ResultUnsupported         Result = 3
	ResultFailed              Result = 4
)

// MissionResult is the outcome code carried in a mission acknowledgment.
type MissionResult uint8

const (
	MissionAccepted         MissionResult = 0
	MissionError            MissionResult = 1
	MissionUnsupportedFrame MissionResult = 2
	MissionUnsupported      MissionResult = 3
	MissionInvalidSequence  MissionResult = 13
)

// Frame is the coordinate frame of a mission item's position.
type Frame uint8

const (
	FrameGlobal            Frame = 0
	FrameLocalNED          Frame = 1
	FrameMission           Frame = 2
	FrameGlobalRelativeAlt Frame = 3
	FrameLocalENU          Frame = 4
)

// MissionTypeMission tags acknowledgments for the ordinary waypoint mission.
const MissionTypeMission uint8 = 0

// Base-mode bitmask flags for the outbound heartbeat.
const (
	ModeFlagCustomModeEnabled  uint8 = 1 << 0
	ModeFlagStabilizeEnabled   uint8 = 1 << 4
	ModeFlagGuidedEnabled      uint8 = 1 << 5
	ModeFlagManualInputEnabled uint8 = 1 << 6
	ModeFlagSafetyArmed        uint8 = 1 << 7
)

// SystemStatus is the coarse state advertised in the outbound heartbeat.
type SystemStatus uint8

const (
	StatusCalibrating SystemStatus = 3
	StatusActive      SystemStatus = 4
)

// Attitude-target type_mask bits. A set bit means "ignore this field".
const (
	AttMaskIgnoreBodyRollRate  uint8 = 1 << 0
	AttMaskIgnoreBodyPitchRate uint8 = 1 << 1
	AttMaskIgnoreBodyYawRate   uint8 = 1 << 2
	AttMaskReserved3           uint8 = 1 << 3
	AttMaskReserved4           uint8 = 1 << 4
	AttMaskIgnoreThrottle      uint8 = 1 << 6
	AttMaskIgnoreAttitude      uint8 = 1 << 7
)

// Command ids carried in command-long / command-int messages.
type Command uint16

const (
	CmdDoSetServo           Command = 183
	CmdPreflightCalibration Command = 241
	CmdMissionStart         Command = 300
	CmdComponentArmDisarm   Command = 400
)

// StreamID selects a stream class in a request-data-stream message.
type StreamID uint8

const (
	StreamRawSensors StreamID = 1
	StreamPosition   StreamID = 6
)

// Severity for status-text messages.
type Severity uint8

const (
	SeverityInfo    Severity = 6
	SeverityWarning Severity = 4
)
