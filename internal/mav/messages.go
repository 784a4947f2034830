package mav

// Heartbeat announces a system's presence, type and mode.
type Heartbeat struct {
	Type         VehicleType  `json:"type"`
	Autopilot    uint8        `json:"autopilot"`
	BaseMode     uint8        `json:"base_mode"`
	CustomMode   uint32       `json:"custom_mode"`
	SystemStatus SystemStatus `json:"system_status"`
}

func (Heartbeat) MsgKind() Kind { return KindHeartbeat }

// SysStatus carries basic health counters for the extended-status stream.
type SysStatus struct {
	Load           uint16 `json:"load"`
	VoltageBattery uint16 `json:"voltage_battery"`
	ErrorsComm     uint16 `json:"errors_comm"`
}

func (SysStatus) MsgKind() Kind { return KindSysStatus }

// SystemTime reports boot-relative and UTC time.
type SystemTime struct {
	TimeUnixUsec uint64 `json:"time_unix_usec"`
	TimeBootMs   uint32 `json:"time_boot_ms"`
}

func (SystemTime) MsgKind() Kind { return KindSystemTime }

// ParamValue announces one named parameter and the total count.
type ParamValue struct {
	ParamID    string  `json:"param_id"`
	ParamValue float32 `json:"param_value"`
	ParamCount uint16  `json:"param_count"`
	ParamIndex uint16  `json:"param_index"`
}

func (ParamValue) MsgKind() Kind { return KindParamValue }

// RawIMU carries unscaled inertial sensor readings.
type RawIMU struct {
	TimeUsec uint64 `json:"time_usec"`
	Xacc     int16  `json:"xacc"`
	Yacc     int16  `json:"yacc"`
	Zacc     int16  `json:"zacc"`
	Xgyro    int16  `json:"xgyro"`
	Ygyro    int16  `json:"ygyro"`
	Zgyro    int16  `json:"zgyro"`
}

func (RawIMU) MsgKind() Kind { return KindRawIMU }

// ScaledPressure carries barometric pressure from the tracked vehicle or
// the tracker's own sensor.
type ScaledPressure struct {
	TimeBootMs  uint32  `json:"time_boot_ms"`
	PressAbs    float32 `json:"press_abs"`
	PressDiff   float32 `json:"press_diff"`
	Temperature int16   `json:"temperature"`
}

func (ScaledPressure) MsgKind() Kind { return KindScaledPressure }

// Attitude is the tracker's own orientation estimate in radians.
type Attitude struct {
	TimeBootMs uint32  `json:"time_boot_ms"`
	Roll       float32 `json:"roll"`
	Pitch      float32 `json:"pitch"`
	Yaw        float32 `json:"yaw"`
	RollSpeed  float32 `json:"rollspeed"`
	PitchSpeed float32 `json:"pitchspeed"`
	YawSpeed   float32 `json:"yawspeed"`
}

func (Attitude) MsgKind() Kind { return KindAttitude }

// GlobalPositionInt is a fused position report. Latitude/longitude are in
// 1e7 degrees, altitudes in millimeters, velocities in cm/s, heading in
// centidegrees (65535 = unknown).
type GlobalPositionInt struct {
	TimeBootMs  uint32 `json:"time_boot_ms"`
	Lat         int32  `json:"lat"`
	Lon         int32  `json:"lon"`
	Alt         int32  `json:"alt"`
	RelativeAlt int32  `json:"relative_alt"`
	Vx          int16  `json:"vx"`
	Vy          int16  `json:"vy"`
	Vz          int16  `json:"vz"`
	Hdg         uint16 `json:"hdg"`
}

func (GlobalPositionInt) MsgKind() Kind { return KindGlobalPositionInt }

// ServoOutputRaw reports the raw servo outputs in microseconds.
type ServoOutputRaw struct {
	TimeUsec  uint32 `json:"time_usec"`
	Servo1Raw uint16 `json:"servo1_raw"`
	Servo2Raw uint16 `json:"servo2_raw"`
}

func (ServoOutputRaw) MsgKind() Kind { return KindServoOutputRaw }

// MissionWritePartialList announces a partial mission upload.
type MissionWritePartialList struct {
	TargetSystem    uint8 `json:"target_system"`
	TargetComponent uint8 `json:"target_component"`
	StartIndex      int16 `json:"start_index"`
	EndIndex        int16 `json:"end_index"`
	MissionType     uint8 `json:"mission_type"`
}

func (MissionWritePartialList) MsgKind() Kind { return KindMissionWritePartialList }

// MissionItem is one uploaded waypoint. X is the east/longitude axis and Y
// the north/latitude axis, in decimal degrees or local meters depending on
// Frame; Z is altitude in meters. Coordinates keep full precision through
// the decode so fixed-point conversion is exact.
type MissionItem struct {
	TargetSystem    uint8   `json:"target_system"`
	TargetComponent uint8   `json:"target_component"`
	Seq             uint16  `json:"seq"`
	Frame           Frame   `json:"frame"`
	Command         uint16  `json:"command"`
	Current         uint8   `json:"current"`
	Autocontinue    uint8   `json:"autocontinue"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Z               float64 `json:"z"`
}

func (MissionItem) MsgKind() Kind { return KindMissionItem }

// MissionRequest asks the ground station for the mission item at Seq.
type MissionRequest struct {
	TargetSystem    uint8  `json:"target_system"`
	TargetComponent uint8  `json:"target_component"`
	Seq             uint16 `json:"seq"`
	MissionType     uint8  `json:"mission_type"`
}

func (MissionRequest) MsgKind() Kind { return KindMissionRequest }

// MissionAck confirms or rejects a single uploaded mission item.
type MissionAck struct {
	TargetSystem    uint8         `json:"target_system"`
	TargetComponent uint8         `json:"target_component"`
	Result          MissionResult `json:"result"`
	MissionType     uint8         `json:"mission_type"`
}

func (MissionAck) MsgKind() Kind { return KindMissionAck }

// NavControllerOutput reports the pointing controller state: where the
// tracker is aiming versus where the target is.
type NavControllerOutput struct {
	NavRoll       float32 `json:"nav_roll"`
	NavPitch      float32 `json:"nav_pitch"`
	NavBearing    int16   `json:"nav_bearing"`
	TargetBearing int16   `json:"target_bearing"`
	WpDist        uint16  `json:"wp_dist"`
	AltError      float32 `json:"alt_error"`
	AspdError     float32 `json:"aspd_error"`
	XtrackError   float32 `json:"xtrack_error"`
}

func (NavControllerOutput) MsgKind() Kind { return KindNavControllerOutput }

// RCChannels reports the pilot input channels in microseconds.
type RCChannels struct {
	TimeBootMs uint32 `json:"time_boot_ms"`
	Chan1Raw   uint16 `json:"chan1_raw"`
	Chan2Raw   uint16 `json:"chan2_raw"`
	ChanCount  uint8  `json:"chancount"`
}

func (RCChannels) MsgKind() Kind { return KindRCChannels }

// RequestDataStream asks a remote system to stream a message class at a
// given rate.
type RequestDataStream struct {
	TargetSystem    uint8    `json:"target_system"`
	TargetComponent uint8    `json:"target_component"`
	ReqStreamID     StreamID `json:"req_stream_id"`
	ReqMessageRate  uint16   `json:"req_message_rate"`
	StartStop       uint8    `json:"start_stop"`
}

func (RequestDataStream) MsgKind() Kind { return KindRequestDataStream }

// ManualControl is joystick-style input from the ground station.
type ManualControl struct {
	Target  uint8  `json:"target"`
	X       int16  `json:"x"`
	Y       int16  `json:"y"`
	Z       int16  `json:"z"`
	R       int16  `json:"r"`
	Buttons uint16 `json:"buttons"`
}

func (ManualControl) MsgKind() Kind { return KindManualControl }

// CommandInt is an int-form command with a scaled position payload.
type CommandInt struct {
	TargetSystem    uint8   `json:"target_system"`
	TargetComponent uint8   `json:"target_component"`
	Frame           Frame   `json:"frame"`
	Command         Command `json:"command"`
	Param1          float32 `json:"param1"`
	Param2          float32 `json:"param2"`
	Param3          float32 `json:"param3"`
	Param4          float32 `json:"param4"`
	X               int32   `json:"x"`
	Y               int32   `json:"y"`
	Z               float32 `json:"z"`
}

func (CommandInt) MsgKind() Kind { return KindCommandInt }

// CommandLong is a long-form command with seven float parameters.
type CommandLong struct {
	TargetSystem    uint8   `json:"target_system"`
	TargetComponent uint8   `json:"target_component"`
	Command         Command `json:"command"`
	Confirmation    uint8   `json:"confirmation"`
	Param1          float32 `json:"param1"`
	Param2          float32 `json:"param2"`
	Param3          float32 `json:"param3"`
	Param4          float32 `json:"param4"`
	Param5          float32 `json:"param5"`
	Param6          float32 `json:"param6"`
	Param7          float32 `json:"param7"`
}

func (CommandLong) MsgKind() Kind { return KindCommandLong }

// CommandAck reports the outcome of a command.
type CommandAck struct {
	Command Command `json:"command"`
	Result  Result  `json:"result"`
}

func (CommandAck) MsgKind() Kind { return KindCommandAck }

// SetAttitudeTarget commands an attitude setpoint while in guided mode.
// Q is w,x,y,z. Rates are rad/s. A set TypeMask bit means ignore the field.
type SetAttitudeTarget struct {
	TimeBootMs      uint32     `json:"time_boot_ms"`
	TargetSystem    uint8      `json:"target_system"`
	TargetComponent uint8      `json:"target_component"`
	TypeMask        uint8      `json:"type_mask"`
	Q               [4]float32 `json:"q"`
	BodyRollRate    float32    `json:"body_roll_rate"`
	BodyPitchRate   float32    `json:"body_pitch_rate"`
	BodyYawRate     float32    `json:"body_yaw_rate"`
	Thrust          float32    `json:"thrust"`
}

func (SetAttitudeTarget) MsgKind() Kind { return KindSetAttitudeTarget }

// AHRS reports attitude estimator internals for the extra3 stream.
type AHRS struct {
	OmegaIx  float32 `json:"omegaIx"`
	OmegaIy  float32 `json:"omegaIy"`
	OmegaIz  float32 `json:"omegaIz"`
	ErrorRP  float32 `json:"error_rp"`
	ErrorYaw float32 `json:"error_yaw"`
}

func (AHRS) MsgKind() Kind { return KindAHRS }

// PIDTuning reports one servo controller's PID state.
type PIDTuning struct {
	Axis     uint8   `json:"axis"`
	Desired  float32 `json:"desired"`
	Achieved float32 `json:"achieved"`
	FF       float32 `json:"FF"`
	P        float32 `json:"P"`
	I        float32 `json:"I"`
	D        float32 `json:"D"`
	SRate    float32 `json:"srate"`
	PDmod    float32 `json:"pdmod"`
}

func (PIDTuning) MsgKind() Kind { return KindPIDTuning }

// PID tuning axis ids.
const (
	PIDTuningPitch uint8 = 3
	PIDTuningYaw   uint8 = 4
)

// StatusText is a free-form operator notice.
type StatusText struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

func (StatusText) MsgKind() Kind { return KindStatusText }
