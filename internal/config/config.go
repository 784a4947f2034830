package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Links    LinksConfig  `yaml:"links"`
	GCS      GCSConfig    `yaml:"gcs"`
	Streams  StreamRates  `yaml:"streams"`
	Safety   SafetyConfig `yaml:"safety_switch"`
}

type LinksConfig struct {
	// UDPDest dials a fixed remote endpoint; UDPListen binds a local one
	// and talks back to whoever dials in. Either works for a ground
	// station; the target simulator dials, so the dev loop listens.
	UDPDest    string `yaml:"udp_dest"`
	UDPListen  string `yaml:"udp_listen"`
	SerialPort string `yaml:"serial_port"`
	SerialBaud int    `yaml:"serial_baud"`

	// BudgetBytes is the outbound byte budget each channel gets per
	// scheduler tick. Telemetry beyond the budget is dropped for the
	// cycle, never queued.
	BudgetBytes int `yaml:"budget_bytes"`
}

type GCSConfig struct {
	// SysIDThis is the tracker's own system id on the link.
	SysIDThis uint8 `yaml:"sysid_this"`
	// SysIDMyGCS is the ground station we accept control input from.
	SysIDMyGCS uint8 `yaml:"sysid_my_gcs"`
	// SysIDTarget filters inbound traffic to one vehicle; 0 accepts all
	// until target lock-on fills it in.
	SysIDTarget uint8 `yaml:"sysid_target"`
	// PIDMask selects which axes report pid-tuning telemetry:
	// bit0 pitch, bit1 yaw.
	PIDMask uint8 `yaml:"pid_mask"`
	// AltSource picks the altitude-difference estimate: "baro" or "gps".
	AltSource string `yaml:"alt_source"`
	// Stationary marks a tracker at a fixed surveyed position.
	Stationary bool `yaml:"stationary"`
}

// StreamRates are the per-category telemetry rates in Hz, range 0-50,
// 0 = disabled. Absent values take the defaults (1 Hz, params 10 Hz).
type StreamRates struct {
	RawSensors    *int `yaml:"raw_sensors"`
	ExtStatus     *int `yaml:"ext_status"`
	RCChannels    *int `yaml:"rc_channels"`
	RawController *int `yaml:"raw_ctrl"`
	Position      *int `yaml:"position"`
	Extra1        *int `yaml:"extra1"`
	Extra2        *int `yaml:"extra2"`
	Extra3        *int `yaml:"extra3"`
	Params        *int `yaml:"params"`
}

type SafetyConfig struct {
	Enable  bool `yaml:"enable"`
	GPIOPin int  `yaml:"gpio_pin"`
}

const (
	MinStreamRateHz = 0
	MaxStreamRateHz = 50
)

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.Links.UDPDest == "" && cfg.Links.UDPListen == "" && cfg.Links.SerialPort == "" {
		return Config{}, fmt.Errorf("links: at least one of udp_dest, udp_listen or serial_port is required")
	}
	if cfg.Links.SerialPort != "" && cfg.Links.SerialBaud == 0 {
		cfg.Links.SerialBaud = 57600
	}
	if cfg.Links.BudgetBytes <= 0 {
		cfg.Links.BudgetBytes = 1024
	}

	if cfg.GCS.SysIDThis == 0 {
		cfg.GCS.SysIDThis = 1
	}
	if cfg.GCS.SysIDMyGCS == 0 {
		cfg.GCS.SysIDMyGCS = 255
	}
	switch cfg.GCS.AltSource {
	case "":
		cfg.GCS.AltSource = "baro"
	case "baro", "gps":
	default:
		return Config{}, fmt.Errorf("gcs.alt_source must be \"baro\" or \"gps\", got %q", cfg.GCS.AltSource)
	}

	if err := cfg.Streams.validate(); err != nil {
		return Config{}, err
	}

	if cfg.Safety.Enable && cfg.Safety.GPIOPin <= 0 {
		return Config{}, fmt.Errorf("safety_switch.gpio_pin is required when safety_switch.enable is true")
	}

	return cfg, nil
}

func (r StreamRates) validate() error {
	for _, e := range []struct {
		name string
		v    *int
	}{
		{"raw_sensors", r.RawSensors},
		{"ext_status", r.ExtStatus},
		{"rc_channels", r.RCChannels},
		{"raw_ctrl", r.RawController},
		{"position", r.Position},
		{"extra1", r.Extra1},
		{"extra2", r.Extra2},
		{"extra3", r.Extra3},
		{"params", r.Params},
	} {
		if e.v == nil {
			continue
		}
		if *e.v < MinStreamRateHz || *e.v > MaxStreamRateHz {
			return fmt.Errorf("streams.%s must be in [%d, %d], got %d", e.name, MinStreamRateHz, MaxStreamRateHz, *e.v)
		}
	}
	return nil
}

// rateOr resolves an optional configured rate against its default.
func rateOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Resolved returns the nine category rates in importance order:
// raw-sensors, ext-status, position, raw-controller, rc-channels,
// extra1, extra2, extra3, params.
func (r StreamRates) Resolved() [9]int {
	return [9]int{
		rateOr(r.RawSensors, 1),
		rateOr(r.ExtStatus, 1),
		rateOr(r.Position, 1),
		rateOr(r.RawController, 1),
		rateOr(r.RCChannels, 1),
		rateOr(r.Extra1, 1),
		rateOr(r.Extra2, 1),
		rateOr(r.Extra3, 1),
		rateOr(r.Params, 10),
	}
}
