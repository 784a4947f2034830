package sim

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Script is a keyframe-driven flight description for reproducing a
// specific encounter geometry. Time is expressed as Go duration strings.
// If duration is zero it is derived from the latest keyframe.
//
// YAML schema (v1):
//
//	version: 1
//	duration: 60s
//	sysid: 17
//	keyframes:
//	  - t: 0s
//	    lat_deg: 37.7749
//	    lon_deg: -122.4194
//	    alt_m: 500
//
// Keyframes must be sorted by non-decreasing t. Keep the schema stable:
// scripts double as test fixtures.
type Script struct {
	Version   int           `yaml:"version"`
	Duration  time.Duration `yaml:"duration"`
	SysID     uint8         `yaml:"sysid"`
	Keyframes []Keyframe    `yaml:"keyframes"`
}

// Keyframe is a time-stamped vehicle position.
type Keyframe struct {
	T      time.Duration `yaml:"t"`
	LatDeg float64       `yaml:"lat_deg"`
	LonDeg float64       `yaml:"lon_deg"`
	AltM   float64       `yaml:"alt_m"`
}

// LoadScript reads and validates a YAML flight script.
func LoadScript(path string) (*ScriptedFlight, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Script
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return NewScriptedFlight(s)
}

// ScriptedFlight is the validated runtime form of a Script.
type ScriptedFlight struct {
	script   Script
	duration time.Duration
}

func NewScriptedFlight(s Script) (*ScriptedFlight, error) {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Version != 1 {
		return nil, fmt.Errorf("unsupported script version %d", s.Version)
	}
	if len(s.Keyframes) == 0 {
		return nil, fmt.Errorf("keyframes is required")
	}
	for i, kf := range s.Keyframes {
		if kf.T < 0 {
			return nil, fmt.Errorf("keyframes[%d].t must be >= 0", i)
		}
		if i > 0 && kf.T < s.Keyframes[i-1].T {
			return nil, fmt.Errorf("keyframes must be sorted by t (index %d)", i)
		}
	}

	dur := s.Duration
	if dur <= 0 {
		dur = s.Keyframes[len(s.Keyframes)-1].T
	}
	if dur <= 0 {
		return nil, fmt.Errorf("duration is required (or derivable from keyframes)")
	}

	return &ScriptedFlight{script: s, duration: dur}, nil
}

// Duration returns the effective script duration.
func (f *ScriptedFlight) Duration() time.Duration { return f.duration }

// SysID returns the scripted vehicle's system id.
func (f *ScriptedFlight) SysID() uint8 { return f.script.SysID }

// At samples the flight at elapsed. With loop, elapsed wraps around the
// duration; otherwise it clamps to the final keyframe.
func (f *ScriptedFlight) At(elapsed time.Duration, loop bool) Keyframe {
	if elapsed < 0 {
		elapsed = 0
	}
	if loop {
		elapsed = elapsed % f.duration
	} else if elapsed > f.duration {
		elapsed = f.duration
	}

	kfs := f.script.Keyframes
	if len(kfs) == 1 {
		return kfs[0]
	}
	idx := sort.Search(len(kfs), func(i int) bool { return kfs[i].T > elapsed })
	if idx <= 0 {
		return kfs[0]
	}
	if idx >= len(kfs) {
		return kfs[len(kfs)-1]
	}
	k0, k1 := kfs[idx-1], kfs[idx]
	dt := k1.T - k0.T
	if dt <= 0 {
		return k1
	}
	alpha := float64(elapsed-k0.T) / float64(dt)

	return Keyframe{
		T:      elapsed,
		LatDeg: lerp(k0.LatDeg, k1.LatDeg, alpha),
		LonDeg: lerp(k0.LonDeg, k1.LonDeg, alpha),
		AltM:   lerp(k0.AltM, k1.AltM, alpha),
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
