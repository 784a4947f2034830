//go:build linux

package safetysw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/warthog618/go-gpiocdev"

	"tracker-gcs/internal/vehicle"
)

// gpioSwitch reads the interlock from a GPIO line via the Linux GPIO
// character device. Line high = armed position, low = disarmed.
type gpioSwitch struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// Open finds the named GPIO line and requests it as an input.
func Open(pin int) (Switch, error) {
	if pin <= 0 {
		return nil, fmt.Errorf("safetysw: invalid gpio pin %d", pin)
	}

	// On Pi, line names are commonly "GPIO17", etc.
	lineName := fmt.Sprintf("GPIO%d", pin)

	chipCandidates := []string{"/dev/gpiochip0", "/dev/gpiochip4"}
	entries, _ := os.ReadDir("/dev")
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "gpiochip") {
			chipCandidates = append(chipCandidates, filepath.Join("/dev", name))
		}
	}

	for _, chipPath := range chipCandidates {
		chip, err := gpiocdev.NewChip(chipPath)
		if err != nil {
			continue
		}
		offset, err := chip.FindLine(lineName)
		if err != nil {
			_ = chip.Close()
			continue
		}
		line, err := chip.RequestLine(offset, gpiocdev.AsInput, gpiocdev.WithConsumer("tracker-gcs-safety"))
		if err != nil {
			_ = chip.Close()
			continue
		}
		return &gpioSwitch{chip: chip, line: line}, nil
	}

	return nil, fmt.Errorf("safetysw: gpio line %q not found (or busy)", lineName)
}

func (g *gpioSwitch) State() vehicle.SafetySwitchState {
	v, err := g.line.Value()
	if err != nil {
		return vehicle.SafetyNone
	}
	if v != 0 {
		return vehicle.SafetyArmed
	}
	return vehicle.SafetyDisarmed
}

func (g *gpioSwitch) Close() error {
	if g.line != nil {
		_ = g.line.Close()
	}
	if g.chip != nil {
		return g.chip.Close()
	}
	return nil
}
