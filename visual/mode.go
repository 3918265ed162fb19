package visual

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects which visual is active.
type Mode int

// Modes
const (
	ModeBlob Mode = iota
	ModeEntity

	numModes
)

func (m Mode) String() string {
	switch m {
	case ModeBlob:
		return "blob"
	case ModeEntity:
		return "entity"
	}
	return "unknown"
}

// ParseMode accepts a mode name, case insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blob", "":
		return ModeBlob, nil
	case "entity":
		return ModeEntity, nil
	}
	return ModeBlob, errors.Errorf("unknown mode %q (blob, entity)", s)
}

// Bloom is the post-process pass configuration.
type Bloom struct {
	Enabled            bool
	LuminanceThreshold float64
	LuminanceSmoothing float64
	Intensity          float64
}

var entityBloom = Bloom{
	Enabled:            true,
	LuminanceThreshold: 0.6,
	LuminanceSmoothing: 0.9,
	Intensity:          0.3,
}

// ModeController is the two state mode selector. Switching is immediate.
type ModeController struct {
	mode Mode
}

// Mode returns the active mode.
func (mc *ModeController) Mode() Mode {
	return mc.mode
}

// Select switches to m and reports whether the mode changed. Invalid modes
// are ignored.
func (mc *ModeController) Select(m Mode) bool {
	if m < 0 || m >= numModes || m == mc.mode {
		return false
	}

	mc.mode = m
	return true
}

// Toggle switches to the other mode and returns it.
func (mc *ModeController) Toggle() Mode {
	mc.Select((mc.mode + 1) % numModes)
	return mc.mode
}

// PostProcess returns the bloom pass for the active mode. Only the entity
// mode enables it.
func (mc *ModeController) PostProcess() Bloom {
	if mc.mode == ModeEntity {
		return entityBloom
	}
	return Bloom{}
}
