package humanizer

import (
	"fmt"
	"strings"
)

// Mode is the humanize option: off, binary or decimal.
type Mode string

const (
	ModeOff     Mode = "off"
	ModeBinary  Mode = "binary"
	ModeDecimal Mode = "decimal"
)

// ParseMode accepts off, binary or decimal, case-insensitively. An empty
// string means off.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeOff:
		return ModeOff, nil
	case ModeBinary:
		return ModeBinary, nil
	case ModeDecimal:
		return ModeDecimal, nil
	default:
		return ModeOff, fmt.Errorf("unknown humanize mode %q (want off, binary or decimal)", s)
	}
}

// Base returns the unit base for the mode, or false when humanizing is off.
func (m Mode) Base() (Base, bool) {
	switch m {
	case ModeBinary:
		return Binary, true
	case ModeDecimal:
		return Decimal, true
	default:
		return 0, false
	}
}

// UnmarshalText lets Mode be read from YAML and flags.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
