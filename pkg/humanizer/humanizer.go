// Package humanizer renders byte counts as short strings such as "117.74 MiB".
package humanizer

import (
	"fmt"
	"strconv"
	"strings"

	"diskspace/pkg/models"
)

// Base selects the unit ladder.
type Base int

const (
	// Binary uses powers of 1024: B, KiB, MiB, ...
	Binary Base = iota + 1
	// Decimal uses powers of 1000: B, kB, MB, ...
	Decimal
)

var (
	binaryUnits  = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	decimalUnits = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}
)

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	default:
		return "base(" + strconv.Itoa(int(b)) + ")"
	}
}

func (b Base) ladder() (float64, []string) {
	if b == Decimal {
		return 1000, decimalUnits
	}
	return 1024, binaryUnits
}

// Bytes formats n with two decimals, dropping a whole ".00". Any base other
// than Decimal is treated as Binary.
func Bytes(n uint64, base Base) string {
	divisor, units := base.ladder()

	value := float64(n)
	step := 0
	for value >= divisor && step < len(units)-1 {
		value /= divisor
		step++
	}

	text := strings.TrimSuffix(strconv.FormatFloat(value, 'f', 2, 64), ".00")
	return text + " " + units[step]
}

// Map humanizes every value of stats.
func Map(stats map[string]uint64, base Base) map[string]string {
	out := make(map[string]string, len(stats))
	for key, value := range stats {
		out[key] = Bytes(value, base)
	}
	return out
}

// Stats humanizes each field of stats.
func Stats(stats models.CapacityStats, base Base) models.HumanizedStats {
	return models.HumanizedStats{
		Total:     Bytes(stats.Total, base),
		Free:      Bytes(stats.Free, base),
		Available: Bytes(stats.Available, base),
		Used:      Bytes(stats.Used, base),
	}
}

// Wrap humanizes the result of a capacity query. A non-nil err is returned
// unchanged.
func Wrap(stats *models.CapacityStats, err error, base Base) (*models.HumanizedStats, error) {
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, fmt.Errorf("humanize: nil stats")
	}

	human := Stats(*stats, base)
	return &human, nil
}
