package models

import "encoding/json"

// CapacityStats represents filesystem capacity in bytes.
type CapacityStats struct {
	Total     uint64 `json:"total"`     // Size of the filesystem
	Free      uint64 `json:"free"`      // Free bytes, including reserved blocks
	Available uint64 `json:"available"` // Bytes available to the calling user
	Used      uint64 `json:"used"`      // Total minus free, never below zero
}

// NewCapacityStats builds stats from raw counters, deriving Used.
func NewCapacityStats(total, free, available uint64) CapacityStats {
	var used uint64
	if total >= free {
		used = total - free
	}

	return CapacityStats{
		Total:     total,
		Free:      free,
		Available: available,
		Used:      used,
	}
}

// Map returns the stats keyed by field name.
func (c CapacityStats) Map() map[string]uint64 {
	return map[string]uint64{
		"total":     c.Total,
		"free":      c.Free,
		"available": c.Available,
		"used":      c.Used,
	}
}

// HumanizedStats holds the same fields as CapacityStats rendered as text.
type HumanizedStats struct {
	Total     string `json:"total"`
	Free      string `json:"free"`
	Available string `json:"available"`
	Used      string `json:"used"`
}

// Report is the successful result of a stat call. Exactly one field is set.
type Report struct {
	Bytes *CapacityStats
	Human *HumanizedStats
}

// Humanized reports whether the report carries text values.
func (r Report) Humanized() bool {
	return r.Human != nil
}

// MarshalJSON flattens the report into the four-key object it carries.
func (r Report) MarshalJSON() ([]byte, error) {
	if r.Human != nil {
		return json.Marshal(r.Human)
	}
	if r.Bytes != nil {
		return json.Marshal(r.Bytes)
	}
	return []byte("null"), nil
}
