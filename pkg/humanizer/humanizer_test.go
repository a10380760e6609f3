package humanizer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"diskspace/pkg/capacity"
	"diskspace/pkg/models"
)

// HumanizerTestSuite tests byte formatting
type HumanizerTestSuite struct {
	suite.Suite
}

// TestBoundaries tests exact behaviour around the divisor
func (s *HumanizerTestSuite) TestBoundaries() {
	testCases := []struct {
		name     string
		value    uint64
		base     Base
		expected string
	}{
		{"zero_binary", 0, Binary, "0 B"},
		{"zero_decimal", 0, Decimal, "0 B"},
		{"below_kib", 1023, Binary, "1023 B"},
		{"exact_kib", 1024, Binary, "1 KiB"},
		{"below_kb", 999, Decimal, "999 B"},
		{"exact_kb", 1000, Decimal, "1 kB"},
		{"kib_fraction", 1536, Binary, "1.50 KiB"},
		{"kb_fraction", 1500, Decimal, "1.50 kB"},
		{"mib", 123456789, Binary, "117.74 MiB"},
		{"mb", 123456789, Decimal, "123.46 MB"},
		{"exact_gib", 1 << 30, Binary, "1 GiB"},
		{"exact_tb", 1_000_000_000_000, Decimal, "1 TB"},
		{"max_binary", math.MaxUint64, Binary, "16 EiB"},
		{"max_decimal", math.MaxUint64, Decimal, "18.45 EB"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, Bytes(tc.value, tc.base))
		})
	}
}

// TestLadderStopsAtLastUnit tests values past the largest unit stay in it
func (s *HumanizerTestSuite) TestLadderStopsAtLastUnit() {
	s.Contains(Bytes(math.MaxUint64, Binary), "EiB")
	s.Contains(Bytes(math.MaxUint64, Decimal), "EB")
}

// TestUnknownBaseIsBinary tests the zero value falls back to binary units
func (s *HumanizerTestSuite) TestUnknownBaseIsBinary() {
	s.Equal("1 KiB", Bytes(1024, Base(0)))
	s.Equal("base(9)", Base(9).String())
	s.Equal("binary", Binary.String())
	s.Equal("decimal", Decimal.String())
}

// TestDeterministic tests identical input produces identical output
func (s *HumanizerTestSuite) TestDeterministic() {
	for i := 0; i < 5; i++ {
		s.Equal("117.74 MiB", Bytes(123456789, Binary))
	}
}

// TestMap tests each key is formatted independently
func (s *HumanizerTestSuite) TestMap() {
	out := Map(map[string]uint64{
		"total": 2048,
		"free":  1000,
		"used":  1048,
	}, Binary)

	s.Equal(map[string]string{
		"total": "2 KiB",
		"free":  "1000 B",
		"used":  "1.02 KiB",
	}, out)

	s.Empty(Map(map[string]uint64{}, Decimal))
}

// TestStats tests the struct form keeps every field
func (s *HumanizerTestSuite) TestStats() {
	stats := models.NewCapacityStats(1_000_000, 250_000, 200_000)
	human := Stats(stats, Decimal)

	s.Equal("1 MB", human.Total)
	s.Equal("250 kB", human.Free)
	s.Equal("200 kB", human.Available)
	s.Equal("750 kB", human.Used)

	s.Equal(Map(stats.Map(), Decimal), map[string]string{
		"total":     human.Total,
		"free":      human.Free,
		"available": human.Available,
		"used":      human.Used,
	})
}

// TestWrapPassesErrorsThrough tests identity on failures
func (s *HumanizerTestSuite) TestWrapPassesErrorsThrough() {
	queryErr := &capacity.QueryError{
		Reason: capacity.ReasonNotDirectory,
		Detail: &capacity.Detail{NativeCode: 2, Message: "no such file or directory"},
	}

	human, err := Wrap(nil, queryErr, Binary)
	s.Nil(human)
	s.Same(queryErr, err)

	plain := errors.New("boom")
	_, err = Wrap(&models.CapacityStats{Total: 1}, plain, Binary)
	s.Same(plain, err)
}

// TestWrapSuccess tests the success payload is humanized
func (s *HumanizerTestSuite) TestWrapSuccess() {
	stats := models.NewCapacityStats(1024, 0, 0)

	human, err := Wrap(&stats, nil, Binary)
	s.Require().NoError(err)
	s.Equal("1 KiB", human.Total)
	s.Equal("1 KiB", human.Used)
	s.Equal("0 B", human.Free)

	_, err = Wrap(nil, nil, Binary)
	s.Error(err)
}

// TestHumanizerSuite runs the humanizer test suite
func TestHumanizerSuite(t *testing.T) {
	suite.Run(t, new(HumanizerTestSuite))
}
