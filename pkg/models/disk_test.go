package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ModelsTestSuite tests the capacity value types
type ModelsTestSuite struct {
	suite.Suite
}

// TestNewCapacityStats tests used is derived from total and free
func (s *ModelsTestSuite) TestNewCapacityStats() {
	stats := NewCapacityStats(3072, 1024, 512)

	s.Equal(uint64(3072), stats.Total)
	s.Equal(uint64(1024), stats.Free)
	s.Equal(uint64(512), stats.Available)
	s.Equal(uint64(2048), stats.Used)
}

// TestUsedNeverWraps tests the clamp when free exceeds total
func (s *ModelsTestSuite) TestUsedNeverWraps() {
	s.Equal(uint64(0), NewCapacityStats(10, 11, 11).Used)
	s.Equal(uint64(0), NewCapacityStats(0, math.MaxUint64, 0).Used)
	s.Equal(uint64(0), NewCapacityStats(5, 5, 5).Used)
}

// TestMap tests the keyed view
func (s *ModelsTestSuite) TestMap() {
	s.Equal(map[string]uint64{
		"total":     100,
		"free":      40,
		"available": 30,
		"used":      60,
	}, NewCapacityStats(100, 40, 30).Map())
}

// TestReportJSON tests the flattened report encoding
func (s *ModelsTestSuite) TestReportJSON() {
	stats := NewCapacityStats(100, 40, 30)
	data, err := json.Marshal(Report{Bytes: &stats})
	s.Require().NoError(err)
	s.JSONEq(`{"total":100,"free":40,"available":30,"used":60}`, string(data))

	human := &HumanizedStats{Total: "100 B", Free: "40 B", Available: "30 B", Used: "60 B"}
	report := Report{Bytes: &stats, Human: human}
	s.True(report.Humanized())
	data, err = json.Marshal(report)
	s.Require().NoError(err)
	s.JSONEq(`{"total":"100 B","free":"40 B","available":"30 B","used":"60 B"}`, string(data))

	data, err = json.Marshal(Report{})
	s.Require().NoError(err)
	s.Equal("null", string(data))
}

// TestModelsSuite runs the models test suite
func TestModelsSuite(t *testing.T) {
	suite.Run(t, new(ModelsTestSuite))
}
