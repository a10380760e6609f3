package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// MainTestSuite tests the command line front end
type MainTestSuite struct {
	suite.Suite
	tempDir string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

// SetupTest runs before each test
func (s *MainTestSuite) SetupTest() {
	s.tempDir = s.T().TempDir()
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
	s.T().Setenv("DISKSPACE_HUMANIZE", "off")
}

func (s *MainTestSuite) run(args ...string) int {
	return run(args, s.stdout, s.stderr)
}

// TestVersion tests the version flag
func (s *MainTestSuite) TestVersion() {
	s.Equal(0, s.run("-version"))
	s.Equal(strings.TrimSpace(Version), strings.TrimSpace(s.stdout.String()))
}

// TestNoArguments tests usage is printed
func (s *MainTestSuite) TestNoArguments() {
	s.Equal(2, s.run())
	s.Contains(s.stderr.String(), "Usage:")
}

// TestBadFlags tests flag and option validation
func (s *MainTestSuite) TestBadFlags() {
	s.Equal(2, s.run("-no-such-flag"))
	s.Equal(2, s.run("-humanize", "hex", s.tempDir))
	s.Equal(2, s.run("-config", filepath.Join(s.tempDir, "absent.yml"), s.tempDir))
}

// TestTextOutput tests raw byte output
func (s *MainTestSuite) TestTextOutput() {
	s.Equal(0, s.run(s.tempDir))

	output := s.stdout.String()
	s.True(strings.HasPrefix(output, s.tempDir+"\t"))
	s.Contains(output, "total=")
	s.Contains(output, "used=")
}

// TestHumanizedOutput tests the humanize flag
func (s *MainTestSuite) TestHumanizedOutput() {
	s.Equal(0, s.run("-humanize", "binary", s.tempDir))
	s.Regexp(`total=[0-9.]+ (B|KiB|MiB|GiB|TiB|PiB|EiB) `, s.stdout.String())
}

// TestFailureExitStatus tests a bad path fails the run but not the other paths
func (s *MainTestSuite) TestFailureExitStatus() {
	missing := filepath.Join(s.tempDir, "missing")
	s.Equal(1, s.run(s.tempDir, missing))

	lines := strings.Split(strings.TrimSpace(s.stdout.String()), "\n")
	s.Require().Len(lines, 2)
	s.Contains(lines[0], "total=")
	s.Contains(lines[1], "error: not_directory")
}

// TestJSONOutput tests one object per path
func (s *MainTestSuite) TestJSONOutput() {
	file := filepath.Join(s.tempDir, "file.txt")
	s.Require().NoError(os.WriteFile(file, []byte("x"), 0o600))

	s.Equal(1, s.run("-json", "-humanize", "decimal", s.tempDir, file))

	decoder := json.NewDecoder(s.stdout)

	var ok map[string]interface{}
	s.Require().NoError(decoder.Decode(&ok))
	s.Equal(s.tempDir, ok["path"])
	stats, isMap := ok["stats"].(map[string]interface{})
	s.Require().True(isMap)
	s.IsType("", stats["total"])
	s.NotContains(ok, "error")

	var failed map[string]interface{}
	s.Require().NoError(decoder.Decode(&failed))
	s.Equal(file, failed["path"])
	s.NotContains(failed, "stats")
	queryErr, isMap := failed["error"].(map[string]interface{})
	s.Require().True(isMap)
	s.Equal("not_directory", queryErr["reason"])
}

// TestMainSuite runs the command test suite
func TestMainSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}
