package capacity

import (
	"strings"
	"unicode/utf8"
)

const (
	longPathPrefix = `\\?\`
	devicePrefix   = `\\.\`
	uncPrefix      = `\\`
)

// validatePath rejects paths no platform call can accept.
func validatePath(path string) error {
	if path == "" || !utf8.ValidString(path) || strings.IndexByte(path, 0) >= 0 {
		return &QueryError{Reason: ReasonInvalidPath}
	}
	return nil
}

// longPath prepends the Win32 extended-length prefix so paths longer than
// MAX_PATH reach the volume APIs intact. UNC shares use the \\?\UNC\ form.
func longPath(path string) string {
	switch {
	case strings.HasPrefix(path, longPathPrefix), strings.HasPrefix(path, devicePrefix):
		return path
	case strings.HasPrefix(path, uncPrefix):
		return longPathPrefix + `UNC\` + path[len(uncPrefix):]
	default:
		return longPathPrefix + path
	}
}
