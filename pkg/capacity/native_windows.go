//go:build windows

package capacity

import (
	"errors"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

const unknownWinAPIError = "Unknown WinAPI error"

type windowsSyscalls struct{}

func platformSyscalls() Syscalls {
	return windowsSyscalls{}
}

// NativePath makes path absolute and adds the extended-length prefix.
func (windowsSyscalls) NativePath(path string) (string, error) {
	if !strings.HasPrefix(path, longPathPrefix) && !strings.HasPrefix(path, devicePrefix) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		path = abs
	}

	long := longPath(path)
	if _, err := windows.UTF16FromString(long); err != nil {
		return "", err
	}
	return long, nil
}

func (windowsSyscalls) IsDir(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, winDetail(err)
	}
	return attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0, nil
}

func (windowsSyscalls) Probes() []Probe {
	return []Probe{
		{Name: "GetDiskFreeSpaceExW", Reason: ReasonWinAPIFailed, Stat: diskFreeSpace},
	}
}

func diskFreeSpace(path string) (Usage, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Usage{}, err
	}

	var avail, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(p, &avail, &total, &free); err != nil {
		return Usage{}, winDetail(err)
	}
	return Usage{Total: total, Free: free, Available: avail}, nil
}

// winDetail converts a Win32 error into a Detail with the system message.
func winDetail(err error) error {
	var errno windows.Errno
	if !errors.As(err, &errno) {
		return &Detail{Message: err.Error()}
	}
	return &Detail{NativeCode: int(errno), Message: formatMessage(uint32(errno))}
}

func formatMessage(code uint32) string {
	buf := make([]uint16, 512)
	flags := uint32(windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS)
	n, err := windows.FormatMessage(flags, 0, code, 0, buf, nil)
	if err != nil || n == 0 {
		return unknownWinAPIError
	}
	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}
