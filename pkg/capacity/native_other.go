//go:build !linux && !darwin && !freebsd && !dragonfly && !openbsd && !netbsd && !solaris && !windows

package capacity

import (
	"os"
)

type fallbackSyscalls struct{}

func platformSyscalls() Syscalls {
	return fallbackSyscalls{}
}

func (fallbackSyscalls) NativePath(path string) (string, error) {
	return path, nil
}

func (fallbackSyscalls) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, &Detail{Message: err.Error()}
	}
	return info.IsDir(), nil
}

// Probes is empty; Query reports statvfs_failed.
func (fallbackSyscalls) Probes() []Probe {
	return nil
}
