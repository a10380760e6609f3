//go:build linux || darwin || freebsd || dragonfly || openbsd || netbsd || solaris

package capacity

import (
	"errors"

	"golang.org/x/sys/unix"
)

type posixSyscalls struct {
	probes []Probe
}

func platformSyscalls() Syscalls {
	return posixSyscalls{probes: platformProbes()}
}

func (posixSyscalls) NativePath(path string) (string, error) {
	return path, nil
}

// IsDir uses stat(2), so symlinks are resolved to their target.
func (posixSyscalls) IsDir(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, errnoDetail(err)
	}
	return uint32(st.Mode)&unix.S_IFMT == unix.S_IFDIR, nil
}

func (p posixSyscalls) Probes() []Probe {
	return p.probes
}

// errnoDetail converts an errno into a Detail using the platform error strings.
func errnoDetail(err error) error {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return &Detail{NativeCode: int(errno), Message: errno.Error()}
	}
	return &Detail{Message: err.Error()}
}

// fragmentSize returns the statvfs fragment size, or the block size when the
// filesystem leaves it unset.
func fragmentSize(frsize, bsize uint64) uint64 {
	if frsize == 0 {
		return bsize
	}
	return frsize
}
