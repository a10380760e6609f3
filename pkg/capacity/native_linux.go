//go:build linux

package capacity

import "golang.org/x/sys/unix"

// Linux has no statvfs syscall. Like libc, statvfs is derived from statfs(2)
// using the fragment size, and the legacy fallback uses the block size.
func platformProbes() []Probe {
	return []Probe{
		{Name: "statvfs", Reason: ReasonStatvfsFailed, Stat: statvfs},
		{Name: "statfs", Reason: ReasonStatfsFailed, Stat: statfs},
	}
}

func statvfs(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, errnoDetail(err)
	}
	size := fragmentSize(blocks(st.Frsize), blocks(st.Bsize))
	return blockUsage(st.Blocks, st.Bfree, st.Bavail, size), nil
}

func statfs(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, errnoDetail(err)
	}
	return blockUsage(st.Blocks, st.Bfree, st.Bavail, blocks(st.Bsize)), nil
}
