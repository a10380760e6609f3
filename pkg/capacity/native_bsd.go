//go:build darwin || freebsd || dragonfly

package capacity

import "golang.org/x/sys/unix"

func platformProbes() []Probe {
	return []Probe{
		{Name: "statfs", Reason: ReasonStatfsFailed, Stat: statfs},
	}
}

func statfs(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, errnoDetail(err)
	}
	return blockUsage(blocks(st.Blocks), blocks(st.Bfree), blocks(st.Bavail), blocks(st.Bsize)), nil
}
