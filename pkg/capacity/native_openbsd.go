//go:build openbsd

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
	return blockUsage(blocks(st.F_blocks), blocks(st.F_bfree), blocks(st.F_bavail), blocks(st.F_bsize)), nil
}
