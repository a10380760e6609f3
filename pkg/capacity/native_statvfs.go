//go:build netbsd || solaris

package capacity

import "golang.org/x/sys/unix"

func platformProbes() []Probe {
	return []Probe{
		{Name: "statvfs", Reason: ReasonStatvfsFailed, Stat: statvfs},
	}
}

func statvfs(path string) (Usage, error) {
	var st unix.Statvfs_t
	if err := unix.Statvfs(path, &st); err != nil {
		return Usage{}, errnoDetail(err)
	}
	size := fragmentSize(blocks(st.Frsize), blocks(st.Bsize))
	return blockUsage(blocks(st.Blocks), blocks(st.Bfree), blocks(st.Bavail), size), nil
}
