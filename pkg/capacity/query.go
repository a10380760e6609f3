// Package capacity reports total, free, available and used bytes for the
// filesystem backing a directory.
//
// Each query is a fresh, blocking sequence of native calls. Nothing is cached
// and nothing is retried. Callers that cannot afford to block should use
// QueryContext or run Query on a goroutine of their own.
package capacity

import (
	"context"
	"math"
	"math/bits"

	"diskspace/pkg/log"
	"diskspace/pkg/models"
)

// Usage is the raw byte counters returned by a probe.
type Usage struct {
	Total     uint64
	Free      uint64
	Available uint64
}

// Probe is one native filesystem statistics call.
type Probe struct {
	// Name is used in logs only.
	Name string
	// Reason is reported when this probe is the last one to fail.
	Reason Reason
	Stat   func(path string) (Usage, error)
}

// Syscalls is the platform native layer driven by a Querier.
type Syscalls interface {
	// NativePath converts a validated path into the form the platform calls expect.
	NativePath(path string) (string, error)
	// IsDir reports whether path names an existing directory, following symlinks.
	// Errors should carry a *Detail.
	IsDir(path string) (bool, error)
	// Probes returns the statistics calls to try, primary first.
	Probes() []Probe
}

// Querier runs capacity queries against a native layer.
type Querier struct {
	sys Syscalls
}

// New creates a Querier using sys.
func New(sys Syscalls) *Querier {
	return &Querier{sys: sys}
}

// NewDefault creates a Querier using the native layer of the running platform.
func NewDefault() *Querier {
	return New(platformSyscalls())
}

var defaultQuerier = NewDefault()

// Query reports capacity for path using the platform native layer.
func Query(path string) (*models.CapacityStats, error) {
	return defaultQuerier.Query(path)
}

// QueryContext is Query bounded by ctx.
func QueryContext(ctx context.Context, path string) (*models.CapacityStats, error) {
	return defaultQuerier.QueryContext(ctx, path)
}

// Query reports capacity for the filesystem containing the directory path.
// Every failure is a *QueryError.
func (q *Querier) Query(path string) (*models.CapacityStats, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	nativePath, err := q.sys.NativePath(path)
	if err != nil {
		log.Debug().Str("path", path).Err(err).Msg("Path conversion failed")
		return nil, &QueryError{Reason: ReasonPathConversionFailed}
	}

	isDir, err := q.sys.IsDir(nativePath)
	if err != nil {
		return nil, NewError(ReasonNotDirectory, err)
	}
	if !isDir {
		return nil, &QueryError{Reason: ReasonNotDirectory}
	}

	probes := q.sys.Probes()
	if len(probes) == 0 {
		return nil, &QueryError{
			Reason: ReasonStatvfsFailed,
			Detail: &Detail{Message: "filesystem statistics are not supported on this platform"},
		}
	}

	var lastErr *QueryError
	for i, probe := range probes {
		usage, err := probe.Stat(nativePath)
		if err == nil {
			stats := models.NewCapacityStats(usage.Total, usage.Free, usage.Available)
			log.Debug().
				Str("path", path).
				Str("probe", probe.Name).
				Uint64("total", stats.Total).
				Uint64("free", stats.Free).
				Uint64("available", stats.Available).
				Uint64("used", stats.Used).
				Msg("Filesystem stats")
			return &stats, nil
		}

		lastErr = NewError(probe.Reason, err)
		if i < len(probes)-1 {
			log.Debug().Str("path", path).Str("probe", probe.Name).Err(err).Msg("Probe failed, trying fallback")
		}
	}

	return nil, lastErr
}

// QueryContext runs Query on its own goroutine and returns ctx.Err() if ctx
// ends first. The native call itself cannot be interrupted and finishes in
// the background.
func (q *Querier) QueryContext(ctx context.Context, path string) (*models.CapacityStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		stats *models.CapacityStats
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		stats, err := q.Query(path)
		done <- outcome{stats: stats, err: err}
	}()

	select {
	case res := <-done:
		return res.stats, res.err
	case <-ctx.Done():
		log.Warn().Str("path", path).Err(ctx.Err()).Msg("Capacity query abandoned")
		return nil, ctx.Err()
	}
}

type blockCounter interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// blocks converts a native block counter, treating negative values as zero.
func blocks[T blockCounter](v T) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// mulBytes multiplies a block count by a block size, saturating on overflow.
func mulBytes(count, size uint64) uint64 {
	hi, lo := bits.Mul64(count, size)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// blockUsage converts block counters into byte counters.
func blockUsage(total, free, avail, size uint64) Usage {
	return Usage{
		Total:     mulBytes(total, size),
		Free:      mulBytes(free, size),
		Available: mulBytes(avail, size),
	}
}
