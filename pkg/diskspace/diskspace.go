// Package diskspace is the library surface over the capacity engine: an
// arity-checked entry point, a safe call that returns failures as errors, a
// raising call that panics, and optional humanized output.
package diskspace

import (
	"context"

	"diskspace/pkg/capacity"
	"diskspace/pkg/humanizer"
	"diskspace/pkg/models"
)

// Options controls how results are rendered.
type Options struct {
	// Humanize renders byte counts as strings. The zero value means off.
	Humanize humanizer.Mode
}

// Client runs queries through a capacity.Querier.
type Client struct {
	querier *capacity.Querier
}

// NewClient creates a Client. A nil querier uses the platform native layer.
func NewClient(querier *capacity.Querier) *Client {
	if querier == nil {
		querier = capacity.NewDefault()
	}
	return &Client{querier: querier}
}

var defaultClient = NewClient(nil)

// StatFS is the raw native entry point. It expects exactly one path.
func (c *Client) StatFS(args ...string) (*models.CapacityStats, error) {
	if len(args) != 1 {
		return nil, &capacity.QueryError{Reason: capacity.ReasonWrongArity}
	}
	return c.querier.Query(args[0])
}

// Stat queries path and renders the result according to opts. Failures are
// returned as *capacity.QueryError.
func (c *Client) Stat(path string, opts Options) (*models.Report, error) {
	stats, err := c.querier.Query(path)
	return render(stats, err, opts)
}

// StatContext is Stat bounded by ctx. When ctx ends first the context error
// is returned instead of a *capacity.QueryError.
func (c *Client) StatContext(ctx context.Context, path string, opts Options) (*models.Report, error) {
	stats, err := c.querier.QueryContext(ctx, path)
	return render(stats, err, opts)
}

// MustStat is Stat that panics with the *capacity.QueryError on failure.
func (c *Client) MustStat(path string, opts Options) *models.Report {
	report, err := c.Stat(path, opts)
	if err != nil {
		panic(err)
	}
	return report
}

func render(stats *models.CapacityStats, err error, opts Options) (*models.Report, error) {
	if err != nil {
		return nil, err
	}

	base, ok := opts.Humanize.Base()
	if !ok {
		return &models.Report{Bytes: stats}, nil
	}

	human, err := humanizer.Wrap(stats, nil, base)
	if err != nil {
		return nil, err
	}
	return &models.Report{Human: human}, nil
}

// StatFS calls Client.StatFS on the default client.
func StatFS(args ...string) (*models.CapacityStats, error) {
	return defaultClient.StatFS(args...)
}

// Stat calls Client.Stat on the default client.
func Stat(path string, opts Options) (*models.Report, error) {
	return defaultClient.Stat(path, opts)
}

// MustStat calls Client.MustStat on the default client.
func MustStat(path string, opts Options) *models.Report {
	return defaultClient.MustStat(path, opts)
}
