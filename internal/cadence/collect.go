package cadence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrMissingToken means the listing service marked a page as truncated but
// returned no continuation token, so the listing cannot be resumed.
var ErrMissingToken = errors.New("page marked truncated but no continuation token returned")

// Collector walks a paginated listing and gathers last-modified timestamps.
type Collector struct {
	lister Lister
	log    *zap.Logger
}

// NewCollector creates a collector. A nil logger disables page logging.
func NewCollector(lister Lister, log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{lister: lister, log: log}
}

// Collect lists every object under prefix and returns the last-modified
// timestamps of all objects that carry one, normalized to UTC, in page
// order. Objects without a timestamp are skipped. A malformed timestamp
// aborts the whole run: a value the service cannot format correctly points
// at a data problem worth surfacing, not masking.
func (c *Collector) Collect(ctx context.Context, bucket, prefix string) ([]time.Time, error) {
	var timestamps []time.Time
	var cursor ContinuationToken

	for pageNum := 1; ; pageNum++ {
		page, err := c.lister.ListPage(ctx, bucket, prefix, cursor)
		if err != nil {
			return nil, err
		}

		kept := 0
		for _, obj := range page.Objects {
			if obj.LastModified == "" {
				continue
			}
			ts, err := time.Parse(time.RFC3339Nano, obj.LastModified)
			if err != nil {
				return nil, fmt.Errorf("parse last modified of %q: %w", obj.Key, err)
			}
			timestamps = append(timestamps, ts.UTC())
			kept++
		}

		c.log.Debug("listed page",
			zap.Int("page", pageNum),
			zap.Int("objects", len(page.Objects)),
			zap.Int("timestamps", kept),
		)

		if !page.IsTruncated {
			break
		}
		if page.Next.IsZero() {
			return nil, ErrMissingToken
		}
		cursor = page.Next
	}

	return timestamps, nil
}
