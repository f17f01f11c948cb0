// ABOUTME: Activity sample operations for Charm KV storage.
// ABOUTME: Samples are append-only; listing filters and sorts client-side.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/tipsy/internal/models"
)

// CreateActivitySample stores a new activity sample in the KV store.
func (c *Client) CreateActivitySample(a *models.ActivitySample) error {
	key := ActivityPrefix + a.ID.String()
	data, err := marshalJSON(a)
	if err != nil {
		return fmt.Errorf("marshal activity sample: %w", err)
	}
	return c.set(key, data)
}

// ListActivitySamples retrieves samples sorted by RecordedAt descending,
// optionally restricted to samples at or after since.
func (c *Client) ListActivitySamples(since *time.Time, limit int) ([]*models.ActivitySample, error) {
	allData, err := c.listByPrefix(ActivityPrefix)
	if err != nil {
		return nil, fmt.Errorf("list activity samples: %w", err)
	}

	var samples []*models.ActivitySample
	for _, data := range allData {
		s, err := unmarshalJSON[models.ActivitySample](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if since != nil && s.RecordedAt.Before(*since) {
			continue
		}
		samples = append(samples, s)
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].RecordedAt.After(samples[j].RecordedAt)
	})

	if limit > 0 && len(samples) > limit {
		samples = samples[:limit]
	}
	return samples, nil
}
