// ABOUTME: Activity sample operations for the SQLite backend.
// ABOUTME: Step counts round-trip as REAL so corrupt collaborator values survive.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/tipsy/internal/models"
)

// CreateActivitySample inserts a new activity sample.
func (d *DB) CreateActivitySample(a *models.ActivitySample) error {
	_, err := d.db.Exec(`
		INSERT INTO activity_samples (id, recorded_at, walking_steps, dancing_steps, total_steps, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.RecordedAt.Format(time.RFC3339),
		a.Steps.Walking, a.Steps.Dancing, a.Steps.Total,
		a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("create activity sample: %w", err)
	}
	return nil
}

// ListActivitySamples retrieves samples ordered by recording time
// descending, optionally restricted to samples at or after since.
// A limit of 0 means no limit.
func (d *DB) ListActivitySamples(since *time.Time, limit int) ([]*models.ActivitySample, error) {
	query := `
		SELECT id, recorded_at, walking_steps, dancing_steps, total_steps, created_at
		FROM activity_samples`
	var args []any
	if since != nil {
		query += ` WHERE recorded_at >= ?`
		args = append(args, since.Format(time.RFC3339))
	}
	query += ` ORDER BY recorded_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity samples: %w", err)
	}
	defer rows.Close()

	var samples []*models.ActivitySample
	for rows.Next() {
		var a models.ActivitySample
		var idStr, recordedAt, createdAt string
		if err := rows.Scan(&idStr, &recordedAt, &a.Steps.Walking,
			&a.Steps.Dancing, &a.Steps.Total, &createdAt); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse sample id: %w", err)
		}
		a.ID = id
		a.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		samples = append(samples, &a)
	}
	return samples, rows.Err()
}
