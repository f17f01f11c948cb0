// ABOUTME: Body profile persistence for the SQLite backend.
// ABOUTME: Optional fields map to nullable columns; absent profiles return nil.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/tipsy/internal/models"
)

// SaveProfile inserts or replaces the body profile for a user.
func (d *DB) SaveProfile(userID string, p *models.BodyProfile) error {
	if p == nil {
		p = &models.BodyProfile{}
	}
	var gender, level *string
	if p.Gender != nil {
		s := string(*p.Gender)
		gender = &s
	}
	if p.ActivityLevel != nil {
		s := string(*p.ActivityLevel)
		level = &s
	}

	_, err := d.db.Exec(`
		INSERT INTO profiles (user_id, age, gender, height_cm, weight_kg, activity_level, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			age = excluded.age,
			gender = excluded.gender,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			activity_level = excluded.activity_level,
			updated_at = CURRENT_TIMESTAMP`,
		userID, p.Age, gender, p.HeightCm, p.WeightKg, level)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the body profile for a user. A missing profile is
// not an error: it returns (nil, nil) and callers fall back to defaults.
func (d *DB) GetProfile(userID string) (*models.BodyProfile, error) {
	row := d.db.QueryRow(`
		SELECT age, gender, height_cm, weight_kg, activity_level
		FROM profiles WHERE user_id = ?`, userID)

	var p models.BodyProfile
	var gender, level *string
	err := row.Scan(&p.Age, &gender, &p.HeightCm, &p.WeightKg, &level)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if gender != nil {
		g := models.Gender(*gender)
		p.Gender = &g
	}
	if level != nil {
		l := models.ActivityLevel(*level)
		p.ActivityLevel = &l
	}
	return &p, nil
}

// listProfiles returns all stored profiles keyed by user id, for export.
func (d *DB) listProfiles() (map[string]*models.BodyProfile, error) {
	rows, err := d.db.Query(`SELECT user_id FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	profiles := make(map[string]*models.BodyProfile, len(ids))
	for _, id := range ids {
		p, err := d.GetProfile(id)
		if err != nil {
			return nil, err
		}
		profiles[id] = p
	}
	return profiles, nil
}
