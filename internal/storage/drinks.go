// ABOUTME: Drink CRUD operations for the SQLite backend.
// ABOUTME: Supports create, get (with prefix matching), list, and delete.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/tipsy/internal/models"
)

// CreateDrink inserts a new drink event.
func (d *DB) CreateDrink(drink *models.DrinkEvent) error {
	_, err := d.db.Exec(`
		INSERT INTO drinks (id, user_id, category, volume_cl, strength_percent, units, consumed_at, is_template, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		drink.ID.String(), drink.UserID, string(drink.Category),
		drink.VolumeCl, drink.StrengthPercent, drink.Units,
		drink.ConsumedAt.Format(time.RFC3339), boolToInt(drink.IsTemplate),
		drink.Notes, drink.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("create drink: %w", err)
	}
	return nil
}

// GetDrink retrieves a drink by ID or ID prefix.
func (d *DB) GetDrink(idOrPrefix string) (*models.DrinkEvent, error) {
	var row *sql.Row
	if len(idOrPrefix) < 36 {
		row = d.db.QueryRow(drinkSelect+` WHERE id LIKE ? LIMIT 1`, idOrPrefix+"%")
	} else {
		row = d.db.QueryRow(drinkSelect+` WHERE id = ?`, idOrPrefix)
	}
	drink, err := scanDrink(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("drink not found: %s", idOrPrefix)
	}
	return drink, err
}

// ListDrinks retrieves drinks ordered by consumption time descending,
// optionally filtered by user. Templates are excluded unless requested.
// A limit of 0 means no limit.
func (d *DB) ListDrinks(userID *string, includeTemplates bool, limit int) ([]*models.DrinkEvent, error) {
	query := drinkSelect + ` WHERE 1=1`
	var args []any
	if userID != nil {
		query += ` AND user_id = ?`
		args = append(args, *userID)
	}
	if !includeTemplates {
		query += ` AND is_template = 0`
	}
	query += ` ORDER BY consumed_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	defer rows.Close()

	var drinks []*models.DrinkEvent
	for rows.Next() {
		drink, err := scanDrink(rows.Scan)
		if err != nil {
			return nil, err
		}
		drinks = append(drinks, drink)
	}
	return drinks, rows.Err()
}

// DeleteDrink removes a drink by ID or prefix.
func (d *DB) DeleteDrink(idOrPrefix string) error {
	var result sql.Result
	var err error

	if len(idOrPrefix) < 36 {
		result, err = d.db.Exec("DELETE FROM drinks WHERE id LIKE ?", idOrPrefix+"%")
	} else {
		result, err = d.db.Exec("DELETE FROM drinks WHERE id = ?", idOrPrefix)
	}
	if err != nil {
		return fmt.Errorf("delete drink: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("drink not found: %s", idOrPrefix)
	}
	return nil
}

const drinkSelect = `
	SELECT id, user_id, category, volume_cl, strength_percent, units, consumed_at, is_template, notes, created_at
	FROM drinks`

func scanDrink(scan func(dest ...any) error) (*models.DrinkEvent, error) {
	var drink models.DrinkEvent
	var idStr, category, consumedAt, createdAt string
	var isTemplate int

	err := scan(&idStr, &drink.UserID, &category, &drink.VolumeCl,
		&drink.StrengthPercent, &drink.Units, &consumedAt, &isTemplate,
		&drink.Notes, &createdAt)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse drink id: %w", err)
	}
	drink.ID = id
	drink.Category = models.Category(category)
	drink.IsTemplate = isTemplate != 0
	drink.ConsumedAt, _ = time.Parse(time.RFC3339, consumedAt)
	drink.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &drink, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
