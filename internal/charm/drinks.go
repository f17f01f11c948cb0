// ABOUTME: Drink CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/tipsy/internal/models"
)

// CreateDrink stores a new drink event in the KV store.
func (c *Client) CreateDrink(d *models.DrinkEvent) error {
	key := DrinkPrefix + d.ID.String()
	data, err := marshalJSON(d)
	if err != nil {
		return fmt.Errorf("marshal drink: %w", err)
	}
	return c.set(key, data)
}

// GetDrink retrieves a drink by ID or ID prefix.
func (c *Client) GetDrink(idOrPrefix string) (*models.DrinkEvent, error) {
	data, err := c.getByIDPrefix(DrinkPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get drink: %w", err)
	}

	drink, err := unmarshalJSON[models.DrinkEvent](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal drink: %w", err)
	}
	return drink, nil
}

// ListDrinks retrieves drinks with optional filtering by user.
// Results are sorted by ConsumedAt descending (most recent first).
func (c *Client) ListDrinks(userID *string, includeTemplates bool, limit int) ([]*models.DrinkEvent, error) {
	allData, err := c.listByPrefix(DrinkPrefix)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}

	var drinks []*models.DrinkEvent
	for _, data := range allData {
		d, err := unmarshalJSON[models.DrinkEvent](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if userID != nil && d.UserID != *userID {
			continue
		}
		if !includeTemplates && d.IsTemplate {
			continue
		}
		drinks = append(drinks, d)
	}

	sort.Slice(drinks, func(i, j int) bool {
		return drinks[i].ConsumedAt.After(drinks[j].ConsumedAt)
	})

	if limit > 0 && len(drinks) > limit {
		drinks = drinks[:limit]
	}
	return drinks, nil
}

// DeleteDrink removes a drink by ID or prefix.
func (c *Client) DeleteDrink(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(DrinkPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete drink: %w", err)
	}
	return nil
}
