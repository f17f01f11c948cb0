// ABOUTME: Body profile operations and export support for Charm KV storage.
// ABOUTME: Profiles are keyed by user id; export walks all type prefixes.
package charm

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/tipsy/internal/models"
	"github.com/harperreed/tipsy/internal/storage"
)

// Compile-time check that Client implements storage.Repository.
var _ storage.Repository = (*Client)(nil)

// SaveProfile stores the body profile for a user.
func (c *Client) SaveProfile(userID string, p *models.BodyProfile) error {
	if p == nil {
		p = &models.BodyProfile{}
	}
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return c.set(ProfilePrefix+userID, data)
}

// GetProfile retrieves the body profile for a user. A missing profile is
// not an error: it returns (nil, nil) and callers fall back to defaults.
func (c *Client) GetProfile(userID string) (*models.BodyProfile, error) {
	data, err := c.get(ProfilePrefix + userID)
	if err != nil || data == nil {
		return nil, nil
	}
	p, err := unmarshalJSON[models.BodyProfile](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return p, nil
}

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	drinks, err := c.ListDrinks(nil, true, 0)
	if err != nil {
		return nil, err
	}
	samples, err := c.ListActivitySamples(nil, 0)
	if err != nil {
		return nil, err
	}

	profiles := make(map[string]*models.BodyProfile)
	keys, err := c.profileKeys()
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		userID := strings.TrimPrefix(key, ProfilePrefix)
		p, err := c.GetProfile(userID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			profiles[userID] = p
		}
	}

	return &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "tipsy",
		Drinks:     drinks,
		Samples:    samples,
		Profiles:   profiles,
	}, nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, d := range data.Drinks {
		if err := c.CreateDrink(d); err != nil {
			return fmt.Errorf("import drink %s: %w", d.ID, err)
		}
	}
	for _, s := range data.Samples {
		if err := c.CreateActivitySample(s); err != nil {
			return fmt.Errorf("import activity sample %s: %w", s.ID, err)
		}
	}
	for userID, p := range data.Profiles {
		if err := c.SaveProfile(userID, p); err != nil {
			return fmt.Errorf("import profile %s: %w", userID, err)
		}
	}
	return nil
}

// profileKeys lists all profile keys in the KV store.
func (c *Client) profileKeys() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, key := range keys {
		if strings.HasPrefix(string(key), ProfilePrefix) {
			out = append(out, string(key))
		}
	}
	return out, nil
}
