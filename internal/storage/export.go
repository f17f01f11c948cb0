// ABOUTME: Export and import functionality for tipsy data.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/tipsy/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for tipsy data.
type ExportData struct {
	Version    string                         `json:"version" yaml:"version"`
	ExportedAt time.Time                      `json:"exported_at" yaml:"exported_at"`
	Tool       string                         `json:"tool" yaml:"tool"`
	Drinks     []*models.DrinkEvent           `json:"drinks" yaml:"drinks"`
	Samples    []*models.ActivitySample       `json:"activity_samples" yaml:"activity_samples"`
	Profiles   map[string]*models.BodyProfile `json:"profiles" yaml:"profiles"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	drinks, err := d.ListDrinks(nil, true, 0)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	samples, err := d.ListActivitySamples(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list activity samples: %w", err)
	}
	profiles, err := d.listProfiles()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "tipsy",
		Drinks:     drinks,
		Samples:    samples,
		Profiles:   profiles,
	}, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, drink := range data.Drinks {
		if err := d.CreateDrink(drink); err != nil {
			return fmt.Errorf("import drink %s: %w", drink.ID, err)
		}
	}
	for _, s := range data.Samples {
		if err := d.CreateActivitySample(s); err != nil {
			return fmt.Errorf("import activity sample %s: %w", s.ID, err)
		}
	}
	for userID, p := range data.Profiles {
		if err := d.SaveProfile(userID, p); err != nil {
			return fmt.Errorf("import profile %s: %w", userID, err)
		}
	}
	return nil
}

// MarshalExport serializes export data in the requested format.
func MarshalExport(data *ExportData, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(data, "", "  ")
	case "yaml":
		return yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// UnmarshalExport parses export data, accepting either JSON or YAML.
func UnmarshalExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err == nil {
		return &data, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse export data: %w", err)
	}
	return &data, nil
}
