// ABOUTME: Repository interface for drink, activity, and profile storage.
// ABOUTME: Defines the contract shared by the SQLite and Charm KV backends.
package storage

import (
	"time"

	"github.com/harperreed/tipsy/internal/models"
)

// Repository defines the storage interface for tipsy data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Drink operations
	CreateDrink(d *models.DrinkEvent) error
	GetDrink(idOrPrefix string) (*models.DrinkEvent, error)
	ListDrinks(userID *string, includeTemplates bool, limit int) ([]*models.DrinkEvent, error)
	DeleteDrink(idOrPrefix string) error

	// Activity operations
	CreateActivitySample(a *models.ActivitySample) error
	ListActivitySamples(since *time.Time, limit int) ([]*models.ActivitySample, error)

	// Profile operations
	SaveProfile(userID string, p *models.BodyProfile) error
	GetProfile(userID string) (*models.BodyProfile, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
