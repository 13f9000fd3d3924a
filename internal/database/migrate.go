package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/fittogether/backend/internal/models"
)

// RunMigrations applies the schema. Auto-migration covers every model,
// including the composite unique index on daily metrics that the
// get-or-create recovery path depends on.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running auto-migration (%s)", db.Dialector.Name())
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DailyMetrics{},
		&models.ActivityEntry{},
	)
}
