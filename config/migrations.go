package config

import (
	"fmt"

	"gorm.io/gorm"
	"p9e.in/treeflow/logging"
	"p9e.in/treeflow/models"
)

// AutoMigrate creates missing tables and seeds the order statuses. It is a
// development and test bootstrap; production schemas are owned by the DBA.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.CensusTree{},
		&models.Planting{},
		&models.Maintenance{},
		&models.WorkOrder{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, l := range models.Lookups {
		if err := db.Table(l.Table).AutoMigrate(l.Model); err != nil {
			return fmt.Errorf("auto migrate %s: %w", l.Table, err)
		}
	}

	if err := SeedOrderStatuses(db); err != nil {
		return err
	}
	logging.Info().Msg("schema bootstrap complete")
	return nil
}
