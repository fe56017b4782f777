package config

import (
	"fmt"

	"gorm.io/gorm"
	"p9e.in/treeflow/logging"
	"p9e.in/treeflow/models"
)

// SeedOrderStatuses inserts the default statuses when the table is empty.
func SeedOrderStatuses(db *gorm.DB) error {
	var count int64
	if err := db.Table("estados").Count(&count).Error; err != nil {
		return fmt.Errorf("count estados: %w", err)
	}
	if count > 0 {
		logging.Debug().Int64("count", count).Msg("estados already seeded, skipping")
		return nil
	}
	for _, name := range models.DefaultOrderStatuses {
		if err := db.Table("estados").Create(&models.NamedLookup{Nombre: name}).Error; err != nil {
			return fmt.Errorf("seed estado %q: %w", name, err)
		}
	}
	logging.Info().Int("count", len(models.DefaultOrderStatuses)).Msg("seeded estados")
	return nil
}

// ApproveUser flips the approval flag of the account with the given email.
// It backs the -approve-user command line flag.
func ApproveUser(db *gorm.DB, email string) error {
	result := db.Model(&models.User{}).Where("email = ?", email).Update("aprobado", true)
	if result.Error != nil {
		return fmt.Errorf("approve %s: %w", email, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("approve %s: %w", email, gorm.ErrRecordNotFound)
	}
	logging.Info().Str("email", email).Msg("user approved")
	return nil
}
