// SPDX-License-Identifier: MIT
package db

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themevars/internal/models"
	"github.com/thatcatcamp/themevars/internal/themefile"
	"github.com/thatcatcamp/themevars/internal/themes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOverrideNotFound is returned when no stored override has the given name
var ErrOverrideNotFound = errors.New("theme override not found")

// SaveOverride stores o, replacing any stored override with the same name.
// New overrides are merged after the existing ones.
func SaveOverride(database *gorm.DB, o themes.Override) error {
	doc, err := themefile.Marshal(o)
	if err != nil {
		return err
	}

	return database.Transaction(func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&models.ThemeOverride{}).
			Select("COALESCE(MAX(position), -1)").Scan(&maxPos).Error; err != nil {
			return fmt.Errorf("failed to read positions: %w", err)
		}

		record := models.ThemeOverride{
			Name:     o.Name,
			Position: maxPos + 1,
			Document: string(doc),
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).Create(&record).Error
		if err != nil {
			return fmt.Errorf("failed to save override %q: %w", o.Name, err)
		}
		return nil
	})
}

// ListOverrides returns the stored overrides in merge order. Records that no
// longer decode are skipped with a warning.
func ListOverrides(database *gorm.DB, logger zerolog.Logger) ([]themes.Override, error) {
	var records []models.ThemeOverride
	if err := database.Order("position asc, id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	overrides := make([]themes.Override, 0, len(records))
	for _, r := range records {
		o, err := themefile.ParseOne([]byte(r.Document), logger)
		if err != nil {
			logger.Warn().Err(err).Str("theme", r.Name).Msg("stored override is unreadable; skipped")
			continue
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// GetOverride returns the stored override named name.
func GetOverride(database *gorm.DB, name string, logger zerolog.Logger) (themes.Override, error) {
	var record models.ThemeOverride
	err := database.Where("name = ?", name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return themes.Override{}, ErrOverrideNotFound
	}
	if err != nil {
		return themes.Override{}, fmt.Errorf("failed to load override %q: %w", name, err)
	}
	return themefile.ParseOne([]byte(record.Document), logger)
}

// DeleteOverride removes the stored override named name.
func DeleteOverride(database *gorm.DB, name string) error {
	result := database.Where("name = ?", name).Delete(&models.ThemeOverride{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete override %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOverrideNotFound
	}
	return nil
}
