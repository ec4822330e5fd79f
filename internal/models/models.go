// SPDX-License-Identifier: MIT
package models

import (
	"time"
)

// ThemeOverride is a stored partial theme, kept as its YAML document
type ThemeOverride struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:64;uniqueIndex;not null"`
	Position  int    `gorm:"not null;default:0"` // Merge order, lowest first
	Document  string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (ThemeOverride) TableName() string {
	return "theme_overrides"
}
