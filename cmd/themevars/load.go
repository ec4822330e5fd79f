// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thatcatcamp/themevars/internal/config"
	"github.com/thatcatcamp/themevars/internal/db"
	"github.com/thatcatcamp/themevars/internal/logging"
	"github.com/thatcatcamp/themevars/internal/themefile"
	"github.com/thatcatcamp/themevars/internal/themes"
)

// initSystemDB opens the override database named in the config
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")
	if dbType == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return db.InitDB(dbType, dbPath)
}

// loadOverrides collects the theme file overrides followed by the stored ones
func loadOverrides() ([]themes.Override, error) {
	logger := logging.Component("load")

	var overrides []themes.Override

	path := themeFileFlag
	if path == "" {
		path = config.GetString("themes.file")
	}
	if path != "" {
		fromFile, err := themefile.Load(path, logger)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("file", path).Int("themes", len(fromFile)).Msg("theme file loaded")
		overrides = append(overrides, fromFile...)
	}

	if noDBFlag {
		return overrides, nil
	}
	if db.GetDB() == nil {
		if err := initSystemDB(); err != nil {
			return nil, err
		}
	}
	stored, err := db.ListOverrides(db.GetDB(), logger)
	if err != nil {
		return nil, err
	}
	return append(overrides, stored...), nil
}

// newBuilder returns a theme builder configured from the config file
func newBuilder() (*themes.Builder, error) {
	keys, err := themes.ParseTokenKeys(config.GetString("themes.token_keys"))
	if err != nil {
		return nil, err
	}
	return themes.NewBuilder(
		themes.WithLogger(logging.Component("themes")),
		themes.WithNewThemes(config.GetBool("themes.append_new")),
		themes.WithTokenKeys(keys),
	), nil
}

// buildPreset loads config and overrides and resolves every theme
func buildPreset() (*themes.Preset, error) {
	if err := initConfig(); err != nil {
		return nil, err
	}

	overrides, err := loadOverrides()
	if err != nil {
		return nil, err
	}

	b, err := newBuilder()
	if err != nil {
		return nil, err
	}
	return b.Build(overrides...), nil
}
