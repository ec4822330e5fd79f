// SPDX-License-Identifier: MIT

// Package themefile reads and writes theme overrides as YAML. Key order is
// preserved because it decides the order of the generated CSS variables.
//
//	themes:
//	  - name: light
//	    baseColor: "#000000"
//	    colors:
//	      red:
//	        DEFAULT: "#123456"
//	        5: "#abcdef"
package themefile

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themevars/internal/ordered"
	"github.com/thatcatcamp/themevars/internal/themes"
)

// Load reads the overrides in path.
func Load(path string, logger zerolog.Logger) ([]themes.Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	overrides, err := Parse(data, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return overrides, nil
}

// Parse decodes a document holding either a "themes" list or a bare list.
func Parse(data []byte, logger zerolog.Logger) ([]themes.Override, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var list []any
	switch d := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		list = d
	case yaml.MapSlice:
		for _, item := range d {
			if fmt.Sprint(item.Key) != "themes" {
				logger.Warn().Str("key", fmt.Sprint(item.Key)).Msg("unknown top level key ignored")
				continue
			}
			l, ok := item.Value.([]any)
			if !ok && item.Value != nil {
				return nil, fmt.Errorf("themes: expected a list")
			}
			list = l
		}
	default:
		return nil, fmt.Errorf("expected a list of themes")
	}

	overrides := make([]themes.Override, 0, len(list))
	for i, entry := range list {
		m, ok := entry.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("themes[%d]: expected a mapping", i)
		}
		o, err := decodeOverride(m, logger)
		if err != nil {
			return nil, fmt.Errorf("themes[%d]: %w", i, err)
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// ParseOne decodes a single theme mapping.
func ParseOne(data []byte, logger zerolog.Logger) (themes.Override, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return themes.Override{}, fmt.Errorf("invalid yaml: %w", err)
	}
	m, ok := doc.(yaml.MapSlice)
	if !ok {
		return themes.Override{}, fmt.Errorf("expected a theme mapping")
	}
	return decodeOverride(m, logger)
}

func decodeOverride(m yaml.MapSlice, logger zerolog.Logger) (themes.Override, error) {
	var o themes.Override
	for _, item := range m {
		key := fmt.Sprint(item.Key)
		switch key {
		case "name":
			s, ok := item.Value.(string)
			if !ok {
				return o, fmt.Errorf("name: expected a string")
			}
			o.Name = s
		case "mode":
			s, ok := item.Value.(string)
			if !ok {
				return o, fmt.Errorf("mode: expected a string")
			}
			mode := themes.Mode(s)
			o.Mode = &mode
		case "baseColor":
			s, ok := item.Value.(string)
			if !ok {
				return o, fmt.Errorf("baseColor: expected a string")
			}
			o.BaseColor = &s
		case "isDefault":
			b, ok := item.Value.(bool)
			if !ok {
				return o, fmt.Errorf("isDefault: expected a boolean")
			}
			o.IsDefault = &b
		case "primaryColors", "colors":
			families, err := decodeFamilies(key, item.Value, logger)
			if err != nil {
				return o, err
			}
			if key == "colors" {
				o.Colors = families
			} else {
				o.PrimaryColors = families
			}
		default:
			logger.Warn().Str("key", key).Msg("unknown theme key ignored")
		}
	}
	return o, nil
}

func decodeFamilies(field string, value any, logger zerolog.Logger) (*themes.Families, error) {
	families := ordered.New[themes.FamilyValue]()
	if value == nil {
		return families, nil
	}
	m, ok := value.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%s: expected a mapping", field)
	}

	for _, item := range m {
		name := fmt.Sprint(item.Key)
		switch v := item.Value.(type) {
		case string:
			families.Set(name, themes.Seed(v))
		case yaml.MapSlice:
			shades := ordered.New[string]()
			for _, shade := range v {
				label := fmt.Sprint(shade.Key)
				switch sv := shade.Value.(type) {
				case nil:
					shades.Set(label, "")
				case string, uint64, int64, int, float64, bool:
					shades.Set(label, fmt.Sprint(sv))
				default:
					logger.Warn().Str("family", name).Str("label", label).Msg("shade value is not a scalar; skipped")
				}
			}
			families.Set(name, themes.SubPalette{Shades: shades})
		default:
			logger.Warn().Str("field", field).Str("family", name).
				Msgf("family value of type %T is neither a seed nor a sub-palette; the family is emitted empty", v)
			families.Set(name, themes.Unsupported{Value: v})
		}
	}
	return families, nil
}

// Marshal encodes a single override so that ParseOne can read it back.
func Marshal(o themes.Override) ([]byte, error) {
	doc := yaml.MapSlice{{Key: "name", Value: o.Name}}
	if o.Mode != nil {
		doc = append(doc, yaml.MapItem{Key: "mode", Value: string(*o.Mode)})
	}
	if o.BaseColor != nil {
		doc = append(doc, yaml.MapItem{Key: "baseColor", Value: *o.BaseColor})
	}
	if o.IsDefault != nil {
		doc = append(doc, yaml.MapItem{Key: "isDefault", Value: *o.IsDefault})
	}
	if o.PrimaryColors != nil {
		doc = append(doc, yaml.MapItem{Key: "primaryColors", Value: familiesSlice(o.PrimaryColors)})
	}
	if o.Colors != nil {
		doc = append(doc, yaml.MapItem{Key: "colors", Value: familiesSlice(o.Colors)})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme %q: %w", o.Name, err)
	}
	return out, nil
}

func familiesSlice(f *themes.Families) yaml.MapSlice {
	out := yaml.MapSlice{}
	for name, value := range f.All() {
		switch v := value.(type) {
		case themes.Seed:
			out = append(out, yaml.MapItem{Key: name, Value: string(v)})
		case themes.SubPalette:
			shades := yaml.MapSlice{}
			for label, shade := range v.Shades.All() {
				shades = append(shades, yaml.MapItem{Key: label, Value: shade})
			}
			out = append(out, yaml.MapItem{Key: name, Value: shades})
		case themes.Unsupported:
			out = append(out, yaml.MapItem{Key: name, Value: v.Value})
		}
	}
	return out
}
