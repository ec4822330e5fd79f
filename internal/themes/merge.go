// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themevars/internal/ordered"
)

// Node is a loosely typed configuration value: a Scalar or a Mapping.
type Node interface {
	node()
}

// Scalar is a leaf value (string, bool, number or nil).
type Scalar struct {
	Value any
}

func (Scalar) node() {}

// Mapping is an ordered set of named nodes.
type Mapping struct {
	Fields *ordered.Map[Node]
}

func (Mapping) node() {}

// NewMapping returns an empty Mapping.
func NewMapping() Mapping {
	return Mapping{Fields: ordered.New[Node]()}
}

// With sets key and returns m for chaining.
func (m Mapping) With(key string, n Node) Mapping {
	if m.Fields == nil {
		m.Fields = ordered.New[Node]()
	}
	m.Fields.Set(key, n)
	return m
}

// DeepMerge merges source onto target and returns the result. Mappings merge
// key by key; any other source value replaces the target value. A mapping
// merged onto a non-empty scalar leaves the scalar in place. Neither argument
// is modified.
func DeepMerge(target, source Node) Node {
	t, ok := target.(Mapping)
	if !ok {
		return target
	}
	s, ok := source.(Mapping)
	if !ok {
		return target
	}

	out := Mapping{Fields: t.Fields.Clone()}
	for key, value := range s.Fields.All() {
		sub, isMapping := value.(Mapping)
		if !isMapping {
			out.Fields.Set(key, value)
			continue
		}
		existing, _ := out.Fields.Get(key)
		if !truthy(existing) {
			existing = NewMapping()
		}
		out.Fields.Set(key, DeepMerge(existing, sub))
	}
	return out
}

func truthy(n Node) bool {
	switch v := n.(type) {
	case nil:
		return false
	case Mapping:
		return true
	case Scalar:
		switch x := v.Value.(type) {
		case nil:
			return false
		case string:
			return x != ""
		case bool:
			return x
		case int:
			return x != 0
		case int64:
			return x != 0
		case uint64:
			return x != 0
		case float64:
			return x != 0 && !math.IsNaN(x)
		}
		return true
	}
	return false
}

func newFamilies() *Families {
	return ordered.New[FamilyValue]()
}

// Node converts the setting into a document suitable for DeepMerge.
func (ts ThemeSetting) Node() Mapping {
	return NewMapping().
		With("name", Scalar{ts.Name}).
		With("mode", Scalar{string(ts.Mode)}).
		With("baseColor", Scalar{ts.BaseColor}).
		With("isDefault", Scalar{ts.IsDefault}).
		With("primaryColors", familiesNode(ts.PrimaryColors)).
		With("colors", familiesNode(ts.Colors))
}

// Node converts the override into a document holding only the fields it sets.
func (o Override) Node() Mapping {
	m := NewMapping().With("name", Scalar{o.Name})
	if o.Mode != nil {
		m.With("mode", Scalar{string(*o.Mode)})
	}
	if o.BaseColor != nil {
		m.With("baseColor", Scalar{*o.BaseColor})
	}
	if o.IsDefault != nil {
		m.With("isDefault", Scalar{*o.IsDefault})
	}
	if o.PrimaryColors != nil {
		m.With("primaryColors", familiesNode(o.PrimaryColors))
	}
	if o.Colors != nil {
		m.With("colors", familiesNode(o.Colors))
	}
	return m
}

func familiesNode(f *Families) Mapping {
	m := NewMapping()
	for name, value := range f.All() {
		switch v := value.(type) {
		case Seed:
			m.With(name, Scalar{string(v)})
		case SubPalette:
			shades := NewMapping()
			for label, shade := range v.Shades.All() {
				shades.With(label, Scalar{shade})
			}
			m.With(name, shades)
		case Unsupported:
			m.With(name, Scalar{v.Value})
		}
	}
	return m
}

// decodeThemeSetting is the inverse of ThemeSetting.Node. Family values that
// are neither a seed string nor a mapping decode to Unsupported. A missing or
// null baseColor becomes LightBaseColor; an explicit empty string is kept.
func decodeThemeSetting(m Mapping, logger zerolog.Logger) ThemeSetting {
	ts := ThemeSetting{
		Name:      scalarString(m, "name"),
		Mode:      ModeLight,
		BaseColor: LightBaseColor,
	}
	if v, ok := m.Fields.Get("baseColor"); ok {
		if s, ok := v.(Scalar); !ok || s.Value != nil {
			ts.BaseColor = scalarString(m, "baseColor")
		}
	}
	if scalarString(m, "mode") == string(ModeDark) {
		ts.Mode = ModeDark
	}
	if v, ok := m.Fields.Get("isDefault"); ok {
		ts.IsDefault = truthy(v)
	}

	log := logger.With().Str("theme", ts.Name).Logger()
	ts.PrimaryColors = decodeFamilies(m, "primaryColors", log)
	ts.Colors = decodeFamilies(m, "colors", log)
	return ts
}

func scalarString(m Mapping, key string) string {
	v, ok := m.Fields.Get(key)
	if !ok {
		return ""
	}
	s, ok := v.(Scalar)
	if !ok || s.Value == nil {
		return ""
	}
	return fmt.Sprint(s.Value)
}

func decodeFamilies(m Mapping, key string, logger zerolog.Logger) *Families {
	out := newFamilies()
	v, ok := m.Fields.Get(key)
	if !ok {
		return out
	}
	families, ok := v.(Mapping)
	if !ok {
		logger.Warn().Str("field", key).Msg("expected a mapping of color families; ignored")
		return out
	}

	for name, value := range families.Fields.All() {
		switch fv := value.(type) {
		case Scalar:
			seed, isString := fv.Value.(string)
			if !isString {
				logger.Warn().Str("family", name).Msgf("family value %v is not a seed color; no variables generated", fv.Value)
				out.Set(name, Unsupported{Value: fv.Value})
				continue
			}
			out.Set(name, Seed(seed))
		case Mapping:
			shades := ordered.New[string]()
			for label, shade := range fv.Fields.All() {
				s, isScalar := shade.(Scalar)
				if !isScalar {
					logger.Warn().Str("family", name).Str("label", label).Msg("nested shade mapping skipped")
					continue
				}
				if s.Value == nil {
					shades.Set(label, "")
					continue
				}
				shades.Set(label, fmt.Sprint(s.Value))
			}
			out.Set(name, SubPalette{Shades: shades})
		}
	}
	return out
}
