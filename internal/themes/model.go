// SPDX-License-Identifier: MIT
package themes

import (
	"github.com/thatcatcamp/themevars/internal/ordered"
)

// Mode is the light/dark flavour of a theme
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// FamilyValue is a Seed, a SubPalette or an Unsupported value.
type FamilyValue interface {
	familyValue()
}

// Seed is the primary tone of a color family, e.g. "#F5222D".
type Seed string

func (Seed) familyValue() {}

// SubPalette overrides individual shades of a family. Labels are shade indices
// or "DEFAULT"; values are hex colors or raw CSS values.
type SubPalette struct {
	Shades *ordered.Map[string]
}

func (SubPalette) familyValue() {}

// Unsupported holds a family value that is neither a seed nor a
// sub-palette, such as a number. It still replaces an inherited family of the
// same name but produces no variables.
type Unsupported struct {
	Value any
}

func (Unsupported) familyValue() {}

// NewSubPalette builds a SubPalette from label/value pairs.
func NewSubPalette(pairs ...string) SubPalette {
	shades := ordered.New[string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		shades.Set(pairs[i], pairs[i+1])
	}
	return SubPalette{Shades: shades}
}

// Families maps a family name to its value.
type Families = ordered.Map[FamilyValue]

// Vars maps CSS variable names to values for one family.
type Vars = ordered.Map[string]

// ThemeVars maps a family name to its variables.
type ThemeVars = ordered.Map[*Vars]

// Tokens maps a token key (shade index or DEFAULT) to an rgb(var(...)) value.
type Tokens = ordered.Map[string]

// ThemeColors maps a family name to its tokens.
type ThemeColors = ordered.Map[*Tokens]

// ThemeSetting describes one named theme before derivation.
type ThemeSetting struct {
	Name          string
	Mode          Mode
	BaseColor     string
	IsDefault     bool
	PrimaryColors *Families
	Colors        *Families
}

// ResolvedTheme is a ThemeSetting with its derived artifacts attached.
type ResolvedTheme struct {
	ThemeSetting

	ThemeVars   *ThemeVars
	ThemeColors *ThemeColors
	ThemeCSS    string
}

// Override is a partial ThemeSetting. Nil fields are left untouched when the
// override is merged onto an existing theme.
type Override struct {
	Name          string    `validate:"required,themename"`
	Mode          *Mode     `validate:"omitempty,oneof=light dark"`
	BaseColor     *string   `validate:"omitempty,hexcolor"`
	IsDefault     *bool     `validate:"-"`
	PrimaryColors *Families `validate:"-"`
	Colors        *Families `validate:"-"`
}
