// SPDX-License-Identifier: MIT
package themes

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themevars/internal/colorparse"
	"github.com/thatcatcamp/themevars/internal/ordered"
	"github.com/thatcatcamp/themevars/internal/palette"
)

// BaseFamily holds the --color-base variable of every theme
const BaseFamily = "base"

// DefaultLabel names the semantic alias of a sub-palette
const DefaultLabel = "DEFAULT"

// aliasShade is the ramp index the --color-<family> alias points at
const aliasShade = 4

// PaletteFunc produces the ordered shades of a seed color.
type PaletteFunc func(seed string, opts palette.Options) []string

// ParseFunc parses a CSS color into numeric channels.
type ParseFunc func(s string) (colorparse.Color, bool)

// GenerateOptions select the ramp flavour and background. A nil BaseColor
// means LightBaseColor; an empty one is kept and yields an empty --color-base.
type GenerateOptions struct {
	Mode      Mode
	BaseColor *string
}

// Generator turns color families into CSS variables.
type Generator struct {
	Palette PaletteFunc
	Parse   ParseFunc
	// Builtins sit underneath every family map passed to Generate
	Builtins func() *Families
	Logger   zerolog.Logger
}

// NewGenerator returns a Generator using the bundled palette and parser.
func NewGenerator(logger zerolog.Logger) *Generator {
	return &Generator{
		Palette:  palette.Generate,
		Parse:    colorparse.Parse,
		Builtins: BuiltinSeeds,
		Logger:   logger,
	}
}

// GenerateThemeVars runs the default Generator without logging.
func GenerateThemeVars(colors *Families, opts GenerateOptions) *ThemeVars {
	return NewGenerator(zerolog.Nop()).Generate(colors, opts)
}

// Generate returns the variables of every family plus the base family.
// Seed families get ten shade variables and an alias; sub-palettes get one
// variable per label.
func (g *Generator) Generate(colors *Families, opts GenerateOptions) *ThemeVars {
	if opts.Mode == "" {
		opts.Mode = ModeLight
	}
	baseColor := LightBaseColor
	if opts.BaseColor != nil {
		baseColor = *opts.BaseColor
	}

	families := newFamilies()
	if g.Builtins != nil {
		families = g.Builtins()
	}
	families.Assign(colors)

	out := ordered.New[*Vars]()
	base := ordered.New[string]()
	base.Set("--color-base", g.components(baseColor, BaseFamily))
	out.Set(BaseFamily, base)

	paletteOpts := palette.Options{
		Theme:           palette.ThemeDefault,
		BackgroundColor: baseColor,
	}
	if opts.Mode == ModeDark {
		paletteOpts.Theme = palette.ThemeDark
	}

	for name, value := range families.All() {
		vars := ordered.New[string]()
		switch v := value.(type) {
		case Seed:
			for i, shade := range g.Palette(string(v), paletteOpts) {
				vars.Set(shadeVar(name, strconv.Itoa(i)), g.components(shade, name))
			}
			vars.Set(familyVar(name), "var("+shadeVar(name, strconv.Itoa(aliasShade))+")")
		case SubPalette:
			for label, raw := range v.Shades.All() {
				varName := shadeVar(name, label)
				if label == DefaultLabel {
					varName = familyVar(name)
				}
				resolved := raw
				if colorparse.IsHex(raw) {
					resolved = g.components(raw, name)
				}
				vars.Set(varName, resolved)
			}
		default:
			g.Logger.Debug().Str("family", name).Msg("unsupported family value; no variables generated")
		}
		out.Set(name, vars)
	}
	return out
}

// components returns the space separated channels of color, or "" when the
// color cannot be parsed.
func (g *Generator) components(color, family string) string {
	c, ok := g.Parse(color)
	if !ok {
		g.Logger.Warn().Str("family", family).Str("color", color).Msg("unparsable color; emitting empty value")
		return ""
	}
	return c.String()
}

func familyVar(family string) string {
	return "--color-" + family
}

func shadeVar(family, label string) string {
	return "--color-" + family + "-" + label
}
