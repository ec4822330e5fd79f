// SPDX-License-Identifier: MIT
package themes

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themevars/internal/ordered"
)

// PresetName identifies the preset to the host pipeline
const PresetName = "unocss-preset-theme-vars"

// Layer names; theme variables are emitted before everything else
const (
	LayerThemeVars = "themeVars"
	LayerDefault   = "default"
)

// HostTheme is the part of the host pipeline's theme that ExtendTheme touches.
type HostTheme struct {
	Colors *ThemeColors
}

// Preflight produces CSS for a layer on demand.
type Preflight struct {
	Layer  string
	GetCSS func() string
}

// Preset is the resolved set of themes in the shape the host pipeline expects.
type Preset struct {
	Name       string
	Themes     []ResolvedTheme
	Layers     *ordered.Map[int]
	Preflights []Preflight
}

// DefaultTheme returns the theme mounted on :root.
func (p *Preset) DefaultTheme() *ResolvedTheme {
	if len(p.Themes) == 0 {
		return nil
	}
	return &p.Themes[0]
}

// Theme looks a theme up by name.
func (p *Preset) Theme(name string) (*ResolvedTheme, bool) {
	for i := range p.Themes {
		if p.Themes[i].Name == name {
			return &p.Themes[i], true
		}
	}
	return nil, false
}

// ExtendTheme copies the default theme's color tokens into host.Colors and
// returns host.
func (p *Preset) ExtendTheme(host *HostTheme) *HostTheme {
	if host == nil {
		host = &HostTheme{}
	}
	if host.Colors == nil {
		host.Colors = ordered.New[*Tokens]()
	}
	if def := p.DefaultTheme(); def != nil {
		host.Colors.Assign(def.ThemeColors)
	}
	return host
}

// CSS returns the theme variable stylesheet.
func (p *Preset) CSS() string {
	for _, pf := range p.Preflights {
		if pf.Layer == LayerThemeVars {
			return pf.GetCSS()
		}
	}
	return ""
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithNewThemes lets overrides with an unknown name add a theme. When
// disabled (the default) such overrides are dropped with a warning.
func WithNewThemes(enabled bool) Option {
	return func(b *Builder) {
		b.appendNew = enabled
	}
}

// WithTokenKeys selects how shade tokens are keyed.
func WithTokenKeys(keys TokenKeys) Option {
	return func(b *Builder) {
		b.tokenKeys = keys
	}
}

// WithDefaults replaces the built-in light and dark themes.
func WithDefaults(defaults ...ThemeSetting) Option {
	return func(b *Builder) {
		b.defaults = func() []ThemeSetting { return defaults }
	}
}

// WithGenerator replaces the variable generator.
func WithGenerator(g *Generator) Option {
	return func(b *Builder) {
		b.generator = g
	}
}

// Builder resolves default themes and overrides into a Preset.
type Builder struct {
	defaults  func() []ThemeSetting
	appendNew bool
	tokenKeys TokenKeys
	generator *Generator
	logger    zerolog.Logger
}

// NewBuilder returns a Builder seeded with DefaultThemes.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		defaults: DefaultThemes,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.generator == nil {
		b.generator = NewGenerator(b.logger)
	}
	return b
}

// PresetThemeVars builds the preset from the built-in themes and overrides.
func PresetThemeVars(overrides ...Override) *Preset {
	return NewBuilder().Build(overrides...)
}

// Build merges overrides onto the defaults, derives every theme and returns
// the preset. It never fails; problems are logged.
func (b *Builder) Build(overrides ...Override) *Preset {
	docs := make([]Mapping, 0, 2)
	names := make([]string, 0, 2)
	for _, ts := range b.defaults() {
		docs = append(docs, ts.Node())
		names = append(names, ts.Name)
	}

	for _, o := range overrides {
		if err := Validate(o); err != nil {
			b.logger.Warn().Err(err).Str("theme", o.Name).Msg("theme override has problems")
		}

		if i, found := lookup(names, o.Name); found {
			docs[i] = DeepMerge(docs[i], o.Node()).(Mapping)
			continue
		}
		if !b.appendNew {
			b.logger.Warn().Str("theme", o.Name).Msg("override does not match a known theme; ignored")
			continue
		}
		docs = append(docs, o.Node())
		names = append(names, o.Name)
	}

	settings := make([]ThemeSetting, 0, len(docs))
	for _, doc := range docs {
		settings = append(settings, decodeThemeSetting(doc, b.logger))
	}
	sort.SliceStable(settings, func(i, j int) bool {
		return settings[i].IsDefault && !settings[j].IsDefault
	})
	if n := countDefaults(settings); n != 1 {
		b.logger.Warn().Int("defaults", n).Msg("expected exactly one default theme")
	}

	resolved := make([]ResolvedTheme, 0, len(settings))
	for _, ts := range settings {
		resolved = append(resolved, b.resolve(ts))
	}

	layers := ordered.New[int]()
	layers.Set(LayerThemeVars, 0)
	layers.Set(LayerDefault, 1)

	p := &Preset{
		Name:   PresetName,
		Themes: resolved,
		Layers: layers,
	}
	p.Preflights = []Preflight{{
		Layer: LayerThemeVars,
		GetCSS: sync.OnceValue(func() string {
			name := ""
			if def := p.DefaultTheme(); def != nil {
				name = def.Name
			}
			return GenerateCSS(p.Themes, name)
		}),
	}}

	b.logger.Debug().Int("themes", len(resolved)).Msg("theme preset built")
	return p
}

func (b *Builder) resolve(ts ThemeSetting) ResolvedTheme {
	colors := newFamilies()
	colors.Assign(ts.PrimaryColors)
	colors.Assign(ts.Colors)

	vars := b.generator.Generate(colors, GenerateOptions{
		Mode:      ts.Mode,
		BaseColor: &ts.BaseColor,
	})
	return ResolvedTheme{
		ThemeSetting: ts,
		ThemeVars:    vars,
		ThemeColors:  ParseThemeVars(vars, b.tokenKeys),
		ThemeCSS:     ThemeVarsCSS(vars),
	}
}

func lookup(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

func countDefaults(settings []ThemeSetting) int {
	n := 0
	for _, ts := range settings {
		if ts.IsDefault {
			n++
		}
	}
	return n
}
