// SPDX-License-Identifier: MIT
package themes

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/thatcatcamp/themevars/internal/ordered"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func modePtr(m Mode) *Mode    { return &m }

func themeNames(p *Preset) []string {
	var names []string
	for _, th := range p.Themes {
		names = append(names, th.Name)
	}
	return names
}

func TestPresetDefaultsLightFirst(t *testing.T) {
	p := PresetThemeVars()

	if !reflect.DeepEqual(themeNames(p), []string{"light", "dark"}) {
		t.Fatalf("themes = %v", themeNames(p))
	}
	if !p.Themes[0].IsDefault || p.Themes[1].IsDefault {
		t.Error("light should be the only default")
	}
	if p.Name != PresetName {
		t.Errorf("name = %s", p.Name)
	}
	if !reflect.DeepEqual(p.Layers.Keys(), []string{LayerThemeVars, LayerDefault}) {
		t.Errorf("layers = %v", p.Layers.Keys())
	}
	if v, _ := p.Layers.Get(LayerDefault); v != 1 {
		t.Errorf("default layer = %d", v)
	}
}

func TestPresetEmptyBaseColorOverride(t *testing.T) {
	p := PresetThemeVars(Override{Name: "light", BaseColor: strPtr("")})

	light, _ := p.Theme("light")
	if light.BaseColor != "" {
		t.Errorf("setting baseColor = %q, want empty", light.BaseColor)
	}
	if !strings.HasPrefix(light.ThemeCSS, "--color-base: ;\n") {
		t.Errorf("light css starts %q", light.ThemeCSS[:40])
	}
	dark, _ := p.Theme("dark")
	if !strings.HasPrefix(dark.ThemeCSS, "--color-base: 20 20 20;\n") {
		t.Errorf("dark css starts %q", dark.ThemeCSS[:40])
	}
}

func TestPresetBaseColorOverride(t *testing.T) {
	p := PresetThemeVars(Override{Name: "light", BaseColor: strPtr("#000000")})

	light, ok := p.Theme("light")
	if !ok {
		t.Fatal("light missing")
	}
	base, _ := light.ThemeVars.Get(BaseFamily)
	if v, _ := base.Get("--color-base"); v != "0 0 0" {
		t.Errorf("--color-base = %q", v)
	}
	dark, _ := p.Theme("dark")
	base, _ = dark.ThemeVars.Get(BaseFamily)
	if v, _ := base.Get("--color-base"); v != "20 20 20" {
		t.Errorf("dark --color-base = %q", v)
	}
}

func TestPresetSubPaletteOverride(t *testing.T) {
	colors := ordered.New[FamilyValue]()
	colors.Set("red", NewSubPalette("DEFAULT", "#123456", "5", "#abcdef"))

	p := PresetThemeVars(Override{Name: "light", Colors: colors})

	light, _ := p.Theme("light")
	if !strings.Contains(light.ThemeCSS, "--color-red: 18 52 86;\n") {
		t.Error("missing overridden DEFAULT")
	}
	if !strings.Contains(light.ThemeCSS, "--color-red-5: 171 205 239;\n") {
		t.Error("missing overridden shade 5")
	}
	if strings.Contains(light.ThemeCSS, "--color-red-0:") {
		t.Error("seed ramp should be replaced by the sub-palette")
	}

	dark, _ := p.Theme("dark")
	if !strings.Contains(dark.ThemeCSS, "--color-red-0:") {
		t.Error("dark theme should keep the seed ramp")
	}
}

func TestPresetOverrideDoesNotLeakBetweenThemes(t *testing.T) {
	primary := ordered.New[FamilyValue]()
	primary.Set("red", Seed("#000000"))

	p := PresetThemeVars(Override{Name: "light", PrimaryColors: primary})
	fresh := PresetThemeVars()

	dark, _ := p.Theme("dark")
	freshDark, _ := fresh.Theme("dark")
	if dark.ThemeCSS != freshDark.ThemeCSS {
		t.Error("overriding light changed dark")
	}
	light, _ := p.Theme("light")
	red, _ := light.ThemeVars.Get("red")
	if v, _ := red.Get("--color-red-5"); v != "0 0 0" {
		t.Errorf("--color-red-5 = %q", v)
	}
	if PresetThemeVars().CSS() != fresh.CSS() {
		t.Error("builds should be deterministic")
	}
}

func TestPresetExtendTheme(t *testing.T) {
	p := PresetThemeVars()
	host := &HostTheme{Colors: ordered.New[*Tokens]()}

	got := p.ExtendTheme(host)

	if got != host {
		t.Error("ExtendTheme should return its argument")
	}
	def := p.DefaultTheme()
	if !reflect.DeepEqual(host.Colors.Keys(), def.ThemeColors.Keys()) {
		t.Errorf("families = %v", host.Colors.Keys())
	}
	for family, tokens := range def.ThemeColors.All() {
		hostTokens, _ := host.Colors.Get(family)
		if !reflect.DeepEqual(hostTokens.Keys(), tokens.Keys()) {
			t.Errorf("%s tokens differ", family)
		}
	}
}

func TestPresetExtendThemeKeepsHostColors(t *testing.T) {
	p := PresetThemeVars()
	white := ordered.New[string]()
	white.Set("DEFAULT", "#fff")
	host := &HostTheme{Colors: ordered.New[*Tokens]()}
	host.Colors.Set("white", white)

	p.ExtendTheme(host)

	if !host.Colors.Has("white") || !host.Colors.Has("red") {
		t.Errorf("families = %v", host.Colors.Keys())
	}
	if p.ExtendTheme(nil).Colors.Len() != 14 {
		t.Error("nil host should get a fresh color table")
	}
}

func TestPresetCSS(t *testing.T) {
	css := PresetThemeVars().CSS()

	if !strings.HasPrefix(css, ":root,\n[data-theme=\"light\"]{\n--color-base: 235 235 235;\n") {
		t.Errorf("unexpected start: %q", css[:60])
	}
	if !strings.Contains(css, "}\n[data-theme=\"dark\"]{\n--color-base: 20 20 20;\n") {
		t.Error("missing dark block")
	}
	if strings.Count(css, ":root") != 1 {
		t.Error(":root should appear once")
	}
	if !strings.HasSuffix(css, "--color-grey: var(--color-grey-4);\n}\n") {
		t.Error("css should close the dark block")
	}
}

func TestPresetDefaultSwap(t *testing.T) {
	p := PresetThemeVars(
		Override{Name: "light", IsDefault: boolPtr(false)},
		Override{Name: "dark", IsDefault: boolPtr(true)},
	)

	if !reflect.DeepEqual(themeNames(p), []string{"dark", "light"}) {
		t.Fatalf("themes = %v", themeNames(p))
	}
	if !strings.HasPrefix(p.CSS(), ":root,\n[data-theme=\"dark\"]{\n") {
		t.Error("dark should be mounted on :root")
	}
}

func TestPresetUnknownThemeIgnoredByDefault(t *testing.T) {
	p := PresetThemeVars(Override{Name: "brand", Mode: modePtr(ModeDark)})

	if !reflect.DeepEqual(themeNames(p), []string{"light", "dark"}) {
		t.Errorf("themes = %v", themeNames(p))
	}
	if _, ok := p.Theme("brand"); ok {
		t.Error("brand should not be added")
	}
}

func TestPresetUnknownThemeAppendedWhenEnabled(t *testing.T) {
	primary := ordered.New[FamilyValue]()
	primary.Set("brand", Seed("#ff0066"))

	p := NewBuilder(WithNewThemes(true)).Build(
		Override{Name: "brand", PrimaryColors: primary},
		Override{Name: "brand", BaseColor: strPtr("#222222")},
	)

	if !reflect.DeepEqual(themeNames(p), []string{"light", "dark", "brand"}) {
		t.Fatalf("themes = %v", themeNames(p))
	}
	brand, _ := p.Theme("brand")
	if brand.Mode != ModeLight {
		t.Errorf("mode = %s", brand.Mode)
	}
	if !brand.ThemeVars.Has("brand") || !brand.ThemeVars.Has("red") {
		t.Errorf("families = %v", brand.ThemeVars.Keys())
	}
	base, _ := brand.ThemeVars.Get(BaseFamily)
	if v, _ := base.Get("--color-base"); v != "34 34 34" {
		t.Errorf("second override should merge onto the new theme, --color-base = %q", v)
	}
	if !strings.Contains(p.CSS(), "[data-theme=\"brand\"]{\n") {
		t.Error("brand block missing from css")
	}
}

func TestPresetTokenKeysOption(t *testing.T) {
	colors := ordered.New[FamilyValue]()
	colors.Set("red", NewSubPalette("5", "#abcdef"))

	p := NewBuilder(WithTokenKeys(TokenKeysBySuffix)).Build(Override{Name: "light", Colors: colors})

	red, _ := p.DefaultTheme().ThemeColors.Get("red")
	if !red.Has("5") || red.Has("0") {
		t.Errorf("keys = %v", red.Keys())
	}
}

func TestPresetWithDefaults(t *testing.T) {
	only := ThemeSetting{Name: "solo", Mode: ModeDark, BaseColor: "#000000", IsDefault: true}

	p := NewBuilder(WithDefaults(only)).Build()

	if !reflect.DeepEqual(themeNames(p), []string{"solo"}) {
		t.Fatalf("themes = %v", themeNames(p))
	}
	if !p.Themes[0].ThemeVars.Has("red") {
		t.Error("built-in seeds should still be generated")
	}
}

func TestDefaultDarkBlockMatchesGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/dark.css")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	css := PresetThemeVars().CSS()
	if !strings.HasSuffix(css, string(want)) {
		i := strings.Index(css, `[data-theme="dark"]`)
		if i < 0 {
			t.Fatal("no dark block in stylesheet")
		}
		got := strings.Split(css[i:], "\n")
		exp := strings.Split(string(want), "\n")
		for n := range exp {
			if n >= len(got) {
				t.Fatalf("dark block ends early at line %d, want %q", n+1, exp[n])
			}
			if got[n] != exp[n] {
				t.Fatalf("dark block differs at line %d: got %q, want %q", n+1, got[n], exp[n])
			}
		}
		t.Fatal("dark block differs from golden")
	}
}
