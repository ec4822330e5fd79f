// SPDX-License-Identifier: MIT
package themes

// Base colors of the built-in themes
const (
	LightBaseColor = "#ebebeb"
	DarkBaseColor  = "#141414"
)

var seedNames = []string{
	"red", "volcano", "orange", "gold", "yellow", "lime", "green",
	"cyan", "blue", "geekblue", "purple", "magenta", "grey",
}

var seeds = map[string]Seed{
	"red":      "#F5222D",
	"volcano":  "#FA541C",
	"orange":   "#FA8C16",
	"gold":     "#FAAD14",
	"yellow":   "#FADB14",
	"lime":     "#A0D911",
	"green":    "#52C41A",
	"cyan":     "#13C2C2",
	"blue":     "#1677FF",
	"geekblue": "#2F54EB",
	"purple":   "#722ED1",
	"magenta":  "#EB2F96",
	"grey":     "#bfbfbf",
}

// GetSeed returns a built-in seed color by family name
func GetSeed(name string) (Seed, bool) {
	s, ok := seeds[name]
	return s, ok
}

// ListSeeds returns the built-in family names in order
func ListSeeds() []string {
	return append([]string(nil), seedNames...)
}

// BuiltinSeeds returns a fresh copy of the built-in families in order
func BuiltinSeeds() *Families {
	out := newFamilies()
	for _, name := range seedNames {
		out.Set(name, seeds[name])
	}
	return out
}

// DefaultThemes returns the built-in light and dark themes. Each call returns
// new values, so callers may modify them freely.
func DefaultThemes() []ThemeSetting {
	return []ThemeSetting{
		{
			Name:          "light",
			Mode:          ModeLight,
			BaseColor:     LightBaseColor,
			IsDefault:     true,
			PrimaryColors: BuiltinSeeds(),
			Colors:        newFamilies(),
		},
		{
			Name:          "dark",
			Mode:          ModeDark,
			BaseColor:     DarkBaseColor,
			IsDefault:     false,
			PrimaryColors: BuiltinSeeds(),
			Colors:        newFamilies(),
		},
	}
}
