// SPDX-License-Identifier: MIT

// Package palette derives a ten step tonal ramp from a seed color.
//
// Shades 0-4 are lighter than the seed, shade 5 is the seed itself and shades
// 6-9 are darker. The dark theme remaps the ramp by mixing selected shades
// onto the page background so that low indices stay close to the background.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme selects the ramp variant.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
)

// DefaultDarkBackground is mixed into dark ramps when no background is given.
const DefaultDarkBackground = "#141414"

// Size is the number of shades Generate returns.
const Size = 10

// Options tune a ramp.
type Options struct {
	Theme           Theme
	BackgroundColor string
}

const (
	hueStep         = 2
	saturationStep  = 0.16
	saturationStep2 = 0.05
	brightnessStep1 = 0.05
	brightnessStep2 = 0.15
	lightColorCount = 5
	darkColorCount  = 4
)

// shade index of the light ramp and the opacity it is mixed with
var darkColorMap = []struct {
	index   int
	opacity float64
}{
	{7, 0.15},
	{6, 0.25},
	{5, 0.3},
	{5, 0.45},
	{5, 0.65},
	{5, 0.85},
	{4, 0.9},
	{3, 0.95},
	{2, 0.97},
	{1, 0.98},
}

// Generate returns Size lowercase #rrggbb shades for seed. A seed that cannot
// be parsed is treated as black.
func Generate(seed string, opts Options) []string {
	base := parseHex(seed)
	h, s, v := base.Hsv()

	patterns := make([]string, 0, Size)
	for i := lightColorCount; i > 0; i-- {
		patterns = append(patterns, toHex(colorful.Hsv(
			hue(h, i, true), saturation(h, s, i, true), value(v, i, true),
		)))
	}
	patterns = append(patterns, toHex(base))
	for i := 1; i <= darkColorCount; i++ {
		patterns = append(patterns, toHex(colorful.Hsv(
			hue(h, i, false), saturation(h, s, i, false), value(v, i, false),
		)))
	}

	if opts.Theme != ThemeDark {
		return patterns
	}

	background := opts.BackgroundColor
	if background == "" {
		background = DefaultDarkBackground
	}
	bg := parseHex(background)
	dark := make([]string, 0, Size)
	for _, m := range darkColorMap {
		dark = append(dark, mix(bg, parseHex(patterns[m.index]), m.opacity))
	}
	return dark
}

// mix moves bg toward c by amount on 0-255 channels, rounding half up.
func mix(bg, c colorful.Color, amount float64) string {
	br, bgG, bb := bg.RGB255()
	cr, cg, cb := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x",
		mixChannel(br, cr, amount), mixChannel(bgG, cg, amount), mixChannel(bb, cb, amount))
}

func mixChannel(from, to uint8, amount float64) int {
	// the explicit conversion keeps the multiply and add from being fused
	scaled := float64((float64(to) - float64(from)) * amount)
	return int(math.Round(scaled + float64(from)))
}

func hue(h float64, i int, light bool) float64 {
	rounded := math.Round(h)
	step := float64(hueStep * i)

	var out float64
	// warm hues rotate the other way
	if rounded >= 60 && rounded <= 240 {
		if light {
			out = rounded - step
		} else {
			out = rounded + step
		}
	} else {
		if light {
			out = rounded + step
		} else {
			out = rounded - step
		}
	}

	if out < 0 {
		out += 360
	} else if out >= 360 {
		out -= 360
	}
	return out
}

func saturation(h, s float64, i int, light bool) float64 {
	// greys keep their saturation
	if h == 0 && s == 0 {
		return s
	}

	var out float64
	switch {
	case light:
		out = s - saturationStep*float64(i)
	case i == darkColorCount:
		out = s + saturationStep
	default:
		out = s + saturationStep2*float64(i)
	}

	if out > 1 {
		out = 1
	}
	if light && i == lightColorCount && out > 0.1 {
		out = 0.1
	}
	if out < 0.06 {
		out = 0.06
	}
	return round2(out)
}

func value(v float64, i int, light bool) float64 {
	var out float64
	if light {
		out = v + brightnessStep1*float64(i)
	} else {
		out = v - brightnessStep2*float64(i)
	}
	if out > 1 {
		out = 1
	}
	return round2(out)
}

func round2(f float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	return r
}

func parseHex(s string) colorful.Color {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func toHex(c colorful.Color) string {
	return c.Clamped().Hex()
}
