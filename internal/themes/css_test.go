// SPDX-License-Identifier: MIT
package themes

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestParseThemeVarsSeedKeys(t *testing.T) {
	vars := GenerateThemeVars(nil, GenerateOptions{})
	colors := ParseThemeVars(vars, TokenKeysByPosition)

	red, ok := colors.Get("red")
	if !ok {
		t.Fatal("red tokens missing")
	}

	var want []string
	for i := 0; i < 10; i++ {
		want = append(want, strconv.Itoa(i))
	}
	want = append(want, "DEFAULT")
	if !reflect.DeepEqual(red.Keys(), want) {
		t.Fatalf("keys = %v", red.Keys())
	}
	for i := 0; i < 10; i++ {
		v, _ := red.Get(strconv.Itoa(i))
		if v != "rgb(var(--color-red-"+strconv.Itoa(i)+"))" {
			t.Errorf("token %d = %q", i, v)
		}
	}
	if v, _ := red.Get("DEFAULT"); v != "rgb(var(--color-red))" {
		t.Errorf("DEFAULT = %q", v)
	}

	base, _ := colors.Get(BaseFamily)
	if !reflect.DeepEqual(base.Keys(), []string{"DEFAULT"}) {
		t.Errorf("base keys = %v", base.Keys())
	}
}

func TestParseThemeVarsKeysByPosition(t *testing.T) {
	colors := newFamilies()
	colors.Set("red", NewSubPalette("DEFAULT", "#123456", "5", "#abcdef"))
	vars := GenerateThemeVars(colors, GenerateOptions{})

	red, _ := ParseThemeVars(vars, TokenKeysByPosition).Get("red")

	// the shade is keyed by where it appears, not by its number
	if v, _ := red.Get("0"); v != "rgb(var(--color-red-5))" {
		t.Errorf("token 0 = %q", v)
	}
	if red.Has("5") {
		t.Error("position mode should not key by suffix")
	}
	if v, _ := red.Get("DEFAULT"); v != "rgb(var(--color-red))" {
		t.Errorf("DEFAULT = %q", v)
	}
}

func TestParseThemeVarsKeysBySuffix(t *testing.T) {
	colors := newFamilies()
	colors.Set("red", NewSubPalette("DEFAULT", "#123456", "5", "#abcdef"))
	vars := GenerateThemeVars(colors, GenerateOptions{})

	red, _ := ParseThemeVars(vars, TokenKeysBySuffix).Get("red")

	if !reflect.DeepEqual(red.Keys(), []string{"5", "DEFAULT"}) {
		t.Fatalf("keys = %v", red.Keys())
	}
	if v, _ := red.Get("5"); v != "rgb(var(--color-red-5))" {
		t.Errorf("token 5 = %q", v)
	}
}

func TestParseTokenKeys(t *testing.T) {
	for in, want := range map[string]TokenKeys{"": TokenKeysByPosition, "position": TokenKeysByPosition, "SUFFIX": TokenKeysBySuffix} {
		got, err := ParseTokenKeys(in)
		if err != nil || got != want {
			t.Errorf("ParseTokenKeys(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTokenKeys("index"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestThemeVarsCSSOneLinePerVar(t *testing.T) {
	line := regexp.MustCompile(`^--color-[\w-]+: .+;$`)

	for _, mode := range []Mode{ModeLight, ModeDark} {
		vars := GenerateThemeVars(nil, GenerateOptions{Mode: mode})
		css := ThemeVarsCSS(vars)

		total := 0
		for _, family := range vars.All() {
			total += family.Len()
		}

		lines := strings.Split(strings.TrimSuffix(css, "\n"), "\n")
		if len(lines) != total {
			t.Fatalf("%s: %d lines for %d vars", mode, len(lines), total)
		}
		for _, l := range lines {
			if !line.MatchString(l) {
				t.Errorf("%s: malformed line %q", mode, l)
			}
		}
	}
}

func TestThemeVarsCSSOrder(t *testing.T) {
	vars := GenerateThemeVars(nil, GenerateOptions{})
	css := ThemeVarsCSS(vars)

	if !strings.HasPrefix(css, "--color-base: 235 235 235;\n--color-red-0: 255 241 240;\n") {
		t.Errorf("unexpected start of css: %q", css[:80])
	}
	if !strings.HasSuffix(css, "--color-grey: var(--color-grey-4);\n") {
		t.Error("css should end with the grey alias")
	}
}
