// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/thatcatcamp/themevars/internal/ordered"
)

// TokenKeys decides how shade variables are keyed in the token table.
type TokenKeys int

const (
	// TokenKeysByPosition keys shades by their position within the family.
	TokenKeysByPosition TokenKeys = iota
	// TokenKeysBySuffix keys shades by the number at the end of the variable name.
	TokenKeysBySuffix
)

// ParseTokenKeys accepts "position" or "suffix".
func ParseTokenKeys(s string) (TokenKeys, error) {
	switch strings.ToLower(s) {
	case "", "position":
		return TokenKeysByPosition, nil
	case "suffix":
		return TokenKeysBySuffix, nil
	}
	return TokenKeysByPosition, fmt.Errorf("unknown token key mode %q", s)
}

func (k TokenKeys) String() string {
	if k == TokenKeysBySuffix {
		return "suffix"
	}
	return "position"
}

var numericSuffix = regexp.MustCompile(`-(\d+)$`)

// ParseThemeVars derives the utility color tokens from theme variables.
func ParseThemeVars(vars *ThemeVars, keys TokenKeys) *ThemeColors {
	out := ordered.New[*Tokens]()
	for family, familyVars := range vars.All() {
		tokens := ordered.New[string]()
		index := 0
		for name := range familyVars.All() {
			value := "rgb(var(" + name + "))"
			match := numericSuffix.FindStringSubmatch(name)
			switch {
			case match == nil:
				tokens.Set(DefaultLabel, value)
			case keys == TokenKeysBySuffix:
				tokens.Set(match[1], value)
			default:
				tokens.Set(strconv.Itoa(index), value)
			}
			index++
		}
		out.Set(family, tokens)
	}
	return out
}

// ThemeVarsCSS renders one "name: value;" line per variable.
func ThemeVarsCSS(vars *ThemeVars) string {
	var b strings.Builder
	for _, familyVars := range vars.All() {
		for name, value := range familyVars.All() {
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString(";\n")
		}
	}
	return b.String()
}

// GenerateCSS wraps every theme in a [data-theme] block. The default theme
// is also mounted on :root.
func GenerateCSS(themes []ResolvedTheme, defaultName string) string {
	css := ""
	for _, theme := range themes {
		css += `[data-theme="` + theme.Name + `"]{` + "\n"
		if theme.Name == defaultName {
			css = ":root,\n" + css
		}
		css += theme.ThemeCSS
		css += "}\n"
	}
	return css
}
