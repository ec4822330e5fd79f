// SPDX-License-Identifier: MIT

// Package colorparse turns a CSS color string into its numeric channels.
package colorparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Color is a parsed CSS color.
type Color struct {
	Type       string   // "rgb" or "hsl"
	Components []string // channel values as written (hex is expanded to decimal)
	Alpha      string   // empty when the color is opaque
}

// String returns the channels separated by spaces, the form used inside
// rgb(var(--x)) references.
func (c Color) String() string {
	return strings.Join(c.Components, " ")
}

var hexColor = regexp.MustCompile(`(?i)^#[0-9a-f]{6}$`)

// IsHex reports whether s is a six digit #rrggbb color.
func IsHex(s string) bool {
	return hexColor.MatchString(s)
}

// Parse parses hex (#rgb, #rgba, #rrggbb, #rrggbbaa) and functional
// rgb()/rgba()/hsl()/hsla() notation.
func Parse(s string) (Color, bool) {
	sc := scanner.New(strings.TrimSpace(s))
	tok := next(sc)

	var (
		c  Color
		ok bool
	)
	switch tok.Type {
	case scanner.TokenHash:
		c, ok = parseHex(tok.Value[1:])
	case scanner.TokenFunction:
		c, ok = parseFunction(sc, strings.ToLower(strings.TrimSuffix(tok.Value, "(")))
	default:
		return Color{}, false
	}
	if !ok {
		return Color{}, false
	}
	if next(sc).Type != scanner.TokenEOF {
		return Color{}, false
	}
	return c, true
}

func parseHex(digits string) (Color, bool) {
	var size int
	switch len(digits) {
	case 3, 4:
		size = 1
	case 6, 8:
		size = 2
	default:
		return Color{}, false
	}

	var channels []uint64
	for i := 0; i < len(digits); i += size {
		part := digits[i : i+size]
		if size == 1 {
			part += part
		}
		n, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return Color{}, false
		}
		channels = append(channels, n)
	}

	c := Color{Type: "rgb"}
	for _, n := range channels[:3] {
		c.Components = append(c.Components, strconv.FormatUint(n, 10))
	}
	if len(channels) == 4 {
		c.Alpha = strconv.FormatFloat(float64(channels[3])/255, 'f', -1, 64)
	}
	return c, true
}

func parseFunction(sc *scanner.Scanner, name string) (Color, bool) {
	var kind string
	switch name {
	case "rgb", "rgba":
		kind = "rgb"
	case "hsl", "hsla":
		kind = "hsl"
	default:
		return Color{}, false
	}

	var (
		values  []string
		alpha   string
		slashed bool
	)
	for {
		tok := next(sc)
		switch tok.Type {
		case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
			if slashed {
				if alpha != "" {
					return Color{}, false
				}
				alpha = tok.Value
				continue
			}
			values = append(values, tok.Value)
		case scanner.TokenChar:
			switch tok.Value {
			case ",":
			case "/":
				if slashed {
					return Color{}, false
				}
				slashed = true
			case ")":
				return finish(kind, values, alpha)
			default:
				return Color{}, false
			}
		default:
			return Color{}, false
		}
	}
}

func finish(kind string, values []string, alpha string) (Color, bool) {
	if alpha == "" && len(values) == 4 {
		alpha = values[3]
		values = values[:3]
	}
	if len(values) != 3 {
		return Color{}, false
	}
	return Color{Type: kind, Components: values, Alpha: alpha}, true
}

// next skips whitespace and comments.
func next(sc *scanner.Scanner) *scanner.Token {
	for {
		tok := sc.Next()
		if tok.Type != scanner.TokenS && tok.Type != scanner.TokenComment {
			return tok
		}
	}
}
