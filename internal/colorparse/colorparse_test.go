// SPDX-License-Identifier: MIT
package colorparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in         string
		components string
		alpha      string
	}{
		{"#ebebeb", "235 235 235", ""},
		{"#F5222D", "245 34 45", ""},
		{"#fff", "255 255 255", ""},
		{"#000000", "0 0 0", ""},
		{"#11223380", "17 34 51", "0.5019607843137255"},
		{"#f00f", "255 0 0", "1"},
	}
	for _, tc := range cases {
		c, ok := Parse(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, "rgb", c.Type)
		assert.Equal(t, tc.components, c.String(), tc.in)
		assert.Equal(t, tc.alpha, c.Alpha, tc.in)
	}
}

func TestParseFunctional(t *testing.T) {
	cases := []struct {
		in         string
		kind       string
		components string
		alpha      string
	}{
		{"rgb(1, 2, 3)", "rgb", "1 2 3", ""},
		{"rgb(10 20 30 / 0.5)", "rgb", "10 20 30", "0.5"},
		{"rgba(10,20,30,.25)", "rgb", "10 20 30", ".25"},
		{"hsl(120deg 50% 40%)", "hsl", "120deg 50% 40%", ""},
		{"HSLA(120, 50%, 40%, 30%)", "hsl", "120 50% 40%", "30%"},
	}
	for _, tc := range cases {
		c, ok := Parse(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.kind, c.Type, tc.in)
		assert.Equal(t, tc.components, c.String(), tc.in)
		assert.Equal(t, tc.alpha, c.Alpha, tc.in)
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"red",
		"#12345",
		"#ggg",
		"rgb(1, 2)",
		"rgb(1 2 3",
		"lab(1 2 3)",
		"rgb(1 2 3) extra",
		"var(--color-red-4)",
	} {
		_, ok := Parse(in)
		assert.False(t, ok, in)
	}
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("#abcdef"))
	assert.True(t, IsHex("#ABCDEF"))
	assert.False(t, IsHex("#abc"))
	assert.False(t, IsHex("abcdef"))
	assert.False(t, IsHex("rgb(1 2 3)"))
}
