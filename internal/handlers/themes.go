// SPDX-License-Identifier: MIT
package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themevars/internal/themes"
)

// CacheControl is sent with every stylesheet response
var CacheControl = "public, max-age=300"

type themeSummary struct {
	Name      string      `json:"name"`
	Mode      themes.Mode `json:"mode"`
	BaseColor string      `json:"baseColor"`
	IsDefault bool        `json:"isDefault"`
}

// RegisterRoutes mounts the theme endpoints on r.
func RegisterRoutes(r gin.IRouter, p *themes.Preset) {
	r.GET("/health", HealthHandler())
	r.GET("/theme.css", StylesheetHandler(p))
	r.GET("/themes", ListThemesHandler(p))
	r.GET("/themes/:name/vars", ThemeVarsHandler(p))
	r.GET("/themes/:name/css", ThemeCSSHandler(p))
	r.GET("/themes/:name/colors", ThemeColorsHandler(p))
	r.GET("/tokens", TokensHandler(p))
}

// HealthHandler reports liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// StylesheetHandler serves the combined theme stylesheet with an ETag so
// browsers can revalidate cheaply.
func StylesheetHandler(p *themes.Preset) gin.HandlerFunc {
	return func(c *gin.Context) {
		css := p.CSS()
		sum := sha256.Sum256([]byte(css))
		etag := `"` + hex.EncodeToString(sum[:8]) + `"`

		c.Header("ETag", etag)
		c.Header("Cache-Control", CacheControl)
		if c.GetHeader("If-None-Match") == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
	}
}

// ListThemesHandler lists the themes, default first
func ListThemesHandler(p *themes.Preset) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := make([]themeSummary, 0, len(p.Themes))
		for _, t := range p.Themes {
			list = append(list, themeSummary{
				Name:      t.Name,
				Mode:      t.Mode,
				BaseColor: t.BaseColor,
				IsDefault: t.IsDefault,
			})
		}
		c.JSON(http.StatusOK, gin.H{"themes": list})
	}
}

// ThemeVarsHandler returns the CSS variables of one theme grouped by family
func ThemeVarsHandler(p *themes.Preset) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := findTheme(c, p)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, t.ThemeVars)
	}
}

// ThemeCSSHandler returns the variable declarations of one theme
func ThemeCSSHandler(p *themes.Preset) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := findTheme(c, p)
		if !ok {
			return
		}
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(t.ThemeCSS))
	}
}

// ThemeColorsHandler returns the color tokens of one theme
func ThemeColorsHandler(p *themes.Preset) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := findTheme(c, p)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, t.ThemeColors)
	}
}

// TokensHandler returns the color tokens a host theme gets from the preset
func TokensHandler(p *themes.Preset) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := p.ExtendTheme(&themes.HostTheme{})
		c.JSON(http.StatusOK, gin.H{"colors": host.Colors})
	}
}

func findTheme(c *gin.Context, p *themes.Preset) (*themes.ResolvedTheme, bool) {
	t, ok := p.Theme(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "theme not found"})
		return nil, false
	}
	return t, true
}
