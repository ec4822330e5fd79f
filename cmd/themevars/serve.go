// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themevars/internal/config"
	"github.com/thatcatcamp/themevars/internal/handlers"
	"github.com/thatcatcamp/themevars/internal/logging"
	"github.com/thatcatcamp/themevars/internal/middleware"
)

var portFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stylesheet and tokens over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := buildPreset()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if cc := config.GetString("publish.cache_control"); cc != "" {
			handlers.CacheControl = cc
		}

		var limiter *middleware.RateLimiter
		if n := config.GetInt("server.rate_limit"); n > 0 {
			limiter = middleware.NewRateLimiter(n, time.Minute)
			go limiter.Sweep(context.Background())
		}

		r := gin.New()
		r.Use(gin.Recovery())
		r.Use(middleware.SecurityHeadersMiddleware())
		r.Use(middleware.CORSMiddleware())
		r.Use(middleware.RateLimitMiddleware(limiter))
		handlers.RegisterRoutes(r, p)

		httpPort := portFlag
		if httpPort == "" {
			httpPort = config.GetString("server.http_port")
		}
		httpAddr := fmt.Sprintf(":%s", httpPort)

		logger := logging.Component("serve")
		logger.Info().
			Str("addr", httpAddr).
			Int("themes", len(p.Themes)).
			Msg("starting HTTP server")
		if err := r.Run(httpAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&portFlag, "port", "p", "", "HTTP port (overrides server.http_port)")
	rootCmd.AddCommand(serveCmd)
}
