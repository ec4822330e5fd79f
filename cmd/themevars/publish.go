// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themevars/internal/config"
	"github.com/thatcatcamp/themevars/internal/logging"
	"github.com/thatcatcamp/themevars/internal/publish"
)

var intervalFlag time.Duration

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the stylesheet to object storage",
	Long: `Build the stylesheet and upload it to the S3 compatible bucket named by
publish.bucket. Credentials come from the standard AWS chain
(environment, shared profiles, SSO, instance roles).`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := buildPreset()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cfg := publish.Config{
			Bucket:       config.GetString("publish.bucket"),
			Key:          config.GetString("publish.key"),
			Region:       config.GetString("publish.region"),
			Endpoint:     config.GetString("publish.endpoint"),
			CacheControl: config.GetString("publish.cache_control"),
		}
		client, err := publish.NewClient(context.Background(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		pub, err := publish.New(client, cfg, logging.Component("publish"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		interval := intervalFlag
		if interval == 0 {
			interval = config.GetDuration("publish.interval")
		}
		if interval > 0 {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			build := func() (string, error) {
				overrides, err := loadOverrides()
				if err != nil {
					return "", err
				}
				b, err := newBuilder()
				if err != nil {
					return "", err
				}
				return b.Build(overrides...).CSS(), nil
			}
			fmt.Printf("Publishing s3://%s/%s every %s\n", cfg.Bucket, cfg.Key, interval)
			publish.NewScheduler(pub, build, interval, logging.Component("publish")).Run(ctx)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		res, err := pub.Publish(ctx, p.CSS())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Published s3://%s/%s (%d bytes)\n", res.Bucket, res.Key, res.Bytes)
	},
}

func init() {
	publishCmd.Flags().DurationVar(&intervalFlag, "every", 0, "keep running and republish on this interval when the CSS changes")
	rootCmd.AddCommand(publishCmd)
}
