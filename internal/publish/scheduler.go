package publish

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// BuildFunc produces the current stylesheet
type BuildFunc func() (string, error)

// Scheduler republishes the stylesheet on an interval, skipping uploads
// when the CSS has not changed since the last one.
type Scheduler struct {
	Publisher *Publisher
	Build     BuildFunc
	Interval  time.Duration
	logger    zerolog.Logger
	last      string
	published bool
}

// NewScheduler creates a scheduler running every interval
func NewScheduler(p *Publisher, build BuildFunc, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		Publisher: p,
		Build:     build,
		Interval:  interval,
		logger:    logger,
	}
}

// Run publishes immediately and then on every tick until ctx is done.
// Failed runs are logged and retried on the next tick.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error().Err(err).Msg("initial publish failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Error().Err(err).Msg("scheduled publish failed")
			}
		}
	}
}

// RunOnce builds and, when the CSS changed, publishes. It reports whether
// an upload happened.
func (s *Scheduler) RunOnce(ctx context.Context) (bool, error) {
	css, err := s.Build()
	if err != nil {
		return false, err
	}
	if s.published && css == s.last {
		s.logger.Debug().Msg("stylesheet unchanged; skipping upload")
		return false, nil
	}

	if _, err := s.Publisher.Publish(ctx, css); err != nil {
		return false, err
	}
	s.last = css
	s.published = true
	return true, nil
}
