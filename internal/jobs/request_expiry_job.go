package jobs

import (
	"context"
	"log/slog"
	"time"

	"freshly/internal/core/application/usecases/commands"
	"freshly/internal/observability"

	"github.com/robfig/cron/v3"
)

// RequestExpiryJob cancels pending requests nobody accepted within the
// configured TTL. Runs once a minute; the cutoff is recomputed on every
// tick. The cancellation uses the same conditional transition as accept,
// so a request a driver grabs mid-sweep is left alone.
type RequestExpiryJob struct {
	handler commands.CancelStaleRequestsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRequestExpiryJob creates a new job for expiring stale pending requests.
func NewRequestExpiryJob(
	handler commands.CancelStaleRequestsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *RequestExpiryJob {
	return &RequestExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "request_expiry_job"),
	}
}

// Start begins the request expiry job to run every minute.
func (j *RequestExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleRequestsCommand(time.Now().UTC().Add(-j.ttl))
		if err != nil {
			j.logger.ErrorContext(ctx, "Request expiry job failed to build command", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Request expiry job failed", "error", err)
			return
		}

		if cancelled > 0 {
			observability.RequestsCancelledTotal.Add(float64(cancelled))
			j.logger.InfoContext(ctx, "Cancelled stale pending requests", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Request expiry job started (running every minute)", "ttl", j.ttl.String())
	return nil
}

// Stop stops the request expiry job.
func (j *RequestExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Request expiry job stopped")
}
