package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	appoutbox "villastay/internal/app/outbox"
)

var ErrWorkerNotConfigured = errors.New("outbox: worker missing dependencies")

// Worker drains the outbox on a fixed interval so events recorded outside a
// request-scoped flush still reach the broker.
type Worker struct {
	Box      appoutbox.Outbox
	Interval time.Duration
	Logger   *slog.Logger
}

func (w *Worker) Run(ctx context.Context) error {
	if w.Box == nil {
		return ErrWorkerNotConfigured
	}
	ticker := time.NewTicker(w.interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.Box.Flush(ctx); err != nil {
				if w.Logger != nil {
					w.Logger.Error("outbox flush failed", "error", err)
				}
			}
		}
	}
}

func (w *Worker) interval() time.Duration {
	if w.Interval <= 0 {
		return 500 * time.Millisecond
	}
	return w.Interval
}
