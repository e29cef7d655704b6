package workers

import (
	"context"
	"log/slog"
	"time"

	"confgw/contract"
)

// StatsReporter periodically logs a snapshot of the orchestrator's
// registries so an operator can see room and session churn without
// attaching a debugger.
type StatsReporter struct {
	log      *slog.Logger
	source   contract.StatsSource
	interval time.Duration
}

func NewStatsReporter(log *slog.Logger, source contract.StatsSource, interval time.Duration) *StatsReporter {
	return &StatsReporter{log: log, source: source, interval: interval}
}

func (w *StatsReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats := w.source.Snapshot()
			w.log.Info("Registry snapshot",
				"rooms", stats.Rooms,
				"pending", stats.PendingSessions,
				"sessions", stats.TrackedSessions,
				"ledger", stats.LedgerEntries,
			)
		}
	}
}
