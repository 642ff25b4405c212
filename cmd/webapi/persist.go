package main

import (
	"context"
	"time"

	"github.com/silktrader/statuary/pkg/content"
	"github.com/sirupsen/logrus"
)

type snapshotter interface {
	Snapshot() content.Snapshot
}

type snapshotSaver interface {
	Save(snapshot content.Snapshot) error
}

/*
flushPeriodically saves a snapshot of the store at every tick, until the context is cancelled. Failures are
logged and retried at the next tick; contents are never lost as long as the process runs.
*/
func flushPeriodically(ctx context.Context, logger logrus.FieldLogger, store snapshotter, storage snapshotSaver, interval time.Duration) {
	var ticker = time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := storage.Save(store.Snapshot()); err != nil {
				logger.WithError(err).Warning("error while flushing contents")
			}
		}
	}
}
