package main

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/silktrader/statuary/pkg/content"
	"github.com/silktrader/statuary/pkg/content/contenttest"
)

type countingSaver struct {
	saves atomic.Int32
	fail  bool
}

func (c *countingSaver) Save(content.Snapshot) error {
	c.saves.Add(1)
	if c.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestFlushPeriodically(t *testing.T) {
	store, _, _ := contenttest.NewStore()
	logger, _ := test.NewNullLogger()
	saver := &countingSaver{}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		flushPeriodically(ctx, logger, store, saver, 5*time.Millisecond)
	}()

	assert.Eventually(t, func() bool { return saver.saves.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	wg.Wait()
}

func TestFlushFailuresAreLogged(t *testing.T) {
	store, _, _ := contenttest.NewStore()
	logger, hook := test.NewNullLogger()
	saver := &countingSaver{fail: true}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go flushPeriodically(ctx, logger, store, saver, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		entry := hook.LastEntry()
		return entry != nil && entry.Level == logrus.WarnLevel
	}, time.Second, time.Millisecond)
}
