package ids

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silktrader/statuary/pkg/clock"
)

func TestNewPrefixesIdentifiers(t *testing.T) {
	g := NewULID(clock.Real{})

	id := g.New("statue")
	require.True(t, strings.HasPrefix(id, "statue-"))

	_, err := ulid.ParseStrict(strings.TrimPrefix(id, "statue-"))
	assert.NoError(t, err)
}

func TestNewWithoutPrefix(t *testing.T) {
	g := NewULID(nil)
	_, err := ulid.ParseStrict(g.New(""))
	assert.NoError(t, err)
}

func TestNewIsUniqueWithinTheSameMillisecond(t *testing.T) {
	frozen := clock.NewFixed(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	g := NewULID(frozen)

	const workers, perWorker = 8, 250
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := g.New("annotation")
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
