// Package ids mints entity identifiers. Identifiers are never derived from the wall clock alone: two identifiers
// minted within the same millisecond still differ, thanks to ULID monotonic entropy.
package ids

import (
	"github.com/oklog/ulid/v2"
	"github.com/silktrader/statuary/pkg/clock"
)

// Generator is an identifier source guaranteed unique across concurrent calls.
type Generator interface {
	New(prefix string) string
}

type ulidGenerator struct {
	clock clock.Clock
}

// NewULID returns a Generator producing `<prefix>-<ULID>` identifiers, timestamped by the given clock.
func NewULID(c clock.Clock) Generator {
	if c == nil {
		c = clock.Real{}
	}
	return &ulidGenerator{clock: c}
}

// New relies on the default entropy source, which is locked and monotonic within a millisecond.
func (g *ulidGenerator) New(prefix string) string {
	id := ulid.MustNewDefault(g.clock.Now())
	if prefix == "" {
		return id.String()
	}
	return prefix + "-" + id.String()
}
