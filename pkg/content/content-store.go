/*
Package content holds the Content Store: every collection served by the API, kept in memory and reachable only
through the Store's methods.

All collections share a single lock, so that compound writes (a child insert and its statue counter, a vote's
read-modify-write, a cascading delete) are atomic with respect to one another. Records handed out are copies.

Lookups by id follow the comma-ok idiom: a missing record yields false, never an error.
*/
package content

import (
	"sync"

	"github.com/silktrader/statuary/pkg/clock"
	"github.com/silktrader/statuary/pkg/ids"
)

// Config is used to provide dependencies to the New function. Zero values select production defaults.
type Config struct {
	Clock clock.Clock
	IDs   ids.Generator
}

type Store struct {
	mu    sync.RWMutex
	clock clock.Clock
	ids   ids.Generator

	users       []User
	statues     []Statue
	annotations []Annotation
	comments    []Comment
	tours       []PremiumTour
	sponsors    []SponsorExhibit
	purchases   []Purchase
}

// New returns an empty store.
func New(cfg Config) *Store {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	if cfg.IDs == nil {
		cfg.IDs = ids.NewULID(cfg.Clock)
	}
	return &Store{clock: cfg.Clock, ids: cfg.IDs}
}

// Snapshot is a detached copy of every collection, in insertion order.
type Snapshot struct {
	Users       []User
	Statues     []Statue
	Annotations []Annotation
	Comments    []Comment
	Tours       []PremiumTour
	Sponsors    []SponsorExhibit
	Purchases   []Purchase
}

// Snapshot copies the store's contents; later writes to either side don't leak into the other.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Users:       append([]User(nil), s.users...),
		Statues:     append([]Statue(nil), s.statues...),
		Annotations: append([]Annotation(nil), s.annotations...),
		Comments:    cloneComments(s.comments),
		Tours:       cloneTours(s.tours),
		Sponsors:    append([]SponsorExhibit(nil), s.sponsors...),
		Purchases:   append([]Purchase(nil), s.purchases...),
	}
}

// Restore replaces the store's contents with copies of the snapshot's. Statue counters are recomputed from the
// restored annotations and comments rather than trusted.
func (s *Store) Restore(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append([]User(nil), snapshot.Users...)
	s.statues = append([]Statue(nil), snapshot.Statues...)
	s.annotations = append([]Annotation(nil), snapshot.Annotations...)
	s.comments = cloneComments(snapshot.Comments)
	s.tours = cloneTours(snapshot.Tours)
	s.sponsors = append([]SponsorExhibit(nil), snapshot.Sponsors...)
	s.purchases = append([]Purchase(nil), snapshot.Purchases...)

	for i := range s.statues {
		s.statues[i].AnnotationCount = 0
		s.statues[i].CommentCount = 0
	}
	for _, a := range s.annotations {
		if i := s.statueIndex(a.StatueId); i >= 0 {
			s.statues[i].AnnotationCount++
		}
	}
	for _, c := range s.comments {
		if i := s.statueIndex(c.StatueId); i >= 0 {
			s.statues[i].CommentCount++
		}
	}
}

// indexOf performs a linear lookup, returning -1 when nothing matches.
func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

// filter returns the matching items in insertion order; the result never aliases the source.
func filter[T any](items []T, match func(T) bool) []T {
	var matched = make([]T, 0)
	for _, item := range items {
		if match(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

/*
paginate copies a window of an insertion-ordered sequence:

  - a negative offset counts as zero
  - an offset at or past the end yields an empty slice
  - a non-positive limit yields an empty slice
*/
func paginate[T any](items []T, page Page) []T {
	var offset = page.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || page.Limit <= 0 {
		return make([]T, 0)
	}
	var end = len(items)
	if page.Limit < end-offset {
		end = offset + page.Limit
	}
	return append(make([]T, 0, end-offset), items[offset:end]...)
}

// decrement lowers a denormalised counter, never below zero.
func decrement(counter *int) {
	if *counter > 0 {
		*counter--
	}
}
