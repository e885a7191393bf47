package memo

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// Stats is a point-in-time snapshot of a site's registry.
type Stats struct {
	Name     string
	ID       uuid.UUID
	Hits     uint64
	Misses   uint64
	Stores   int // type identities with a store
	Poisoned bool
	Alive    timespan.TimeSpan // from registry initialization to the snapshot
}

// Stats initializes the site if needed. It never panics on a poisoned site.
func (s *Site) Stats() Stats {
	r := s.acquire()

	r.mu.Lock()
	stores := len(r.stores)
	poisoned := r.poisoned != nil
	r.mu.Unlock()

	return Stats{
		Name:     r.name,
		ID:       r.id,
		Hits:     r.hits.Load(),
		Misses:   r.misses.Load(),
		Stores:   stores,
		Poisoned: poisoned,
		Alive:    timespan.BetweenTimes(r.created, time.Now()),
	}
}
