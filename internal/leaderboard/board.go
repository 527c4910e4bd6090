package leaderboard

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// DefaultCapacity is how many entries the board keeps.
const DefaultCapacity = 50

//go:generate go tool mockgen -destination=./mocks/persister_mock.go -package=mocks . Persister

// Persister stores the board between restarts.
type Persister interface {
	LoadLeaderboard(ctx context.Context) ([]Entry, error)
	SaveLeaderboard(ctx context.Context, entries []Entry) error
}

// Board is the in-memory top-N list. Safe for concurrent use.
type Board struct {
	// persistMu orders saves so the store never ends up behind memory.
	persistMu sync.Mutex
	mu        sync.RWMutex
	entries   []Entry
	capacity  int
	store     Persister
}

// NewBoard creates an empty board. capacity <= 0 uses DefaultCapacity.
// store may be nil.
func NewBoard(capacity int, store Persister) *Board {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Board{capacity: capacity, store: store, entries: []Entry{}}
}

// Load replaces the contents with whatever the persister holds.
func (b *Board) Load(ctx context.Context) error {
	if b.store == nil {
		return nil
	}
	entries, err := b.store.LoadLeaderboard(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = b.entries[:0]
	for _, e := range entries {
		if e.Validate() == nil {
			b.entries = append(b.entries, e)
		}
	}
	b.sortAndTrim()
	return nil
}

// Add inserts e, keeps the board sorted by score (ties keep arrival order)
// and trims it to capacity. It returns the new snapshot. Persistence errors
// are returned alongside the snapshot; the in-memory board is updated
// regardless. Concurrent calls reach the persister in the order their
// snapshots were taken.
func (b *Board) Add(ctx context.Context, e Entry) ([]Entry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	b.persistMu.Lock()
	defer b.persistMu.Unlock()

	b.mu.Lock()
	b.entries = append(b.entries, e)
	b.sortAndTrim()
	snap := slices.Clone(b.entries)
	b.mu.Unlock()

	if b.store != nil {
		if err := b.store.SaveLeaderboard(ctx, snap); err != nil {
			return snap, err
		}
	}
	return snap, nil
}

// Snapshot returns a copy of the current entries.
func (b *Board) Snapshot() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.entries)
}

// Len returns the number of stored entries.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

func (b *Board) sortAndTrim() {
	slices.SortStableFunc(b.entries, func(x, y Entry) int { return cmp.Compare(y.Score, x.Score) })
	if len(b.entries) > b.capacity {
		clear(b.entries[b.capacity:])
		b.entries = b.entries[:b.capacity]
	}
}
