package leaderboard_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/vovakirdan/arbolin/internal/leaderboard"
	"github.com/vovakirdan/arbolin/internal/leaderboard/mocks"
)

var day = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func entry(name string, score int) leaderboard.Entry {
	return leaderboard.Entry{Name: name, Score: score, Date: day}
}

func names(entries []leaderboard.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestBoardSortsAndKeepsArrivalOrderOnTies(t *testing.T) {
	b := leaderboard.NewBoard(0, nil)
	ctx := context.Background()

	for _, e := range []leaderboard.Entry{entry("A", 10), entry("B", 20), entry("C", 10), entry("D", 30)} {
		if _, err := b.Add(ctx, e); err != nil {
			t.Fatalf("Add(%v): %v", e, err)
		}
	}

	if got, want := names(b.Snapshot()), []string{"D", "B", "A", "C"}; !slices.Equal(got, want) {
		t.Fatalf("order = %v, expected %v", got, want)
	}
}

func TestBoardTrimsToCapacity(t *testing.T) {
	b := leaderboard.NewBoard(3, nil)
	ctx := context.Background()
	for i := range 10 {
		b.Add(ctx, entry(string(rune('a'+i)), i)) //nolint:errcheck
	}

	snap := b.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d, expected 3", len(snap))
	}
	if snap[0].Score != 9 || snap[2].Score != 7 {
		t.Fatalf("kept %v", snap)
	}
}

func TestBoardRejectsInvalid(t *testing.T) {
	b := leaderboard.NewBoard(0, nil)
	if _, err := b.Add(context.Background(), entry("", 5)); !errors.Is(err, leaderboard.ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatal("invalid entry stored")
	}
}

func TestBoardSnapshotIsACopy(t *testing.T) {
	b := leaderboard.NewBoard(0, nil)
	b.Add(context.Background(), entry("A", 1)) //nolint:errcheck

	snap := b.Snapshot()
	snap[0].Name = "Z"

	if b.Snapshot()[0].Name != "A" {
		t.Fatal("snapshot aliases board storage")
	}
}

func TestBoardPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPersister(ctrl)
	ctx := context.Background()

	store.EXPECT().LoadLeaderboard(gomock.Any()).Return([]leaderboard.Entry{
		entry("old", 5), entry("", 99), entry("older", 7),
	}, nil)
	store.EXPECT().SaveLeaderboard(gomock.Any(), []leaderboard.Entry{
		entry("older", 7), entry("new", 6), entry("old", 5),
	}).Return(nil)

	b := leaderboard.NewBoard(0, store)
	if err := b.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := names(b.Snapshot()); !slices.Equal(got, []string{"older", "old"}) {
		t.Fatalf("loaded %v", got)
	}

	if _, err := b.Add(ctx, entry("new", 6)); err != nil {
		t.Fatalf("Add: %v", err)
	}
}

func TestBoardPersistFailureKeepsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPersister(ctrl)
	boom := errors.New("disk full")
	store.EXPECT().SaveLeaderboard(gomock.Any(), gomock.Any()).Return(boom)

	b := leaderboard.NewBoard(0, store)
	snap, err := b.Add(context.Background(), entry("A", 1))
	if !errors.Is(err, boom) {
		t.Fatalf("expected persist error, got %v", err)
	}
	if len(snap) != 1 || b.Len() != 1 {
		t.Fatalf("entry lost: snap=%v len=%d", snap, b.Len())
	}
}

// slowStore blocks its first save until release is closed and records
// every board it was asked to keep along with the context state.
type slowStore struct {
	mu      sync.Mutex
	saves   [][]leaderboard.Entry
	errs    []error
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newSlowStore() *slowStore {
	return &slowStore{started: make(chan struct{}), release: make(chan struct{})}
}

func (s *slowStore) LoadLeaderboard(context.Context) ([]leaderboard.Entry, error) { return nil, nil }

func (s *slowStore) SaveLeaderboard(ctx context.Context, entries []leaderboard.Entry) error {
	first := false
	s.once.Do(func() { first = true })
	if first {
		close(s.started)
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, slices.Clone(entries))
	s.errs = append(s.errs, ctx.Err())
	return ctx.Err()
}

func (s *slowStore) last() []leaderboard.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saves) == 0 {
		return nil
	}
	return s.saves[len(s.saves)-1]
}

func TestBoardConcurrentAddsPersistNewestBoard(t *testing.T) {
	store := newSlowStore()
	b := leaderboard.NewBoard(0, store)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		b.Add(ctx, entry("A", 1)) //nolint:errcheck
	}()
	<-store.started
	go func() {
		defer wg.Done()
		b.Add(ctx, entry("B", 2)) //nolint:errcheck
	}()
	time.Sleep(20 * time.Millisecond)
	close(store.release)
	wg.Wait()

	if got, want := names(store.last()), names(b.Snapshot()); !slices.Equal(got, want) {
		t.Fatalf("persisted %v, memory %v", got, want)
	}
	if got := names(store.last()); !slices.Equal(got, []string{"B", "A"}) {
		t.Fatalf("persisted %v", got)
	}
}

func TestBoardManyConcurrentAdds(t *testing.T) {
	store := newSlowStore()
	close(store.release)
	b := leaderboard.NewBoard(10, store)

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Add(context.Background(), entry(string(rune('a'+i%26)), i)) //nolint:errcheck
		}()
	}
	wg.Wait()

	if got := store.last(); !slices.Equal(got, b.Snapshot()) {
		t.Fatalf("persisted %v, memory %v", got, b.Snapshot())
	}
}

func TestBoardLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPersister(ctrl)
	store.EXPECT().LoadLeaderboard(gomock.Any()).Return(nil, errors.New("locked"))

	b := leaderboard.NewBoard(0, store)
	if err := b.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if b.Len() != 0 {
		t.Fatal("board not empty")
	}
}

// The board always holds the top scores seen so far, sorted, and never
// more than its capacity.
func TestBoardKeepsTopN(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 20).Draw(t, "capacity")
		scores := rapid.SliceOf(rapid.IntRange(-100, 1000)).Draw(t, "scores")

		b := leaderboard.NewBoard(capacity, nil)
		for i, s := range scores {
			b.Add(context.Background(), entry(string(rune('A'+i%26)), s)) //nolint:errcheck
		}

		snap := b.Snapshot()
		if len(snap) != min(capacity, len(scores)) {
			t.Fatalf("len = %d", len(snap))
		}
		if !slices.IsSortedFunc(snap, func(x, y leaderboard.Entry) int { return y.Score - x.Score }) {
			t.Fatalf("not sorted: %v", snap)
		}

		want := slices.Clone(scores)
		slices.SortFunc(want, func(x, y int) int { return y - x })
		for i, e := range snap {
			if e.Score != want[i] {
				t.Fatalf("position %d = %d, expected %d", i, e.Score, want[i])
			}
		}
	})
}
