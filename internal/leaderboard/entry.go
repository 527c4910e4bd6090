// Package leaderboard is the shared top-N score board for endless runs: an
// in-memory board, its HTTP and WebSocket surface, and a client.
package leaderboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidEntry is returned for submissions without a name or a numeric
// score.
var ErrInvalidEntry = errors.New("invalid entry")

// Entry is one leaderboard row.
type Entry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// Validate reports whether e can be stored.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("leaderboard: empty name: %w", ErrInvalidEntry)
	}
	return nil
}

// submission mirrors the POST body before validation. Score is kept raw so a
// string or a missing score can be told apart from zero.
type submission struct {
	Name  string          `json:"name"`
	Score json.RawMessage `json:"score"`
	Date  string          `json:"date"`
}

// DecodeEntry parses and validates a POST body. A missing or unparsable
// date is replaced by now.
func DecodeEntry(data []byte, now time.Time) (Entry, error) {
	var s submission
	if err := json.Unmarshal(data, &s); err != nil {
		return Entry{}, fmt.Errorf("leaderboard: decode: %w", errors.Join(ErrInvalidEntry, err))
	}

	var score float64
	if len(s.Score) == 0 || bytes.Equal(s.Score, []byte("null")) || json.Unmarshal(s.Score, &score) != nil {
		return Entry{}, fmt.Errorf("leaderboard: score is not a number: %w", ErrInvalidEntry)
	}

	e := Entry{Name: strings.TrimSpace(s.Name), Score: clampScore(score), Date: now.UTC()}
	if t, err := time.Parse(time.RFC3339Nano, s.Date); err == nil {
		e.Date = t.UTC()
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// clampScore truncates toward zero and saturates at the int range, so any
// JSON number is accepted.
func clampScore(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(f)
}
