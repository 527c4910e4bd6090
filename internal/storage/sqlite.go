// Package storage provides SQLite-based persistence for player progress,
// settings, local scores and the server-side leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/arbolin/internal/leaderboard"
	"github.com/vovakirdan/arbolin/internal/progress"
	"github.com/vovakirdan/arbolin/internal/rules"
)

// Record keys in the kv table.
const (
	keyProgress = "progress"
	keySettings = "settings"
	keySkin     = "skin"
	keyDeviceID = "device_id"
)

// devicePlayer owns machine-wide records such as the device id.
const devicePlayer = ""

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished endless run kept locally.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// one writer; the TUI and the SSH sessions share this handle
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			player TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player, key)
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS leaderboard_entries (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			date TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) get(player, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE player = ? AND key = ?`, player, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return v, true, nil
}

func (s *Store) put(player, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (player, key, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		player, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// LoadProgress returns the player's progress. A missing or malformed record
// yields progress.Default(); only database failures are reported.
func (s *Store) LoadProgress(player string) (progress.Progress, error) {
	raw, ok, err := s.get(player, keyProgress)
	if err != nil || !ok {
		return progress.Default(), err
	}
	var p progress.Progress
	if json.Unmarshal([]byte(raw), &p) != nil {
		return progress.Default(), nil
	}
	return p.Normalize(), nil
}

// SaveProgress stores p for player.
func (s *Store) SaveProgress(player string, p progress.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("storage: cannot encode progress: %w", err)
	}
	return s.put(player, keyProgress, string(data))
}

// LoadSettings returns the player's settings, falling back to defaults the
// same way LoadProgress does.
func (s *Store) LoadSettings(player string) (progress.Settings, error) {
	raw, ok, err := s.get(player, keySettings)
	if err != nil || !ok {
		return progress.DefaultSettings(), err
	}
	st := progress.DefaultSettings()
	if json.Unmarshal([]byte(raw), &st) != nil {
		return progress.DefaultSettings(), nil
	}
	return st.Normalize(), nil
}

// SaveSettings stores st for player.
func (s *Store) SaveSettings(player string, st progress.Settings) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}
	return s.put(player, keySettings, string(data))
}

// LoadSkin returns the equipped skin id. Unknown ids map to the default.
func (s *Store) LoadSkin(player string) (string, error) {
	raw, ok, err := s.get(player, keySkin)
	if err != nil || !ok {
		return rules.DefaultSkinID, err
	}
	return rules.SkinByID(raw).ID, nil
}

// SaveSkin stores the equipped skin id.
func (s *Store) SaveSkin(player, skinID string) error {
	return s.put(player, keySkin, skinID)
}

// DeviceID returns this database's device id, creating one on first use.
func (s *Store) DeviceID() (string, error) {
	raw, ok, err := s.get(devicePlayer, keyDeviceID)
	if err != nil {
		return "", err
	}
	if ok {
		if id, perr := uuid.Parse(raw); perr == nil {
			return id.String(), nil
		}
	}
	id := uuid.NewString()
	if err := s.put(devicePlayer, keyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}

// SaveScore records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, player, name string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, name, score) VALUES (?, ?, ?, ?)",
		gameID, player, name, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game, best first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, name, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a game.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// LoadLeaderboard implements leaderboard.Persister.
func (s *Store) LoadLeaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, score, date FROM leaderboard_entries ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []leaderboard.Entry
	for rows.Next() {
		var e leaderboard.Entry
		var date string
		if err := rows.Scan(&e.Name, &e.Score, &date); err != nil {
			return nil, fmt.Errorf("storage: cannot scan leaderboard row: %w", err)
		}
		e.Date, _ = time.Parse(time.RFC3339Nano, date)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// SaveLeaderboard implements leaderboard.Persister. It replaces the stored
// board with entries in one transaction.
func (s *Store) SaveLeaderboard(ctx context.Context, entries []leaderboard.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard_entries`); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	for i, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO leaderboard_entries (position, name, score, date) VALUES (?, ?, ?, ?)`,
			i, e.Name, e.Score, e.Date.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("storage: cannot save leaderboard entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit leaderboard: %w", err)
	}
	return nil
}

// Ensure Store implements leaderboard.Persister
var _ leaderboard.Persister = (*Store)(nil)

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
