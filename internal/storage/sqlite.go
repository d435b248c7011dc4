// Package storage provides SQLite-based persistence for finished sets.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only completed results are recorded; a match in progress is never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

// Store manages the SQLite database connection for set results.
type Store struct {
	db *sql.DB
}

// SetResult represents one finished set.
type SetResult struct {
	ID             int64
	MatchID        uuid.UUID
	GameType       string
	Advantage      bool
	Tiebreak       bool // tiebreak at 6-6 was enabled
	LeftName       string
	RightName      string
	LeftGames      int
	RightGames     int
	WinnerName     string
	WinnerSide     string // "left" or "right"
	TiebreakPlayed bool
	CreatedAt      time.Time
}

// Score formats the games as "6-4".
func (r SetResult) Score() string {
	return fmt.Sprintf("%d-%d", r.LeftGames, r.RightGames)
}

// TeamStats aggregates the recorded sets of one team name.
type TeamStats struct {
	Name      string
	Played    int
	Won       int
	GamesWon  int
	GamesLost int
}

// Lost returns the number of sets lost.
func (t TeamStats) Lost() int {
	return t.Played - t.Won
}

// ResultFromMatch builds the record for a finished match.
// Returns false if the set is still in progress.
func ResultFromMatch(matchID uuid.UUID, m *tennis.Match) (SetResult, bool) {
	winner, ok := m.Winner()
	if !ok {
		return SetResult{}, false
	}

	st := m.State()
	rules := m.Rules()
	left, right := st.Games[tennis.Left], st.Games[tennis.Right]

	return SetResult{
		MatchID:        matchID,
		GameType:       string(m.GameType()),
		Advantage:      !m.NoAdActive(),
		Tiebreak:       rules.TiebreakAtSixAll,
		LeftName:       m.Team(tennis.Left).Name,
		RightName:      m.Team(tennis.Right).Name,
		LeftGames:      left,
		RightGames:     right,
		WinnerName:     winner.Name,
		WinnerSide:     st.Winner.String(),
		TiebreakPlayed: rules.TiebreakAtSixAll && left+right == 13,
	}, true
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_type TEXT NOT NULL,
			advantage INTEGER NOT NULL,
			tiebreak INTEGER NOT NULL,
			left_name TEXT NOT NULL,
			right_name TEXT NOT NULL,
			left_games INTEGER NOT NULL,
			right_games INTEGER NOT NULL,
			winner_name TEXT NOT NULL,
			winner_side TEXT NOT NULL,
			tiebreak_played INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sets_created ON sets(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sets_left_name ON sets(left_name);
		CREATE INDEX IF NOT EXISTS idx_sets_right_name ON sets(right_name);
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

// SaveSetResult records a finished set and returns its row ID.
// Saving the same match again replaces the earlier outcome, which happens
// when a finished set is undone and decided differently.
func (s *Store) SaveSetResult(r SetResult) (int64, error) {
	if r.MatchID == uuid.Nil {
		return 0, errors.New("storage: cannot save set: missing match id")
	}

	var id int64
	err := s.db.QueryRow(
		`INSERT INTO sets (match_id, game_type, advantage, tiebreak, left_name, right_name,
		                   left_games, right_games, winner_name, winner_side, tiebreak_played)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(match_id) DO UPDATE SET
		   left_games = excluded.left_games,
		   right_games = excluded.right_games,
		   winner_name = excluded.winner_name,
		   winner_side = excluded.winner_side,
		   tiebreak_played = excluded.tiebreak_played
		 RETURNING id`,
		r.MatchID.String(),
		r.GameType,
		r.Advantage,
		r.Tiebreak,
		r.LeftName,
		r.RightName,
		r.LeftGames,
		r.RightGames,
		r.WinnerName,
		r.WinnerSide,
		r.TiebreakPlayed,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save set: %w", err)
	}

	return id, nil
}

const selectSet = `SELECT id, match_id, game_type, advantage, tiebreak, left_name, right_name,
       left_games, right_games, winner_name, winner_side, tiebreak_played, created_at
  FROM sets`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSet(row rowScanner) (SetResult, error) {
	var r SetResult
	var matchID string
	var createdAt any

	if err := row.Scan(
		&r.ID,
		&matchID,
		&r.GameType,
		&r.Advantage,
		&r.Tiebreak,
		&r.LeftName,
		&r.RightName,
		&r.LeftGames,
		&r.RightGames,
		&r.WinnerName,
		&r.WinnerSide,
		&r.TiebreakPlayed,
		&createdAt,
	); err != nil {
		return r, err
	}

	id, err := uuid.Parse(matchID)
	if err != nil {
		return r, fmt.Errorf("storage: invalid match id %q: %w", matchID, err)
	}
	r.MatchID = id

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}

	return r, nil
}

// RecentSets retrieves the most recent finished sets, newest first.
func (s *Store) RecentSets(limit int) ([]SetResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		selectSet+` ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sets: %w", err)
	}
	defer rows.Close()

	var results []SetResult
	for rows.Next() {
		r, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// SetByMatchID retrieves the set recorded for a match.
// Returns nil, nil if no set was recorded.
func (s *Store) SetByMatchID(matchID uuid.UUID) (*SetResult, error) {
	r, err := scanSet(s.db.QueryRow(selectSet+` WHERE match_id = ?`, matchID.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query set: %w", err)
	}
	return &r, nil
}

// TeamRecord aggregates every recorded set in which name played on either side.
func (s *Store) TeamRecord(name string) (TeamStats, error) {
	stats := TeamStats{Name: name}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE
		            WHEN left_name = ? AND winner_side = 'left' THEN 1
		            WHEN right_name = ? AND winner_side = 'right' THEN 1
		            ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN left_name = ? THEN left_games ELSE right_games END), 0),
		        COALESCE(SUM(CASE WHEN left_name = ? THEN right_games ELSE left_games END), 0)
		 FROM sets
		 WHERE left_name = ? OR right_name = ?`,
		name, name, name, name, name, name,
	).Scan(&stats.Played, &stats.Won, &stats.GamesWon, &stats.GamesLost)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query team record: %w", err)
	}

	return stats, nil
}

// DeleteSet removes the set recorded for matchID. Deleting a match that
// was never recorded is not an error.
func (s *Store) DeleteSet(matchID uuid.UUID) error {
	if _, err := s.db.Exec("DELETE FROM sets WHERE match_id = ?", matchID.String()); err != nil {
		return fmt.Errorf("storage: cannot delete set: %w", err)
	}
	return nil
}

// ClearResults deletes every recorded set.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM sets"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
