package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outcome values stored with a session.
const (
	OutcomeRecording = "recording"
	OutcomeGameOver  = "game_over"
	OutcomeQuit      = "quit"
)

// Session describes one recorded run. Together with its inputs it is enough
// to re-run the simulation deterministically.
type Session struct {
	ID         string
	GameID     string
	MapID      string
	Seed       int64
	TickRate   int
	Difficulty string
	Config     string // YAML snapshot of the configuration used
	Score      int
	Level      int
	Ticks      int
	Outcome    string
	CreatedAt  time.Time
}

// Result is the final state written when a recording ends.
type Result struct {
	Score   int
	Level   int
	Ticks   int
	Outcome string
}

// InputRecord holds the actions pressed on one tick.
type InputRecord struct {
	Tick    int
	Actions []string
}

// CreateSession inserts a new session. An empty ID is replaced with a fresh UUID.
// Returns the session ID.
func (s *Store) CreateSession(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.Difficulty == "" {
		sess.Difficulty = "normal"
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, game_id, map_id, seed, tick_rate, difficulty, config, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.GameID, sess.MapID, sess.Seed, sess.TickRate, sess.Difficulty, sess.Config, OutcomeRecording,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot create session: %w", err)
	}
	return sess.ID, nil
}

// AppendInputs stores a batch of input records in one transaction.
func (s *Store) AppendInputs(sessionID string, records []InputRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO inputs (session_id, tick, actions) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(sessionID, r.Tick, strings.Join(r.Actions, ",")); err != nil {
			return fmt.Errorf("storage: cannot save input for tick %d: %w", r.Tick, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit inputs: %w", err)
	}
	return nil
}

// FinishSession records the final result of a session.
func (s *Store) FinishSession(sessionID string, res Result) error {
	out, err := s.db.Exec(
		"UPDATE sessions SET score = ?, level = ?, ticks = ?, outcome = ? WHERE id = ?",
		res.Score, res.Level, res.Ticks, res.Outcome, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}
	if n, _ := out.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}

const sessionColumns = `id, game_id, map_id, seed, tick_rate, difficulty, config,
	score, level, ticks, outcome, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var sess Session
	var createdAt any
	err := row.Scan(
		&sess.ID,
		&sess.GameID,
		&sess.MapID,
		&sess.Seed,
		&sess.TickRate,
		&sess.Difficulty,
		&sess.Config,
		&sess.Score,
		&sess.Level,
		&sess.Ticks,
		&sess.Outcome,
		&createdAt,
	)
	sess.CreatedAt = parseTime(createdAt)
	return sess, err
}

// SessionByID retrieves a session by full ID or by a unique ID prefix.
func (s *Store) SessionByID(id string) (*Session, error) {
	rows, err := s.db.Query(
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ? OR id LIKE ? ORDER BY id LIMIT 2`,
		id, id+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	defer rows.Close()

	var found []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if sess.ID == id {
			return &sess, nil
		}
		found = append(found, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("storage: ambiguous session prefix %q", id)
	}
}

// RecentSessions lists the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+` FROM sessions ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Inputs returns every input record of a session ordered by tick.
func (s *Store) Inputs(sessionID string) ([]InputRecord, error) {
	rows, err := s.db.Query(
		"SELECT tick, actions FROM inputs WHERE session_id = ? ORDER BY tick",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	var out []InputRecord
	for rows.Next() {
		var r InputRecord
		var actions string
		if err := rows.Scan(&r.Tick, &actions); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if actions != "" {
			r.Actions = strings.Split(actions, ",")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteSession removes a session and its inputs.
func (s *Store) DeleteSession(sessionID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM inputs WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("storage: cannot delete inputs: %w", err)
	}
	res, err := tx.Exec("DELETE FROM sessions WHERE id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return tx.Commit()
}

// IsNotFound reports whether err means a missing session.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, sql.ErrNoRows)
}
