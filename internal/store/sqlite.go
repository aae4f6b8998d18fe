package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faideww/monkey-menu/internal/monkey"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the journal in a private in-memory database. Nothing is
// written to disk, so the journal ends with the process.
type SQLiteStore struct {
	db         *sql.DB
	sessionId  string
	insertStmt *sql.Stmt
	topStmt    *sql.Stmt
	countStmt  *sql.Stmt
}

func OpenSQLite(ctx context.Context) (*SQLiteStore, error) {
	sessionId := uuid.NewString()

	// DSN notes:
	// - mode=memory&cache=shared names the database so every pooled
	//   connection sees the same tables; it is dropped when the last
	//   connection closes
	// - _pragma=busy_timeout sets a lock wait
	dsn := fmt.Sprintf("file:journal-%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", sessionId)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// a single connection that never expires keeps the in-memory database alive
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	ins, err := db.PrepareContext(ctx, `
		INSERT INTO picks (session_id, species, picked_at)
		VALUES (?,?,?)
	`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	top, err := db.PrepareContext(ctx, `
		SELECT species, COUNT(*) AS n
		FROM picks
		WHERE session_id = ?
		GROUP BY species
		ORDER BY n DESC, MIN(id) ASC
		LIMIT ?
	`)
	if err != nil {
		_ = ins.Close()
		_ = db.Close()
		return nil, err
	}

	count, err := db.PrepareContext(ctx, `
		SELECT COUNT(*) FROM picks WHERE session_id = ?
	`)
	if err != nil {
		_ = ins.Close()
		_ = top.Close()
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{
		db:         db,
		sessionId:  sessionId,
		insertStmt: ins,
		topStmt:    top,
		countStmt:  count,
	}, nil
}

func (s *SQLiteStore) SessionId() string { return s.sessionId }

func (s *SQLiteStore) Close() error {
	if s.insertStmt != nil {
		_ = s.insertStmt.Close()
	}
	if s.topStmt != nil {
		_ = s.topStmt.Close()
	}
	if s.countStmt != nil {
		_ = s.countStmt.Close()
	}

	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS picks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  TEXT    NOT NULL,
			species     TEXT    NOT NULL,
			picked_at   INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_picks_session
			ON picks (session_id, species);
	`)
	return err
}

func (s *SQLiteStore) Add(ctx context.Context, p monkey.Pick) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}
	if p.Species == "" {
		return errors.New("pick has no species")
	}

	if p.PickedAt.IsZero() {
		p.PickedAt = time.Now()
	}
	if p.SessionId == "" {
		p.SessionId = s.sessionId
	}

	_, err := s.insertStmt.ExecContext(ctx,
		p.SessionId,
		p.Species,
		p.PickedAt.UnixMilli(),
	)
	return err
}

// TopPicked returns the most picked species of this session, most picked first.
// Ties go to the species picked first.
func (s *SQLiteStore) TopPicked(ctx context.Context, limit int) ([]monkey.PickCount, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	if limit <= 0 {
		limit = 3
	}

	rows, err := s.topStmt.QueryContext(ctx, s.sessionId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]monkey.PickCount, 0, limit)
	for rows.Next() {
		var pc monkey.PickCount
		if err := rows.Scan(&pc.Species, &pc.Count); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}

	return out, rows.Err()
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("store not initialized")
	}

	var n int
	if err := s.countStmt.QueryRowContext(ctx, s.sessionId).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
