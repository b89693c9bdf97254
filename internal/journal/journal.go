package journal

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	// StatusFailed rows are requests whose locked amounts stay locked until
	// an operator intervenes.
	StatusFailed Status = "failed"
)

type Entry struct {
	CorrelationID   uint64    `json:"correlation_id"`
	Kind            string    `json:"kind"`
	DerivativeIndex uint16    `json:"derivative_index"`
	Amount          string    `json:"amount"`
	Status          Status    `json:"status"`
	Error           string    `json:"error,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Journal records the lifecycle of remote requests outside the engine state.
type Journal struct {
	db *sql.DB
}

// Open opens the journal database at path, creating the schema if needed.
func Open(ctx context.Context, path string) (*Journal, error) {
	if path == "" {
		return nil, errors.New("journal path is empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	_, _ = db.ExecContext(ctx, "PRAGMA synchronous=NORMAL;")
	_, _ = db.ExecContext(ctx, "PRAGMA busy_timeout=5000;")

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	stmt := `
CREATE TABLE IF NOT EXISTS remote_requests (
  correlation_id INTEGER PRIMARY KEY,
  kind TEXT NOT NULL,
  derivative_index INTEGER NOT NULL,
  amount TEXT NOT NULL,
  status TEXT NOT NULL,
  error TEXT NOT NULL DEFAULT '',
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS remote_requests_status ON remote_requests(status);`
	_, err := db.ExecContext(ctx, stmt)
	return errors.Wrap(err, "failed to create journal schema")
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Submitted records a request handed to the broker. A request that was
// already resolved keeps its outcome; only its details are filled in.
func (j *Journal) Submitted(ctx context.Context, p types.PendingRequest) error {
	_, err := j.db.ExecContext(ctx, `
INSERT INTO remote_requests(correlation_id, kind, derivative_index, amount, status, error, updated_at)
VALUES(?, ?, ?, ?, ?, '', ?)
ON CONFLICT(correlation_id) DO UPDATE SET
  kind = excluded.kind,
  derivative_index = excluded.derivative_index,
  amount = excluded.amount,
  status = CASE WHEN remote_requests.status = ? THEN excluded.status ELSE remote_requests.status END,
  updated_at = CASE WHEN remote_requests.status = ? THEN excluded.updated_at ELSE remote_requests.updated_at END`,
		int64(p.CorrelationID), string(p.Request.Kind()), int(p.Request.DerivativeIndex()),
		types.RequestAmount(p.Request).String(), string(StatusSubmitted), time.Now().UTC(),
		string(StatusSubmitted), string(StatusSubmitted))
	return errors.Wrapf(err, "journal submit %d", p.CorrelationID)
}

// Resolved records the outcome of a request. Outcomes for requests the
// journal never saw are kept with an unknown kind.
func (j *Journal) Resolved(ctx context.Context, id uint64, outcome types.Outcome) error {
	status := StatusConfirmed
	if !outcome.Success {
		status = StatusFailed
	}
	now := time.Now().UTC()
	res, err := j.db.ExecContext(ctx,
		`UPDATE remote_requests SET status = ?, error = ?, updated_at = ? WHERE correlation_id = ?`,
		string(status), outcome.Error, now, int64(id))
	if err != nil {
		return errors.Wrapf(err, "journal resolve %d", id)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	logging.Warn("outcome for unjournaled request", types.Journal, "correlation_id", id, "success", outcome.Success)
	_, err = j.db.ExecContext(ctx, `
INSERT INTO remote_requests(correlation_id, kind, derivative_index, amount, status, error, updated_at)
VALUES(?, 'unknown', 0, '0', ?, ?, ?)`,
		int64(id), string(status), outcome.Error, now)
	return errors.Wrapf(err, "journal resolve %d", id)
}

// List returns entries with status, oldest first. A zero limit means no limit.
func (j *Journal) List(ctx context.Context, status Status, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.QueryContext(ctx, `
SELECT correlation_id, kind, derivative_index, amount, status, error, updated_at
FROM remote_requests WHERE status = ? ORDER BY correlation_id LIMIT ?`, string(status), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e     Entry
			id    int64
			index int
		)
		if err := rows.Scan(&id, &e.Kind, &index, &e.Amount, &e.Status, &e.Error, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.CorrelationID = uint64(id)
		e.DerivativeIndex = uint16(index)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the entry for id.
func (j *Journal) Get(ctx context.Context, id uint64) (Entry, bool, error) {
	var (
		e     Entry
		index int
	)
	err := j.db.QueryRowContext(ctx, `
SELECT kind, derivative_index, amount, status, error, updated_at
FROM remote_requests WHERE correlation_id = ?`, int64(id)).
		Scan(&e.Kind, &index, &e.Amount, &e.Status, &e.Error, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	e.CorrelationID = id
	e.DerivativeIndex = uint16(index)
	return e, true, nil
}
