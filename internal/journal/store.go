package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Store struct {
	db *DB
}

type DB struct {
	raw *sql.DB
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.raw.ExecContext(ctx, rebindPostgresPlaceholders(query), args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.raw.QueryContext(ctx, rebindPostgresPlaceholders(query), args...)
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.raw.QueryRowContext(ctx, rebindPostgresPlaceholders(query), args...)
}

func (db *DB) Close() error {
	return db.raw.Close()
}

func rebindPostgresPlaceholders(query string) string {
	var out strings.Builder
	out.Grow(len(query) + 16)

	arg := 1
	inSingleQuote := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		if ch == '\'' {
			out.WriteByte(ch)
			if inSingleQuote {
				// two quotes inside a literal are an escaped quote
				if i+1 < len(query) && query[i+1] == '\'' {
					out.WriteByte(query[i+1])
					i++
					continue
				}
				inSingleQuote = false
			} else {
				inSingleQuote = true
			}
			continue
		}

		if ch == '?' && !inSingleQuote {
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(arg))
			arg++
			continue
		}

		out.WriteByte(ch)
	}

	return out.String()
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetConnMaxIdleTime(30 * time.Second)
	db.SetMaxIdleConns(2)
	db.SetMaxOpenConns(8)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &Store{db: &DB{raw: db}}
	if err := store.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS submissions (
			signature TEXT PRIMARY KEY,
			tag TEXT NOT NULL,
			status TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			sent_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_status_time ON submissions(status, updated_at DESC);`,
	}
	for _, stmt := range ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate journal: %w", err)
		}
	}
	return nil
}

// Record upserts a submission. The first sent_at wins; a later post-send
// event never overwrites a terminal status.
func (s *Store) Record(ctx context.Context, sub Submission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (signature, tag, status, message, sent_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(signature) DO UPDATE SET
			tag = EXCLUDED.tag,
			status = CASE
				WHEN EXCLUDED.status = 'sent' THEN submissions.status
				ELSE EXCLUDED.status
			END,
			message = CASE
				WHEN EXCLUDED.status = 'sent' THEN submissions.message
				ELSE EXCLUDED.message
			END,
			updated_at = EXCLUDED.updated_at
	`,
		sub.Signature,
		sub.Tag,
		string(sub.Status),
		sub.Message,
		sub.At.UnixMilli(),
		sub.At.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record submission %s: %w", sub.Signature, err)
	}
	return nil
}

// Lookup reports false when the signature was never journaled.
func (s *Store) Lookup(ctx context.Context, signature string) (Submission, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT signature, tag, status, message, sent_at, updated_at
		FROM submissions WHERE signature = ?
	`, signature)

	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, false, nil
	}
	if err != nil {
		return Submission{}, false, fmt.Errorf("lookup submission %s: %w", signature, err)
	}
	return sub, true, nil
}

// ByStatus lists the newest submissions in one status, e.g. timed out
// transactions that still need an out-of-band check.
func (s *Store) ByStatus(ctx context.Context, status Status, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT signature, tag, status, message, sent_at, updated_at
		FROM submissions WHERE status = ?
		ORDER BY updated_at DESC
		LIMIT ?
	`, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (Submission, error) {
	var (
		sub       Submission
		status    string
		sentAt    int64
		updatedAt int64
	)
	if err := row.Scan(&sub.Signature, &sub.Tag, &status, &sub.Message, &sentAt, &updatedAt); err != nil {
		return Submission{}, err
	}
	sub.Status = Status(status)
	sub.SentAt = time.UnixMilli(sentAt)
	sub.At = time.UnixMilli(updatedAt)
	return sub, nil
}
