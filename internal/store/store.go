// Package store handles SQLite persistence of analysis history.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/zscore/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when no history entry has the requested id.
var ErrNotFound = errors.New("history entry not found")

// Store wraps SQLite access for analysis history.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, logger: logger}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			logger.Debug().Err(cerr).Msg("close after failed migration")
		}
		return nil, err
	}
	logger.Debug().Str("path", path).Msg("history database opened")
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			analyzed_at TEXT NOT NULL,
			text TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			unique_word_count INTEGER NOT NULL,
			lexical_diversity REAL NOT NULL,
			shannon_entropy REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS history_words (
			history_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (history_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_analyzed_at ON history(analyzed_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult stores an analysis and drops the oldest entries beyond limit.
// A limit <= 0 keeps everything.
func (s *Store) InsertResult(ctx context.Context, item model.HistoryItem, limit int) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				s.logger.Debug().Err(rerr).Msg("rollback history insert")
			}
		}
	}()

	r := item.Result
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO history (id, analyzed_at, text, word_count, unique_word_count, lexical_diversity, shannon_entropy)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		r.Timestamp.Format(time.RFC3339Nano),
		r.Text,
		r.WordCount,
		r.UniqueWordCount,
		r.LexicalDiversity,
		r.ShannonEntropy,
	); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	if len(r.UniqueWords) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT INTO history_words (history_id, position, word, count) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				s.logger.Debug().Err(cerr).Msg("close word statement")
			}
		}()
		for i, w := range r.UniqueWords {
			if _, err = stmt.ExecContext(ctx, item.ID, i, w, r.WordFrequency[w]); err != nil {
				return fmt.Errorf("failed to insert history word: %w", err)
			}
		}
	}

	if limit > 0 {
		if err = trim(ctx, tx, limit); err != nil {
			return fmt.Errorf("failed to trim history: %w", err)
		}
	}
	return tx.Commit()
}

func trim(ctx context.Context, tx *sql.Tx, limit int) error {
	const stale = `SELECT id FROM history ORDER BY seq DESC LIMIT -1 OFFSET ?`
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM history_words WHERE history_id IN (`+stale+`)`, limit); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DELETE FROM history WHERE id IN (`+stale+`)`, limit)
	return err
}

// ListHistory returns up to limit entries, newest first. A limit <= 0 returns all.
func (s *Store) ListHistory(ctx context.Context, limit int) ([]model.HistoryItem, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, analyzed_at, text, word_count, unique_word_count, lexical_diversity, shannon_entropy
		 FROM history
		 ORDER BY seq DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer s.closeRows(rows)

	var items []model.HistoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := s.attachWords(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetHistory returns a single entry by id.
func (s *Store) GetHistory(ctx context.Context, id string) (model.HistoryItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, analyzed_at, text, word_count, unique_word_count, lexical_diversity, shannon_entropy
		 FROM history WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HistoryItem{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return model.HistoryItem{}, err
	}
	items := []model.HistoryItem{item}
	if err := s.attachWords(ctx, items); err != nil {
		return model.HistoryItem{}, err
	}
	return items[0], nil
}

// RemoveHistory deletes a single entry by id.
func (s *Store) RemoveHistory(ctx context.Context, id string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				s.logger.Debug().Err(rerr).Msg("rollback history remove")
			}
		}
	}()
	res, err := tx.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		err = fmt.Errorf("%w: %s", ErrNotFound, id)
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM history_words WHERE history_id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// ClearHistory deletes every entry and returns how many were removed.
func (s *Store) ClearHistory(ctx context.Context) (removed int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				s.logger.Debug().Err(rerr).Msg("rollback history clear")
			}
		}
	}()
	res, err := tx.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, err
	}
	if removed, err = res.RowsAffected(); err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM history_words`); err != nil {
		return 0, err
	}
	return removed, tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (model.HistoryItem, error) {
	var item model.HistoryItem
	var analyzedAt string
	r := &item.Result
	if err := sc.Scan(&item.ID, &analyzedAt, &r.Text, &r.WordCount, &r.UniqueWordCount, &r.LexicalDiversity, &r.ShannonEntropy); err != nil {
		return model.HistoryItem{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, analyzedAt)
	if err != nil {
		return model.HistoryItem{}, err
	}
	r.Timestamp = parsed
	r.UniqueWords = []string{}
	r.WordFrequency = map[string]int{}
	return item, nil
}

// attachWords fills UniqueWords and WordFrequency in stored position order.
func (s *Store) attachWords(ctx context.Context, items []model.HistoryItem) error {
	if len(items) == 0 {
		return nil
	}
	index := make(map[string]int, len(items))
	placeholders := make([]string, len(items))
	args := make([]any, len(items))
	for i, item := range items {
		index[item.ID] = i
		placeholders[i] = "?"
		args[i] = item.ID
	}
	query := fmt.Sprintf(`SELECT history_id, word, count
		FROM history_words
		WHERE history_id IN (%s)
		ORDER BY history_id, position`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer s.closeRows(rows)

	for rows.Next() {
		var id, word string
		var count int
		if err := rows.Scan(&id, &word, &count); err != nil {
			return err
		}
		r := &items[index[id]].Result
		r.UniqueWords = append(r.UniqueWords, word)
		r.WordFrequency[word] = count
	}
	return rows.Err()
}

func (s *Store) closeRows(rows *sql.Rows) {
	if cerr := rows.Close(); cerr != nil {
		s.logger.Debug().Err(cerr).Msg("close rows")
	}
}
