package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"pipelinepro-server/database"
)

// SQL is the remote tabular-record backend. Each record is one row
// holding the full JSON document, read, merged and written whole; the
// table carries no relational integrity, so weak references may dangle
// exactly as they do in the in-memory backend.
type SQL[T any] struct {
	db   *database.DB
	desc Descriptor[T]

	mu     sync.Mutex
	lastID int
}

func NewSQL[T any](db *database.DB, desc Descriptor[T]) *SQL[T] {
	return &SQL[T]{db: db, desc: desc}
}

func (s *SQL[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM `+s.desc.Table+` ORDER BY id`)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, unavailable(err)
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", s.desc.Entity, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return out, nil
}

func (s *SQL[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	var raw []byte
	query := s.db.Rebind(`SELECT data FROM ` + s.desc.Table + ` WHERE id = ?`)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, notFound(s.desc.Entity, id)
	}
	if err != nil {
		return zero, unavailable(err)
	}

	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return zero, fmt.Errorf("decode %s %d: %w", s.desc.Entity, id, err)
	}
	return rec, nil
}

func (s *SQL[T]) Create(ctx context.Context, fields map[string]any) (T, error) {
	var zero T
	rec, err := decode[T](stripID(fields))
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(id) FROM `+s.desc.Table).Scan(&maxID); err != nil {
		return zero, unavailable(err)
	}
	id := int(maxID.Int64) + 1
	if id <= s.lastID {
		// keep ids monotonic within the process even after the
		// highest record was deleted
		id = s.lastID + 1
	}
	s.lastID = id

	s.desc.SetID(&rec, id)
	s.desc.Stamp(&rec, time.Now().UTC())

	raw, err := json.Marshal(rec)
	if err != nil {
		return zero, err
	}
	insert := s.db.Rebind(`INSERT INTO ` + s.desc.Table + ` (id, data) VALUES (?, ?)`)
	if _, err := s.db.ExecContext(ctx, insert, id, string(raw)); err != nil {
		return zero, unavailable(err)
	}
	return rec, nil
}

func (s *SQL[T]) Update(ctx context.Context, id int, patch map[string]any) (T, error) {
	var zero T
	rec, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	merged, err := merge(s.desc, rec, patch)
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return zero, err
	}
	update := s.db.Rebind(`UPDATE ` + s.desc.Table + ` SET data = ? WHERE id = ?`)
	res, err := s.db.ExecContext(ctx, update, string(raw), id)
	if err != nil {
		return zero, unavailable(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return zero, notFound(s.desc.Entity, id)
	}
	return merged, nil
}

func (s *SQL[T]) Delete(ctx context.Context, id int) error {
	query := s.db.Rebind(`DELETE FROM ` + s.desc.Table + ` WHERE id = ?`)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return unavailable(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(s.desc.Entity, id)
	}
	return nil
}
