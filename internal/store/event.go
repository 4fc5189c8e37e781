package store

import (
	"database/sql"
	"time"

	"github.com/ayusman/mudra/internal/engine"
)

// EventRecord is a persisted pointer event tied to a session.
type EventRecord struct {
	ID        int64
	SessionID string
	Type      string
	X         int
	Y         int
	At        time.Time
}

// EventRepository provides persistence for pointer events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Record persists an engine event under the given session.
func (r *EventRepository) Record(sessionID string, ev engine.Event) error {
	_, err := r.db.Exec(
		`INSERT INTO events (session_id, type, x, y, at) VALUES (?, ?, ?, ?, ?)`,
		sessionID, string(ev.Type), ev.Position.X, ev.Position.Y, ev.At,
	)
	return err
}

// RecordBatch persists several events in one transaction. Engines commonly
// emit two events for a single frame, so batching keeps writes cheap.
func (r *EventRepository) RecordBatch(sessionID string, events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO events (session_id, type, x, y, at) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(sessionID, string(ev.Type), ev.Position.X, ev.Position.Y, ev.At); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// ListBySession retrieves all events for a session in chronological order.
func (r *EventRepository) ListBySession(sessionID string) ([]*EventRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, type, x, y, at
		 FROM events WHERE session_id = ? ORDER BY at, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*EventRecord
	for rows.Next() {
		ev := &EventRecord{}
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Type, &ev.X, &ev.Y, &ev.At); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// CountBySession returns how many events a session produced.
func (r *EventRepository) CountBySession(sessionID string) (int, error) {
	var n int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM events WHERE session_id = ?`, sessionID,
	).Scan(&n)
	return n, err
}
