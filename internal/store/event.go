package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Event is one recorded finger-count transition: the moment the detected
// count changed to a new value, and whether that value reached the device.
type Event struct {
	ID          string
	FingerCount int
	Sent        bool
	DetectedAt  time.Time
}

// EventRepository provides persistence operations for gesture events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Create inserts a new event. An empty ID is replaced with a fresh UUID.
func (r *EventRepository) Create(e *Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.DetectedAt.IsZero() {
		e.DetectedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO gesture_events (id, finger_count, sent, detected_at)
		 VALUES (?, ?, ?, ?)`,
		e.ID, e.FingerCount, e.Sent, e.DetectedAt,
	)
	return err
}

// Recent returns up to limit events, newest first.
func (r *EventRepository) Recent(limit int) ([]Event, error) {
	rows, err := r.db.Query(
		`SELECT id, finger_count, sent, detected_at
		 FROM gesture_events
		 ORDER BY detected_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var sent int
		if err := rows.Scan(&e.ID, &e.FingerCount, &sent, &e.DetectedAt); err != nil {
			return nil, err
		}
		e.Sent = sent != 0
		events = append(events, e)
	}

	return events, rows.Err()
}

// Prune deletes events older than the cutoff and returns how many were removed.
func (r *EventRepository) Prune(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM gesture_events WHERE detected_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
