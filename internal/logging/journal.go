package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"detective/internal/game/events"
)

// JournalEntry is a stored session event.
type JournalEntry struct {
	ID        int               `json:"id"`
	SessionID string            `json:"session_id"`
	EventID   string            `json:"event_id"`
	Type      events.EventType  `json:"type"`
	Room      string            `json:"room"`
	Detail    string            `json:"detail"`
	Meta      map[string]string `json:"meta"`
	Timestamp time.Time         `json:"timestamp"`
}

// Journal appends every session event to a sqlite database. It is an audit
// trail only; games are never restored from it.
type Journal struct {
	db        *sql.DB
	sessionID string
}

func NewJournal(path, sessionID string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// :memory: databases live per connection.
	db.SetMaxOpenConns(1)

	journal := &Journal{db: db, sessionID: sessionID}
	if err := journal.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return journal, nil
}

func (j *Journal) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS session_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		event_id TEXT NOT NULL,
		type TEXT NOT NULL,
		room TEXT NOT NULL,
		detail TEXT NOT NULL,
		meta TEXT NOT NULL,
		timestamp DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_session_events_session ON session_events(session_id, id);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Record implements events.Recorder.
func (j *Journal) Record(ev events.Event) error {
	metaJSON, err := json.Marshal(ev.Meta)
	if err != nil {
		return fmt.Errorf("failed to marshal event meta: %w", err)
	}

	_, err = j.db.Exec(`
		INSERT INTO session_events (session_id, event_id, type, room, detail, meta, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, j.sessionID, ev.ID, string(ev.Type), ev.Room, ev.Detail, string(metaJSON), ev.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Entries returns the events of a session in the order they were recorded.
func (j *Journal) Entries(sessionID string) ([]JournalEntry, error) {
	rows, err := j.db.Query(`
		SELECT id, session_id, event_id, type, room, detail, meta, timestamp
		FROM session_events
		WHERE session_id = ?
		ORDER BY id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var (
			entry    JournalEntry
			typ      string
			metaJSON string
		)
		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.EventID, &typ, &entry.Room, &entry.Detail, &metaJSON, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		entry.Type = events.EventType(typ)
		if err := json.Unmarshal([]byte(metaJSON), &entry.Meta); err != nil {
			return nil, fmt.Errorf("failed to parse event meta: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return entries, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}
