package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// scanTimeLayout keeps a fixed width so scanned_at sorts as text.
const scanTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Scan is one room code entered on the scanner screen.
type Scan struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	RoomName  string `json:"room_name"`
	ScannedAt string `json:"scanned_at"`
}

func OpenScansDB() (*sql.DB, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := ScansPath()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := ensureScansSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func ensureScansSchema(db *sql.DB) error {
	createTable := `
CREATE TABLE IF NOT EXISTS scans (
  id TEXT PRIMARY KEY,
  code TEXT NOT NULL,
  room_name TEXT,
  scanned_at TEXT NOT NULL
);`

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create scans table: %w", err)
	}
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at);"); err != nil {
		return fmt.Errorf("create scans index: %w", err)
	}
	return nil
}

// NewScan builds a scan for code with a fresh ID, stamped at now in UTC.
func NewScan(code, roomName string, now time.Time) Scan {
	return Scan{
		ID:        uuid.NewString(),
		Code:      strings.TrimSpace(code),
		RoomName:  roomName,
		ScannedAt: now.UTC().Format(scanTimeLayout),
	}
}

func AddScan(db *sql.DB, scan Scan) error {
	if scan.Code == "" {
		return fmt.Errorf("scan code is required")
	}
	_, err := db.Exec(
		"INSERT INTO scans (id, code, room_name, scanned_at) VALUES (?, ?, ?, ?);",
		scan.ID,
		scan.Code,
		scan.RoomName,
		scan.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// ListScans returns the newest scans first. A limit of zero or less returns all.
func ListScans(db *sql.DB, limit int) ([]Scan, error) {
	query := "SELECT id, code, room_name, scanned_at FROM scans ORDER BY scanned_at DESC, rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := []Scan{}
	for rows.Next() {
		var scan Scan
		var roomName sql.NullString
		if err := rows.Scan(&scan.ID, &scan.Code, &roomName, &scan.ScannedAt); err != nil {
			return nil, err
		}
		if roomName.Valid {
			scan.RoomName = roomName.String
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return scans, nil
}

func ClearScans(db *sql.DB) (int64, error) {
	res, err := db.Exec("DELETE FROM scans")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
