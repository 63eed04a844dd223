package storage

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// SaveResume stores an extraction result. The record ID must be set by the
// caller (a uuid); created/updated timestamps are set server-side.
func (db *DB) SaveResume(ctx context.Context, rec *ResumeRecord) error {
	query := `INSERT INTO resumes (id, filename, file_type, file_size, source_text, data, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`
	_, err := db.connection.ExecContext(ctx, query,
		rec.ID,
		rec.Filename,
		rec.FileType,
		rec.FileSize,
		rec.SourceText,
		rec.Data,
	)
	return err
}

// UpdateResume replaces the stored payload for an existing record.
func (db *DB) UpdateResume(ctx context.Context, id string, data []byte) error {
	query := `UPDATE resumes SET data = $2, updated_at = NOW() WHERE id = $1`
	res, err := db.connection.ExecContext(ctx, query, id, data)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (db *DB) GetResume(ctx context.Context, id string) (*ResumeRecord, error) {
	rec := &ResumeRecord{}
	query := `SELECT id, filename, file_type, file_size, source_text, data, created_at, updated_at
              FROM resumes WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)
	err := row.Scan(&rec.ID, &rec.Filename, &rec.FileType, &rec.FileSize,
		&rec.SourceText, &rec.Data, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListResumes returns stored resume metadata, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]*ResumeInfo, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, filename, file_type, file_size, created_at
              FROM resumes ORDER BY created_at DESC LIMIT $1`
	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*ResumeInfo
	for rows.Next() {
		info := &ResumeInfo{}
		if err := rows.Scan(&info.ID, &info.Filename, &info.FileType, &info.FileSize, &info.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, info)
	}
	return res, rows.Err()
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}
