package storage

import "time"

// ResumeRecord is one stored extraction result. Data holds the full Resume
// JSON exactly as the engine produced it; callers re-edit it downstream.
type ResumeRecord struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	SourceText string    `json:"-"`
	Data       []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ResumeInfo is the listing view: metadata without text or payload.
type ResumeInfo struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}
