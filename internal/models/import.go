package models

import "time"

// Import session status values. A session is terminal once it reaches
// success or error; re-importing a file means a new session.
const (
	ImportStatusPending    = "pending"
	ImportStatusProcessing = "processing"
	ImportStatusSuccess    = "success"
	ImportStatusError      = "error"
)

type ImportSession struct {
	ID            int       `db:"id" json:"id"`
	SessionCode   string    `db:"session_code" json:"session_code"`
	EntityKind    string    `db:"entity_kind" json:"entity_kind"`
	AliasSet      string    `db:"alias_set" json:"alias_set"`
	Filename      string    `db:"filename" json:"filename"`
	FilePath      string    `db:"file_path" json:"file_path"`
	TotalRows     int       `db:"total_rows" json:"total_rows"`
	ProcessedRows int       `db:"processed_rows" json:"processed_rows"`
	FailedRows    int       `db:"failed_rows" json:"failed_rows"`
	Progress      int       `db:"progress" json:"progress"`
	Status        string    `db:"status" json:"status"`
	Mapping       string    `db:"mapping" json:"mapping"`   // ColumnMapping as JSON
	Messages      string    `db:"messages" json:"messages"` // per-row failure messages as JSON array
	ErrorMessage  string    `db:"error_message" json:"error_message"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// RawTable is one parsed upload: the header row plus every data row
// keyed by header. It is built once per file and never mutated.
type RawTable struct {
	Delimiter string              `json:"delimiter"`
	Headers   []string            `json:"headers"`
	Rows      []map[string]string `json:"rows"`
}

// ImportResult is the aggregate outcome of one batch run. Messages
// carry one entry per failed row, numbered against the original file
// including the header line.
type ImportResult struct {
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Messages     []string `json:"messages"`
}
