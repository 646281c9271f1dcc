package repository

import (
	"locacao-web/internal/models"

	"github.com/jmoiron/sqlx"
)

type ImportRepository struct {
	db *sqlx.DB
}

func NewImportRepository(db *sqlx.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

func (r *ImportRepository) CreateSession(session *models.ImportSession) error {
	query := `INSERT INTO import_sessions (session_code, entity_kind, alias_set, filename,
	          file_path, total_rows, status, mapping)
	          VALUES (:session_code, :entity_kind, :alias_set, :filename,
	          :file_path, :total_rows, :status, :mapping)`
	result, err := r.db.NamedExec(query, session)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	session.ID = int(id)
	return nil
}

func (r *ImportRepository) GetSessionByCode(code string) (*models.ImportSession, error) {
	var session models.ImportSession
	query := "SELECT * FROM import_sessions WHERE session_code = ? LIMIT 1"
	err := r.db.Get(&session, query, code)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ImportRepository) GetSessions(limit, offset int) ([]models.ImportSession, int, error) {
	var sessions []models.ImportSession
	var total int

	err := r.db.Get(&total, "SELECT COUNT(*) FROM import_sessions")
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM import_sessions ORDER BY created_at DESC LIMIT ? OFFSET ?`
	err = r.db.Select(&sessions, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// UpdateMapping stores the operator-edited column mapping (JSON).
// Only pending sessions may be remapped.
func (r *ImportRepository) UpdateMapping(code, mappingJSON string) error {
	query := `UPDATE import_sessions SET mapping = ? WHERE session_code = ? AND status = ?`
	_, err := r.db.Exec(query, mappingJSON, code, models.ImportStatusPending)
	return err
}

// MarkProcessing transitions pending → processing
func (r *ImportRepository) MarkProcessing(code string) error {
	query := `UPDATE import_sessions SET status = ?, progress = 0 WHERE session_code = ? AND status = ?`
	_, err := r.db.Exec(query, models.ImportStatusProcessing, code, models.ImportStatusPending)
	return err
}

// UpdateProgress refreshes the durable progress column while a run is
// live; it is the fallback the progress endpoint reads when Redis is
// not around.
func (r *ImportRepository) UpdateProgress(code string, progress int) error {
	query := `UPDATE import_sessions SET progress = ? WHERE session_code = ?`
	_, err := r.db.Exec(query, progress, code)
	return err
}

// FinalizeSession records the terminal state of a run
func (r *ImportRepository) FinalizeSession(code, status string, processed, failed int, messagesJSON, errorMessage string) error {
	query := `UPDATE import_sessions SET status = ?, processed_rows = ?, failed_rows = ?,
	          progress = 100, messages = ?, error_message = ? WHERE session_code = ?`
	_, err := r.db.Exec(query, status, processed, failed, messagesJSON, errorMessage, code)
	return err
}
