package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"locacao-web/internal/config"
	"locacao-web/internal/models"
	"locacao-web/internal/repository"
	"locacao-web/internal/schema"
)

// ImportRunner drives one session's batch run end to end: load the
// stored file, rebuild the table, execute the importer against the
// catalog and finalize the session row. The asynq worker and the
// inline fallback in the HTTP handler both go through it.
type ImportRunner struct {
	importRepo  *repository.ImportRepository
	catalogRepo *repository.CatalogRepository
	csvService  *CSVService
	importer    *ImportService
	redis       *redis.Client
	cfg         *config.Config
	logger      *logrus.Logger
}

func NewImportRunner(
	importRepo *repository.ImportRepository,
	catalogRepo *repository.CatalogRepository,
	redisClient *redis.Client,
	cfg *config.Config,
	logger *logrus.Logger,
) *ImportRunner {
	return &ImportRunner{
		importRepo:  importRepo,
		catalogRepo: catalogRepo,
		csvService:  NewCSVService(),
		importer:    NewImportService(),
		redis:       redisClient,
		cfg:         cfg,
		logger:      logger,
	}
}

// ProgressKey is the Redis key live progress is published under
func ProgressKey(sessionCode string) string {
	return fmt.Sprintf("import:progress:%s", sessionCode)
}

func (r *ImportRunner) Run(ctx context.Context, sessionCode string) error {
	session, err := r.importRepo.GetSessionByCode(sessionCode)
	if err != nil {
		return fmt.Errorf("failed to load session %s: %w", sessionCode, err)
	}
	if session.Status != models.ImportStatusPending {
		// already ran or is running; a retried task must not redo rows
		r.logger.WithFields(logrus.Fields{
			"session": sessionCode,
			"status":  session.Status,
		}).Warn("skipping import run for non-pending session")
		return nil
	}

	kind, err := schema.ParseEntityKind(session.EntityKind)
	if err != nil {
		return r.fail(session, err)
	}

	var mapping models.ColumnMapping
	if err := json.Unmarshal([]byte(session.Mapping), &mapping); err != nil {
		return r.fail(session, fmt.Errorf("failed to decode mapping: %w", err))
	}

	data, err := os.ReadFile(session.FilePath)
	if err != nil {
		return r.fail(session, fmt.Errorf("failed to read stored file: %w", err))
	}

	table, err := r.csvService.Parse(data)
	if err != nil {
		return r.fail(session, err)
	}

	if err := r.importRepo.MarkProcessing(session.SessionCode); err != nil {
		return fmt.Errorf("failed to mark session processing: %w", err)
	}

	lastPercent := -1
	result := r.importer.Run(ctx, table, &mapping, kind, r.catalogRepo.PersistRecord, func(percent int) {
		if percent == lastPercent {
			return
		}
		lastPercent = percent
		r.publishProgress(ctx, session.SessionCode, percent)
	})

	status := models.ImportStatusSuccess
	if result.ErrorCount > 0 {
		status = models.ImportStatusError
	}

	messagesJSON, err := json.Marshal(result.Messages)
	if err != nil {
		messagesJSON = []byte("[]")
	}

	if err := r.importRepo.FinalizeSession(
		session.SessionCode, status, result.SuccessCount, result.ErrorCount, string(messagesJSON), "",
	); err != nil {
		return fmt.Errorf("failed to finalize session %s: %w", session.SessionCode, err)
	}

	r.logger.WithFields(logrus.Fields{
		"session": session.SessionCode,
		"kind":    session.EntityKind,
		"success": result.SuccessCount,
		"errors":  result.ErrorCount,
	}).Info("import run finished")

	return nil
}

func (r *ImportRunner) publishProgress(ctx context.Context, code string, percent int) {
	if r.redis == nil {
		_ = r.importRepo.UpdateProgress(code, percent)
		return
	}
	if err := r.redis.Set(ctx, ProgressKey(code), percent, r.cfg.ProgressTTL).Err(); err != nil {
		r.logger.WithError(err).Warn("failed to publish import progress")
	}
}

// fail finalizes a session that never got to run its rows
func (r *ImportRunner) fail(session *models.ImportSession, cause error) error {
	r.logger.WithError(cause).WithField("session", session.SessionCode).Error("import run aborted")
	if err := r.importRepo.FinalizeSession(
		session.SessionCode, models.ImportStatusError, 0, 0, "[]", cause.Error(),
	); err != nil {
		r.logger.WithError(err).Error("failed to finalize aborted session")
	}
	return cause
}
