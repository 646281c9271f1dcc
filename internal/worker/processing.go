package worker

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"locacao-web/internal/config"
	"locacao-web/internal/repository"
	"locacao-web/internal/service"
	"locacao-web/internal/utils"
)

// TaskImportRun is the asynq task type for one session's batch run
const TaskImportRun = "import:run"

type ImportPayload struct {
	SessionCode string `json:"session_code"`
}

// NewImportTask builds the task the upload handler enqueues
func NewImportTask(sessionCode string) (*asynq.Task, error) {
	payload, err := json.Marshal(ImportPayload{SessionCode: sessionCode})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskImportRun, payload), nil
}

type ImportHandler struct {
	runner *service.ImportRunner
}

func NewImportHandler(db *sqlx.DB, redisClient *redis.Client, cfg *config.Config) *ImportHandler {
	runner := service.NewImportRunner(
		repository.NewImportRepository(db),
		repository.NewCatalogRepository(db),
		redisClient,
		cfg,
		utils.GetLogger(),
	)
	return &ImportHandler{runner: runner}
}

func (h *ImportHandler) HandleImportRun(ctx context.Context, task *asynq.Task) error {
	var payload ImportPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	utils.GetLogger().WithField("session", payload.SessionCode).Info("starting import run")
	return h.runner.Run(ctx, payload.SessionCode)
}
