package worker

import (
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"locacao-web/internal/config"
)

func RegisterHandlers(mux *asynq.ServeMux, db *sqlx.DB, redisClient *redis.Client, cfg *config.Config) {
	importHandler := NewImportHandler(db, redisClient, cfg)
	mux.HandleFunc(TaskImportRun, importHandler.HandleImportRun)
}
