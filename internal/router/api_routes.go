package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"locacao-web/internal/config"
	"locacao-web/internal/handler"
	"locacao-web/internal/repository"
	"locacao-web/internal/service"
	"locacao-web/internal/utils"
)

func SetupAPIRoutes(
	router fiber.Router,
	db *sqlx.DB,
	redisClient *redis.Client,
	cfg *config.Config,
) {
	// Initialize repositories
	importRepo := repository.NewImportRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Runner doubles as the inline fallback when no worker is around
	runner := service.NewImportRunner(importRepo, catalogRepo, redisClient, cfg, utils.GetLogger())

	// Initialize Asynq client (optional - only if Redis is available)
	var asynqClient *asynq.Client
	if redisClient != nil {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.AsynqRedisAddr,
			Password: cfg.AsynqRedisPassword,
			DB:       cfg.AsynqRedisDB,
		})
	}

	// Initialize handlers
	importHandler := handler.NewImportHandler(importRepo, runner, asynqClient, redisClient, cfg)
	templateHandler := handler.NewTemplateHandler()

	imports := router.Group("/imports")
	imports.Get("/", importHandler.GetSessions)
	imports.Post("/", importHandler.UploadFile)
	imports.Get("/template/:kind", templateHandler.DownloadTemplate)
	imports.Get("/:code", importHandler.GetSession)
	imports.Put("/:code/mapping", importHandler.UpdateMapping)
	imports.Post("/:code/start", importHandler.StartImport)
	imports.Get("/:code/progress", importHandler.GetProgress)
	imports.Get("/:code/report", importHandler.DownloadErrorReport)
}
