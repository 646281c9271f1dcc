package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"locacao-web/internal/config"
	"locacao-web/internal/models"
	"locacao-web/internal/repository"
	"locacao-web/internal/schema"
	"locacao-web/internal/service"
	"locacao-web/internal/utils"
	"locacao-web/internal/worker"
)

type ImportHandler struct {
	importRepo    *repository.ImportRepository
	csvService    *service.CSVService
	mapperService *service.MapperService
	reportService *service.ReportService
	runner        *service.ImportRunner
	asynqClient   *asynq.Client
	redis         *redis.Client
	cfg           *config.Config
}

func NewImportHandler(
	importRepo *repository.ImportRepository,
	runner *service.ImportRunner,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	cfg *config.Config,
) *ImportHandler {
	return &ImportHandler{
		importRepo:    importRepo,
		csvService:    service.NewCSVService(),
		mapperService: service.NewMapperService(),
		reportService: service.NewReportService(),
		runner:        runner,
		asynqClient:   asynqClient,
		redis:         redisClient,
		cfg:           cfg,
	}
}

// UploadFile receives the delimited file plus the entity kind
// selector, parses it, proposes a column mapping and opens a pending
// import session. The response carries a preview and the proposed
// mapping for the operator to review.
func (h *ImportHandler) UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" && ext != ".txt" && ext != ".tsv" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only delimited text files (.csv, .txt, .tsv) are allowed", nil)
	}

	if file.Size > int64(h.cfg.UploadMaxSize) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File size exceeds maximum limit", nil)
	}

	kind, err := schema.ParseEntityKind(c.FormValue("entity_kind"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid entity kind", err)
	}

	aliasSet := c.FormValue("alias_set")
	if aliasSet != "" && aliasSet != schema.AliasSetLegacy {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown alias set", nil)
	}

	sessionCode := fmt.Sprintf("IMP-%s", uuid.New().String()[:8])

	if err := os.MkdirAll(h.cfg.UploadPath, 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to prepare upload storage", err)
	}
	filePath := filepath.Join(h.cfg.UploadPath, fmt.Sprintf("%s%s", sessionCode, ext))
	if err := c.SaveFile(file, filePath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save file", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read saved file", err)
	}

	table, err := h.csvService.Parse(data)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFile) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Arquivo vazio: nenhuma linha encontrada", err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to parse file", err)
	}

	var aliases map[string]string
	if aliasSet == schema.AliasSetLegacy {
		aliases = schema.AliasFor(kind)
	}
	mapping := h.mapperService.AutoMap(table.Headers, schema.SchemaFor(kind), aliases)

	mappingJSON, err := json.Marshal(mapping)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to encode mapping", err)
	}

	session := &models.ImportSession{
		SessionCode: sessionCode,
		EntityKind:  string(kind),
		AliasSet:    aliasSet,
		Filename:    file.Filename,
		FilePath:    filePath,
		TotalRows:   len(table.Rows),
		Status:      models.ImportStatusPending,
		Mapping:     string(mappingJSON),
	}
	if err := h.importRepo.CreateSession(session); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create import session", err)
	}

	previewRows := table.Rows
	if len(previewRows) > h.cfg.PreviewRows {
		previewRows = previewRows[:h.cfg.PreviewRows]
	}

	return utils.SuccessResponse(c, "File uploaded successfully", fiber.Map{
		"session": session,
		"mapping": mapping,
		"schema":  schema.SchemaFor(kind),
		"preview": fiber.Map{
			"delimiter": table.Delimiter,
			"headers":   table.Headers,
			"rows":      previewRows,
		},
	})
}

// UpdateMapping replaces a pending session's column mapping with the
// operator's edits
func (h *ImportHandler) UpdateMapping(c *fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Import session not found", err)
	}
	if session.Status != models.ImportStatusPending {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Session already started", nil)
	}

	var mapping models.ColumnMapping
	if err := c.BodyParser(&mapping); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid mapping payload", err)
	}

	mappingJSON, err := json.Marshal(&mapping)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to encode mapping", err)
	}
	if err := h.importRepo.UpdateMapping(session.SessionCode, string(mappingJSON)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update mapping", err)
	}

	return utils.SuccessResponse(c, "Mapping updated", fiber.Map{"mapping": mapping})
}

// StartImport validates the stored mapping and kicks off the batch
// run, queued when the worker infrastructure is up, inline otherwise.
func (h *ImportHandler) StartImport(c *fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Import session not found", err)
	}
	if session.Status != models.ImportStatusPending {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Session already started", nil)
	}

	kind, err := schema.ParseEntityKind(session.EntityKind)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Session has invalid entity kind", err)
	}

	var mapping models.ColumnMapping
	if err := json.Unmarshal([]byte(session.Mapping), &mapping); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to decode stored mapping", err)
	}

	if err := h.mapperService.Validate(&mapping, schema.SchemaFor(kind)); err != nil {
		var missing *service.MissingRequiredFieldsError
		if errors.As(err, &missing) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success":        false,
				"message":        missing.Error(),
				"missing_fields": missing.Fields,
			})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to validate mapping", err)
	}

	if h.asynqClient != nil {
		task, err := worker.NewImportTask(session.SessionCode)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build import task", err)
		}
		if _, err := h.asynqClient.Enqueue(task); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to enqueue import", err)
		}
		return utils.SuccessResponse(c, "Import queued", fiber.Map{"session_code": session.SessionCode})
	}

	// No worker infrastructure: run the batch in this request
	if err := h.runner.Run(c.Context(), session.SessionCode); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Import run failed", err)
	}
	finished, err := h.importRepo.GetSessionByCode(session.SessionCode)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reload session", err)
	}
	return utils.SuccessResponse(c, "Import finished", fiber.Map{"session": finished})
}

// GetProgress reports the run's live percentage, Redis first, the
// session row as fallback
func (h *ImportHandler) GetProgress(c *fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Import session not found", err)
	}

	progress := session.Progress
	if h.redis != nil {
		if val, err := h.redis.Get(c.Context(), service.ProgressKey(session.SessionCode)).Int(); err == nil {
			progress = val
		}
	}

	return utils.SuccessResponse(c, "Progress retrieved", fiber.Map{
		"session_code": session.SessionCode,
		"status":       session.Status,
		"progress":     progress,
	})
}

// GetSession returns a session with its decoded result
func (h *ImportHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Import session not found", err)
	}

	var messages []string
	if session.Messages != "" {
		_ = json.Unmarshal([]byte(session.Messages), &messages)
	}
	var mapping models.ColumnMapping
	if session.Mapping != "" {
		_ = json.Unmarshal([]byte(session.Mapping), &mapping)
	}

	return utils.SuccessResponse(c, "Session retrieved", fiber.Map{
		"session": session,
		"mapping": mapping,
		"result": models.ImportResult{
			SuccessCount: session.ProcessedRows,
			ErrorCount:   session.FailedRows,
			Messages:     messages,
		},
	})
}

// GetSessions lists import sessions, newest first
func (h *ImportHandler) GetSessions(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)

	sessions, total, err := h.importRepo.GetSessions(params.Limit, offset)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve sessions", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))
	return utils.PaginatedResponseBuilder(c, "Sessions retrieved successfully", fiber.Map{
		"sessions": sessions,
	}, pagination)
}

// DownloadErrorReport streams the XLSX failure report for a finished
// session
func (h *ImportHandler) DownloadErrorReport(c *fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Import session not found", err)
	}
	if session.Status != models.ImportStatusSuccess && session.Status != models.ImportStatusError {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Import has not finished yet", nil)
	}

	report, err := h.reportService.BuildErrorReport(session)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build report", err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, h.reportService.ReportFilename(session)))
	return c.Send(report)
}

func (h *ImportHandler) loadSession(c *fiber.Ctx) (*models.ImportSession, error) {
	return h.importRepo.GetSessionByCode(c.Params("code"))
}
