package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"locacao-web/internal/schema"
	"locacao-web/internal/service"
	"locacao-web/internal/utils"
)

type TemplateHandler struct {
	templateService *service.TemplateService
}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{templateService: service.NewTemplateService()}
}

// DownloadTemplate hands out an empty import model for the entity
// kind, BOM included so spreadsheets open it with the right encoding
func (h *TemplateHandler) DownloadTemplate(c *fiber.Ctx) error {
	kind, err := schema.ParseEntityKind(c.Params("kind"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid entity kind", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, h.templateService.Filename(kind)))
	return c.Send(h.templateService.Generate(kind))
}
