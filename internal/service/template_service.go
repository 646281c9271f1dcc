package service

import (
	"fmt"
	"strings"

	"locacao-web/internal/schema"
)

// utf8BOM makes spreadsheet tools pick the right encoding when the
// operator opens the downloaded template.
const utf8BOM = "\xEF\xBB\xBF"

// templateExamples holds one plausible example row per entity kind,
// keyed by field key. Currency uses a period decimal separator, the
// format the coercer also accepts.
var templateExamples = map[schema.EntityKind]map[string]string{
	schema.EntityProducts: {
		"name":         "Betoneira 400L",
		"description":  "Betoneira profissional 400 litros",
		"sku":          "BET-400",
		"category":     "Construção",
		"dailyRate":    "120.00",
		"weeklyRate":   "600.00",
		"monthlyRate":  "1800.00",
		"quantity":     "3",
		"brand":        "CSM",
		"model":        "B-400",
		"serialNumber": "SN-0012345",
		"condition":    "Bom",
		"notes":        "Revisada em janeiro",
	},
	schema.EntityClients: {
		"name":    "João da Silva",
		"email":   "joao.silva@email.com",
		"phone":   "(11) 98765-4321",
		"cpfCnpj": "123.456.789-00",
		"address": "Rua das Flores, 123",
		"city":    "São Paulo",
		"state":   "SP",
		"zipCode": "01234-567",
		"notes":   "Cliente desde 2020",
	},
	schema.EntityOrders: {
		"clientName":  "João da Silva",
		"productName": "Betoneira 400L",
		"startDate":   "2024-03-01",
		"endDate":     "2024-03-08",
		"totalValue":  "840.00",
		"status":      "Ativo",
		"notes":       "Entrega agendada",
	},
}

type TemplateService struct{}

func NewTemplateService() *TemplateService {
	return &TemplateService{}
}

// Generate builds an empty import template for the entity kind: one
// header line with the schema's labels, semicolon-joined, plus one
// example row, UTF-8 with BOM.
func (s *TemplateService) Generate(kind schema.EntityKind) []byte {
	sch := schema.SchemaFor(kind)
	examples := templateExamples[kind]

	labels := make([]string, len(sch.Fields))
	values := make([]string, len(sch.Fields))
	for i, f := range sch.Fields {
		labels[i] = f.Label
		values[i] = examples[f.Key]
	}

	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(strings.Join(labels, ";"))
	b.WriteString("\n")
	b.WriteString(strings.Join(values, ";"))
	b.WriteString("\n")
	return []byte(b.String())
}

// Filename returns the download name the UI should offer
func (s *TemplateService) Filename(kind schema.EntityKind) string {
	return fmt.Sprintf("modelo_%s.csv", kind)
}
