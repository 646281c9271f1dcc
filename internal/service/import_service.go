package service

import (
	"context"
	"fmt"
	"math"

	"locacao-web/internal/models"
	"locacao-web/internal/schema"
)

// PersistFunc writes one mapped record to the data store, creating or
// updating it. The transport behind it is none of the importer's
// business.
type PersistFunc func(ctx context.Context, kind schema.EntityKind, record map[string]interface{}) error

// ProgressFunc receives the percentage of rows processed so far,
// 0-100, non-decreasing, exactly 100 after the last row.
type ProgressFunc func(percent int)

type ImportService struct{}

func NewImportService() *ImportService {
	return &ImportService{}
}

// Run imports every row of the table, in file order, one persist call
// per row. A row's failure is recorded and the batch moves on; the
// returned result always accounts for all rows. Failure messages are
// numbered against the original file, where the header is line 1.
func (s *ImportService) Run(
	ctx context.Context,
	table *models.RawTable,
	mapping *models.ColumnMapping,
	kind schema.EntityKind,
	persist PersistFunc,
	onProgress ProgressFunc,
) *models.ImportResult {
	result := &models.ImportResult{Messages: []string{}}
	total := len(table.Rows)

	for i, row := range table.Rows {
		record := buildRecord(row, mapping)

		if err := persist(ctx, kind, record); err != nil {
			result.ErrorCount++
			result.Messages = append(result.Messages, rowMessage(i+2, record, err))
		} else {
			result.SuccessCount++
		}

		if onProgress != nil {
			percent := int(math.Round(float64(i+1) / float64(total) * 100))
			if i+1 == total {
				percent = 100
			}
			onProgress(percent)
		}
	}

	return result
}

// buildRecord applies the mapping to one row. Bindings are walked in
// source column order, so when two columns share a target the later
// column wins. Empty cells stay out of the record entirely.
func buildRecord(row map[string]string, mapping *models.ColumnMapping) map[string]interface{} {
	record := make(map[string]interface{})
	for _, binding := range mapping.Columns {
		if binding.Ignored() {
			continue
		}
		value := row[binding.SourceHeader]
		if value == "" {
			continue
		}
		record[binding.TargetKey] = Coerce(value, binding.TargetKey)
	}
	return record
}

func rowMessage(fileLine int, record map[string]interface{}, err error) string {
	name := "registro sem nome"
	if v, ok := record["name"].(string); ok && v != "" {
		name = v
	} else if v, ok := record["clientName"].(string); ok && v != "" {
		name = v
	}
	return fmt.Sprintf("Linha %d: falha ao gravar %q: %v", fileLine, name, err)
}
