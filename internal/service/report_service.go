package service

import (
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"locacao-web/internal/models"
)

type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildErrorReport renders a finished session's failure messages as an
// XLSX workbook the operator can download and work through.
func (s *ReportService) BuildErrorReport(session *models.ImportSession) ([]byte, error) {
	var messages []string
	if session.Messages != "" {
		if err := json.Unmarshal([]byte(session.Messages), &messages); err != nil {
			return nil, fmt.Errorf("failed to decode session messages: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Erros de Importação"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Summary block
	f.SetCellValue(sheetName, "A1", "Arquivo")
	f.SetCellValue(sheetName, "B1", session.Filename)
	f.SetCellValue(sheetName, "A2", "Tipo")
	f.SetCellValue(sheetName, "B2", session.EntityKind)
	f.SetCellValue(sheetName, "A3", "Linhas processadas")
	f.SetCellValue(sheetName, "B3", session.TotalRows)
	f.SetCellValue(sheetName, "A4", "Falhas")
	f.SetCellValue(sheetName, "B4", session.FailedRows)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	f.SetCellValue(sheetName, "A6", "#")
	f.SetCellValue(sheetName, "B6", "Mensagem")
	f.SetCellStyle(sheetName, "A6", "B6", headerStyle)

	for i, msg := range messages {
		row := i + 7
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), msg)
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportFilename returns the download name for a session's report
func (s *ReportService) ReportFilename(session *models.ImportSession) string {
	return fmt.Sprintf("erros_%s.xlsx", session.SessionCode)
}
