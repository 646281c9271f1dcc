// Command gensample writes sample import files for manual testing: a
// CSV in the legacy desktop system's column layout and an XLSX with
// the same data for operators who re-export through a spreadsheet.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

var sampleHeaders = []string{
	"CODIGO", "DESCRICAO", "COMPLEMENTO", "GRUPO", "VALOR_DIARIA",
	"VALOR_SEMANAL", "VALOR_MENSAL", "ESTOQUE", "MARCA", "MODELO", "OBS",
}

var sampleRows = [][]string{
	{"1001", "Betoneira 400L", "Betoneira profissional 400 litros", "Construção", "120,00", "600,00", "1.800,00", "3", "CSM", "B-400", ""},
	{"1002", "Andaime Tubular 1,5m", "Painel metálico", "Construção", "15,50", "70,00", "200,00", "40", "Metax", "AT-150", "Lote 2019"},
	{"1003", "Martelete SDS-Plus", "Rompedor 800W", "Ferramentas Elétricas", "45,00", "210,00", "R$ 580,00", "7", "Bosch", "GBH 2-24", ""},
	{"1004", "Gerador 5kVA", "Gasolina, partida elétrica", "Energia", "180,00", "850,00", "2.400,00", "2", "Toyama", "TG5000", "Revisar óleo"},
}

func main() {
	if err := writeCSV("amostra_produtos_legado.csv"); err != nil {
		log.Fatalf("Failed to write sample CSV: %v", err)
	}
	if err := writeXLSX("amostra_produtos_legado.xlsx"); err != nil {
		log.Fatalf("Failed to write sample XLSX: %v", err)
	}
	fmt.Println("Sample files written: amostra_produtos_legado.csv, amostra_produtos_legado.xlsx")
}

func writeCSV(path string) error {
	var b strings.Builder
	b.WriteString("\xEF\xBB\xBF")
	b.WriteString(strings.Join(sampleHeaders, ";"))
	b.WriteString("\n")
	for _, row := range sampleRows {
		b.WriteString(strings.Join(row, ";"))
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Produtos"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, header := range sampleHeaders {
		cell := fmt.Sprintf("%s1", getColumnName(i))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range sampleRows {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", getColumnName(colIdx), rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f.SaveAs(path)
}

func getColumnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+(index%26))) + result
		index = index/26 - 1
	}
	return result
}
