package service

import (
	"errors"
	"strings"

	"locacao-web/internal/models"
)

// ErrEmptyFile is returned when the uploaded file has no non-blank lines
var ErrEmptyFile = errors.New("empty file: no data found")

// Quote pairs stripped from the edges of headers and values. Legacy
// exports mix straight quotes with the curly ones some spreadsheet
// tools insert.
var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'“':  '”',
	'‘':  '’',
}

type CSVService struct{}

func NewCSVService() *CSVService {
	return &CSVService{}
}

// Parse turns raw delimited-text bytes into a RawTable. The delimiter
// is detected from the first non-blank line only: semicolon wins over
// tab, tab over comma. Rows shorter than the header are padded with
// empty strings; extra trailing values are dropped.
func (s *CSVService) Parse(data []byte) (*models.RawTable, error) {
	text := strings.TrimPrefix(string(data), "\uFEFF")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyFile
	}

	delimiter := detectDelimiter(lines[0])

	headers := splitAndClean(lines[0], delimiter)

	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitAndClean(line, delimiter)

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &models.RawTable{
		Delimiter: delimiter,
		Headers:   headers,
		Rows:      rows,
	}, nil
}

// detectDelimiter inspects only the first line. A delimiter that shows
// up only in later rows is not detected; that matches the behavior
// operators already rely on.
func detectDelimiter(line string) string {
	switch {
	case strings.Contains(line, ";"):
		return ";"
	case strings.Contains(line, "\t"):
		return "\t"
	default:
		return ","
	}
}

func splitAndClean(line, delimiter string) []string {
	parts := strings.Split(line, delimiter)
	values := make([]string, len(parts))
	for i, part := range parts {
		values[i] = unquote(strings.TrimSpace(part))
	}
	return values
}

// unquote strips a single pair of surrounding quote characters. The
// closing quote must be the opener's counterpart; a stray quote on
// only one side stays in the value.
func unquote(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	if closer, ok := quotePairs[runes[0]]; ok && runes[len(runes)-1] == closer {
		return string(runes[1 : len(runes)-1])
	}
	return s
}
