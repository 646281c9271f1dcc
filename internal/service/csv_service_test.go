package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DelimiterDetection(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter string
		headers   []string
	}{
		{
			name:      "semicolon",
			input:     "Nome;Valor\nBetoneira;120,00\n",
			delimiter: ";",
			headers:   []string{"Nome", "Valor"},
		},
		{
			name:      "tab",
			input:     "Nome\tValor\nBetoneira\t120,00\n",
			delimiter: "\t",
			headers:   []string{"Nome", "Valor"},
		},
		{
			name:      "comma default",
			input:     "Nome,Valor\nBetoneira,120.00\n",
			delimiter: ",",
			headers:   []string{"Nome", "Valor"},
		},
		{
			name:      "semicolon wins over tab",
			input:     "Nome;Valor\tExtra\nA;B\tC\n",
			delimiter: ";",
			headers:   []string{"Nome", "Valor\tExtra"},
		},
	}

	svc := NewCSVService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := svc.Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.delimiter, table.Delimiter)
			assert.Equal(t, tt.headers, table.Headers)
		})
	}
}

func TestParse_EmptyFile(t *testing.T) {
	svc := NewCSVService()

	for _, input := range []string{"", "\n\n\n", "   \n\t\n  \r\n"} {
		_, err := svc.Parse([]byte(input))
		assert.ErrorIs(t, err, ErrEmptyFile)
	}
}

func TestParse_QuoteStripping(t *testing.T) {
	svc := NewCSVService()

	input := "\"Nome\";'Valor';“Obs”\n\"Betoneira\";150,00;‘ok’\n"
	table, err := svc.Parse([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Nome", "Valor", "Obs"}, table.Headers)
	assert.Equal(t, "Betoneira", table.Rows[0]["Nome"])
	assert.Equal(t, "ok", table.Rows[0]["Obs"])
}

func TestParse_MismatchedQuotesKept(t *testing.T) {
	svc := NewCSVService()

	input := "Nome;Obs\n\"Betoneira’;“aberto\n"
	table, err := svc.Parse([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, "\"Betoneira’", table.Rows[0]["Nome"])
	assert.Equal(t, "“aberto", table.Rows[0]["Obs"])
}

func TestParse_RowLengthLeniency(t *testing.T) {
	svc := NewCSVService()

	input := "A;B;C\n1;2\n1;2;3;4\n"
	table, err := svc.Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	// short row: missing trailing fields become empty strings
	assert.Equal(t, "1", table.Rows[0]["A"])
	assert.Equal(t, "2", table.Rows[0]["B"])
	assert.Equal(t, "", table.Rows[0]["C"])

	// long row: excess values are silently dropped
	assert.Equal(t, "3", table.Rows[1]["C"])
	assert.Len(t, table.Rows[1], 3)
}

func TestParse_SkipsBlankLinesAndBOM(t *testing.T) {
	svc := NewCSVService()

	input := "\uFEFFNome;Valor\n\n   \nBetoneira;120,00\n\n"
	table, err := svc.Parse([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Nome", "Valor"}, table.Headers)
	require.Len(t, table.Rows, 1)
}

func TestParse_HeaderRoundTrip(t *testing.T) {
	svc := NewCSVService()

	headerLine := "DESCRICAO;VALOR_DIARIA;ESTOQUE"
	table, err := svc.Parse([]byte(headerLine + "\nBetoneira;120,00;3\n"))
	require.NoError(t, err)

	assert.Equal(t, headerLine, strings.Join(table.Headers, table.Delimiter))
}

func TestParse_ValuesTrimmed(t *testing.T) {
	svc := NewCSVService()

	table, err := svc.Parse([]byte("Nome ; Valor\n  Betoneira  ;  120,00 \n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Nome", "Valor"}, table.Headers)
	assert.Equal(t, "Betoneira", table.Rows[0]["Nome"])
	assert.Equal(t, "120,00", table.Rows[0]["Valor"])
}
