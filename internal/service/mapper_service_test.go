package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locacao-web/internal/models"
	"locacao-web/internal/schema"
)

func bindingsOf(m *models.ColumnMapping) map[string]string {
	out := make(map[string]string)
	for _, c := range m.Columns {
		if !c.Ignored() {
			out[c.SourceHeader] = c.TargetKey
		}
	}
	return out
}

func TestAutoMap_LegacyAliases(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityProducts)
	aliases := schema.AliasFor(schema.EntityProducts)

	mapping := svc.AutoMap([]string{"DESCRICAO", "VALOR_DIARIA", "ESTOQUE"}, sch, aliases)

	assert.Equal(t, map[string]string{
		"DESCRICAO":    "name",
		"VALOR_DIARIA": "dailyRate",
		"ESTOQUE":      "quantity",
	}, bindingsOf(mapping))
}

func TestAutoMap_AliasBeatsFuzzy(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityProducts)

	// Without the alias table DESCRICAO matches the description label
	noAliases := svc.AutoMap([]string{"DESCRICAO"}, sch, nil)
	assert.Equal(t, map[string]string{"DESCRICAO": "description"}, bindingsOf(noAliases))

	// With it, the curated legacy meaning (product name) wins
	withAliases := svc.AutoMap([]string{"DESCRICAO"}, sch, schema.AliasFor(schema.EntityProducts))
	assert.Equal(t, map[string]string{"DESCRICAO": "name"}, bindingsOf(withAliases))
}

func TestAutoMap_FuzzyDiacritics(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityProducts)

	mapping := svc.AutoMap([]string{"Nome do Produto", "Preço diária"}, sch, nil)

	assert.Equal(t, map[string]string{
		"Nome do Produto": "name",
		"Preço diária":    "dailyRate",
	}, bindingsOf(mapping))
}

func TestAutoMap_UnknownHeaderStaysUnbound(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityProducts)

	mapping := svc.AutoMap([]string{"XPTO_123", "Nome"}, sch, nil)

	require.Len(t, mapping.Columns, 2)
	assert.True(t, mapping.Columns[0].Ignored())
	assert.Equal(t, "name", mapping.Columns[1].TargetKey)
}

func TestAutoMap_NeverBindsTargetTwice(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityClients)

	// Both legacy headers mean "name"; only the first may claim it
	mapping := svc.AutoMap([]string{"RAZAO_SOCIAL", "NOME_CLIENTE"}, sch, schema.AliasFor(schema.EntityClients))

	assert.Equal(t, "name", mapping.Columns[0].TargetKey)
	assert.True(t, mapping.Columns[1].Ignored())
}

func TestAutoMap_Deterministic(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityProducts)
	headers := []string{"Nome", "Preço diária", "Marca", "Quantidade", "XPTO"}

	first := svc.AutoMap(headers, sch, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, svc.AutoMap(headers, sch, nil))
	}
}

func TestValidate_ReportsAllMissingAtOnce(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityClients)

	mapping := &models.ColumnMapping{Columns: []models.ColumnBinding{
		{SourceHeader: "E-mail", TargetKey: "email"},
	}}

	err := svc.Validate(mapping, sch)
	require.Error(t, err)

	var missing *MissingRequiredFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"Nome", "Telefone"}, missing.Fields)
}

func TestValidate_MissingDailyRateLabel(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityProducts)

	mapping := &models.ColumnMapping{Columns: []models.ColumnBinding{
		{SourceHeader: "Nome", TargetKey: "name"},
	}}

	var missing *MissingRequiredFieldsError
	require.ErrorAs(t, svc.Validate(mapping, sch), &missing)
	assert.Equal(t, []string{"Valor Diária (R$)"}, missing.Fields)
}

func TestValidate_OK(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityProducts)

	mapping := &models.ColumnMapping{Columns: []models.ColumnBinding{
		{SourceHeader: "Nome", TargetKey: "name"},
		{SourceHeader: "Diária", TargetKey: "dailyRate"},
		{SourceHeader: "Lixo", TargetKey: models.TargetIgnore},
	}}

	assert.NoError(t, svc.Validate(mapping, sch))
}

func TestValidate_IgnoredColumnDoesNotCount(t *testing.T) {
	svc := NewMapperService()
	sch := schema.SchemaFor(schema.EntityProducts)

	mapping := &models.ColumnMapping{Columns: []models.ColumnBinding{
		{SourceHeader: "Nome", TargetKey: "name"},
		{SourceHeader: "Diária", TargetKey: ""},
	}}

	var missing *MissingRequiredFieldsError
	require.ErrorAs(t, svc.Validate(mapping, sch), &missing)
	assert.Equal(t, []string{"Valor Diária (R$)"}, missing.Fields)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Preço Diária", "preco diaria"},
		{"OBSERVAÇÕES", "observacoes"},
		{"  Número de Série  ", "numero de serie"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, normalizeText(tt.in))
	}
}
