package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locacao-web/internal/schema"
)

func TestGenerate_AllKinds(t *testing.T) {
	svc := NewTemplateService()
	csv := NewCSVService()

	for _, kind := range []schema.EntityKind{schema.EntityProducts, schema.EntityClients, schema.EntityOrders} {
		t.Run(string(kind), func(t *testing.T) {
			data := svc.Generate(kind)

			assert.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"), "template must start with a UTF-8 BOM")

			table, err := csv.Parse(data)
			require.NoError(t, err)
			assert.Equal(t, ";", table.Delimiter)

			sch := schema.SchemaFor(kind)
			labels := make([]string, len(sch.Fields))
			for i, f := range sch.Fields {
				labels[i] = f.Label
			}
			assert.Equal(t, labels, table.Headers)

			// exactly one example row, with every field filled in
			require.Len(t, table.Rows, 1)
			for _, f := range sch.Fields {
				assert.NotEmpty(t, table.Rows[0][f.Label], "example value for %s", f.Key)
			}
		})
	}
}

func TestGenerate_CurrencyUsesPeriodDecimal(t *testing.T) {
	svc := NewTemplateService()

	data := string(svc.Generate(schema.EntityProducts))
	assert.Contains(t, data, "120.00")
	assert.NotContains(t, data, "120,00")
}

func TestFilename(t *testing.T) {
	svc := NewTemplateService()

	assert.Equal(t, "modelo_products.csv", svc.Filename(schema.EntityProducts))
	assert.Equal(t, "modelo_clients.csv", svc.Filename(schema.EntityClients))
	assert.Equal(t, "modelo_orders.csv", svc.Filename(schema.EntityOrders))
}
