package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityKind(t *testing.T) {
	for _, valid := range []string{"products", "clients", "orders"} {
		kind, err := ParseEntityKind(valid)
		require.NoError(t, err)
		assert.Equal(t, EntityKind(valid), kind)
	}

	_, err := ParseEntityKind("suppliers")
	assert.Error(t, err)
	_, err = ParseEntityKind("")
	assert.Error(t, err)
}

func TestSchemaFor_FieldSets(t *testing.T) {
	tests := []struct {
		kind     EntityKind
		keys     []string
		required []string
	}{
		{
			kind: EntityProducts,
			keys: []string{
				"name", "description", "sku", "category", "dailyRate", "weeklyRate",
				"monthlyRate", "quantity", "brand", "model", "serialNumber", "condition", "notes",
			},
			required: []string{"name", "dailyRate"},
		},
		{
			kind: EntityClients,
			keys: []string{
				"name", "email", "phone", "cpfCnpj", "address", "city", "state", "zipCode", "notes",
			},
			required: []string{"name", "phone"},
		},
		{
			kind: EntityOrders,
			keys: []string{
				"clientName", "productName", "startDate", "endDate", "totalValue", "status", "notes",
			},
			required: []string{"clientName", "productName", "startDate", "endDate"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			sch := SchemaFor(tt.kind)
			assert.Equal(t, tt.kind, sch.Kind)

			keys := make([]string, len(sch.Fields))
			for i, f := range sch.Fields {
				keys[i] = f.Key
			}
			assert.Equal(t, tt.keys, keys)

			var required []string
			for _, f := range sch.RequiredFields() {
				required = append(required, f.Key)
			}
			assert.Equal(t, tt.required, required)
		})
	}
}

func TestSchemaFor_DailyRateLabel(t *testing.T) {
	f, ok := SchemaFor(EntityProducts).FieldByKey("dailyRate")
	require.True(t, ok)
	assert.Equal(t, "Valor Diária (R$)", f.Label)
	assert.True(t, f.Required)
}

func TestAliasFor(t *testing.T) {
	products := AliasFor(EntityProducts)
	assert.Equal(t, "name", products["DESCRICAO"])
	assert.Equal(t, "dailyRate", products["VALOR_DIARIA"])
	assert.Equal(t, "quantity", products["ESTOQUE"])

	clients := AliasFor(EntityClients)
	assert.Equal(t, "phone", clients["FONE"])
	assert.Equal(t, "cpfCnpj", clients["CGC_CPF"])

	// orders were never exported by the desktop system
	assert.Empty(t, AliasFor(EntityOrders))
}

func TestFieldByKey_Missing(t *testing.T) {
	_, ok := SchemaFor(EntityOrders).FieldByKey("dailyRate")
	assert.False(t, ok)
}
