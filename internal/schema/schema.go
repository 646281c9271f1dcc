package schema

import "fmt"

// EntityKind identifies an import target. The set is closed: every
// switch over it must be exhaustive so a new kind is a compile-time
// change, not a runtime miss.
type EntityKind string

const (
	EntityProducts EntityKind = "products"
	EntityClients  EntityKind = "clients"
	EntityOrders   EntityKind = "orders"
)

// ParseEntityKind converts an external selector into an EntityKind
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case EntityProducts, EntityClients, EntityOrders:
		return EntityKind(s), nil
	}
	return "", fmt.Errorf("unknown entity kind: %q", s)
}

// TargetField describes one column of a target schema
type TargetField struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// TargetSchema is the fixed set of fields an entity kind accepts.
// Declaration order matters: the auto-mapper evaluates fields in this
// order and binds the first match.
type TargetSchema struct {
	Kind   EntityKind    `json:"kind"`
	Fields []TargetField `json:"fields"`
}

// RequiredFields returns the required fields in declaration order
func (s TargetSchema) RequiredFields() []TargetField {
	var req []TargetField
	for _, f := range s.Fields {
		if f.Required {
			req = append(req, f)
		}
	}
	return req
}

// FieldByKey looks a field up by its stable key
func (s TargetSchema) FieldByKey(key string) (TargetField, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return TargetField{}, false
}

var productSchema = TargetSchema{
	Kind: EntityProducts,
	Fields: []TargetField{
		{Key: "name", Label: "Nome", Required: true},
		{Key: "description", Label: "Descrição", Required: false},
		{Key: "sku", Label: "Código (SKU)", Required: false},
		{Key: "category", Label: "Categoria", Required: false},
		{Key: "dailyRate", Label: "Valor Diária (R$)", Required: true},
		{Key: "weeklyRate", Label: "Valor Semanal (R$)", Required: false},
		{Key: "monthlyRate", Label: "Valor Mensal (R$)", Required: false},
		{Key: "quantity", Label: "Quantidade em Estoque", Required: false},
		{Key: "brand", Label: "Marca", Required: false},
		{Key: "model", Label: "Modelo", Required: false},
		{Key: "serialNumber", Label: "Número de Série", Required: false},
		{Key: "condition", Label: "Estado de Conservação", Required: false},
		{Key: "notes", Label: "Observações", Required: false},
	},
}

var clientSchema = TargetSchema{
	Kind: EntityClients,
	Fields: []TargetField{
		{Key: "name", Label: "Nome", Required: true},
		{Key: "email", Label: "E-mail", Required: false},
		{Key: "phone", Label: "Telefone", Required: true},
		{Key: "cpfCnpj", Label: "CPF/CNPJ", Required: false},
		{Key: "address", Label: "Endereço", Required: false},
		{Key: "city", Label: "Cidade", Required: false},
		{Key: "state", Label: "Estado (UF)", Required: false},
		{Key: "zipCode", Label: "CEP", Required: false},
		{Key: "notes", Label: "Observações", Required: false},
	},
}

var orderSchema = TargetSchema{
	Kind: EntityOrders,
	Fields: []TargetField{
		{Key: "clientName", Label: "Cliente", Required: true},
		{Key: "productName", Label: "Produto", Required: true},
		{Key: "startDate", Label: "Data Início", Required: true},
		{Key: "endDate", Label: "Data Fim", Required: true},
		{Key: "totalValue", Label: "Valor Total (R$)", Required: false},
		{Key: "status", Label: "Status", Required: false},
		{Key: "notes", Label: "Observações", Required: false},
	},
}

// SchemaFor returns the static target schema for an entity kind
func SchemaFor(kind EntityKind) TargetSchema {
	switch kind {
	case EntityProducts:
		return productSchema
	case EntityClients:
		return clientSchema
	case EntityOrders:
		return orderSchema
	}
	// ParseEntityKind guards every external entry point
	panic(fmt.Sprintf("schema: unknown entity kind %q", kind))
}
