package schema

// AliasSetLegacy names the column dictionary of the old desktop
// system (Sisloc) whose exports operators still upload.
const AliasSetLegacy = "legado"

// Legacy column names as the desktop system exports them, uppercased,
// keyed to target field keys. The desktop system called the product
// name DESCRICAO and the long description COMPLEMENTO.
var legacyProductAliases = map[string]string{
	"DESCRICAO":     "name",
	"COMPLEMENTO":   "description",
	"CODIGO":        "sku",
	"GRUPO":         "category",
	"VALOR_DIARIA":  "dailyRate",
	"VALOR_SEMANAL": "weeklyRate",
	"VALOR_MENSAL":  "monthlyRate",
	"ESTOQUE":       "quantity",
	"MARCA":         "brand",
	"MODELO":        "model",
	"NUM_SERIE":     "serialNumber",
	"CONSERVACAO":   "condition",
	"OBS":           "notes",
}

var legacyClientAliases = map[string]string{
	"RAZAO_SOCIAL": "name",
	"NOME_CLIENTE": "name",
	"EMAIL":        "email",
	"FONE":         "phone",
	"TELEFONE1":    "phone",
	"CGC_CPF":      "cpfCnpj",
	"ENDERECO":     "address",
	"CIDADE":       "city",
	"UF":           "state",
	"CEP":          "zipCode",
	"OBS":          "notes",
}

// AliasFor returns the legacy alias dictionary for an entity kind.
// Orders were never exported by the desktop system, so there is no
// alias table for them.
func AliasFor(kind EntityKind) map[string]string {
	switch kind {
	case EntityProducts:
		return legacyProductAliases
	case EntityClients:
		return legacyClientAliases
	case EntityOrders:
		return map[string]string{}
	}
	return map[string]string{}
}
