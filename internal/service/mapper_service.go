package service

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"locacao-web/internal/models"
	"locacao-web/internal/schema"
)

// MissingRequiredFieldsError reports every required target field that
// has no source column mapped to it, so the operator sees the whole
// list at once.
type MissingRequiredFieldsError struct {
	Fields []string // field labels
}

func (e *MissingRequiredFieldsError) Error() string {
	return fmt.Sprintf("campos obrigatórios sem coluna de origem: %s", strings.Join(e.Fields, ", "))
}

// matchStrategy proposes a target field key for one source header.
// Strategies run in order; the first non-empty answer wins.
type matchStrategy func(header string, sch schema.TargetSchema, aliases map[string]string) (string, bool)

type MapperService struct {
	strategies []matchStrategy
}

func NewMapperService() *MapperService {
	return &MapperService{
		strategies: []matchStrategy{
			matchAlias,
			matchContainment,
			matchLabelWord,
		},
	}
}

// AutoMap proposes a column mapping for the parsed headers. Headers no
// strategy can place stay unbound for the operator to review. A target
// key is never bound twice: the first header that claims it keeps it.
func (s *MapperService) AutoMap(headers []string, sch schema.TargetSchema, aliases map[string]string) *models.ColumnMapping {
	mapping := &models.ColumnMapping{Columns: make([]models.ColumnBinding, 0, len(headers))}
	used := make(map[string]bool)

	for _, header := range headers {
		binding := models.ColumnBinding{SourceHeader: header}
		for _, strategy := range s.strategies {
			if key, ok := strategy(header, sch, aliases); ok {
				if !used[key] {
					binding.TargetKey = key
					used[key] = true
				}
				break
			}
		}
		mapping.Columns = append(mapping.Columns, binding)
	}

	return mapping
}

// Validate checks that every required field of the schema has at least
// one source column. All missing fields are reported together.
func (s *MapperService) Validate(mapping *models.ColumnMapping, sch schema.TargetSchema) error {
	bound := mapping.BoundKeys()

	var missing []string
	for _, f := range sch.RequiredFields() {
		if !bound[f.Key] {
			missing = append(missing, f.Label)
		}
	}

	if len(missing) > 0 {
		return &MissingRequiredFieldsError{Fields: missing}
	}
	return nil
}

// matchAlias resolves the header against the curated legacy
// dictionary, case-insensitively. An exact alias always beats the
// fuzzy passes below.
func matchAlias(header string, _ schema.TargetSchema, aliases map[string]string) (string, bool) {
	if len(aliases) == 0 {
		return "", false
	}
	key, ok := aliases[strings.ToUpper(strings.TrimSpace(header))]
	return key, ok
}

// matchContainment compares the normalized header against each field's
// normalized label and raw key, in schema declaration order.
func matchContainment(header string, sch schema.TargetSchema, _ map[string]string) (string, bool) {
	h := normalizeText(header)
	for _, f := range sch.Fields {
		label := normalizeText(f.Label)
		key := strings.ToLower(f.Key)
		if strings.Contains(h, label) || strings.Contains(h, key) || strings.Contains(label, h) {
			return f.Key, true
		}
	}
	return "", false
}

// matchLabelWord is the last resort: a single word of a field's label
// found inside the header, e.g. "Preço diária" → "Valor Diária (R$)"
// via "diaria". Short words and unit suffixes are skipped to keep the
// net from catching everything.
func matchLabelWord(header string, sch schema.TargetSchema, _ map[string]string) (string, bool) {
	h := normalizeText(header)
	for _, f := range sch.Fields {
		for _, word := range strings.Fields(normalizeText(f.Label)) {
			if len(word) < 4 || strings.HasPrefix(word, "(") {
				continue
			}
			if strings.Contains(h, word) {
				return f.Key, true
			}
		}
	}
	return "", false
}

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText lowercases and removes diacritics (NFD decomposition,
// combining marks dropped)
func normalizeText(s string) string {
	out, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
