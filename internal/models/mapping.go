package models

// TargetIgnore marks a source column the import should skip. The UI
// sends it spelled out; internally an empty target means the same.
const TargetIgnore = "ignore"

// ColumnBinding ties one source column to a target field key.
// TargetKey "" (or TargetIgnore) means the column is not imported.
type ColumnBinding struct {
	SourceHeader string `json:"source_header"`
	TargetKey    string `json:"target_key"`
}

// ColumnMapping holds one binding per source column, in the order the
// headers appeared in the file. The importer applies bindings in this
// order, so when two columns point at the same target the later column
// wins deterministically.
type ColumnMapping struct {
	Columns []ColumnBinding `json:"columns"`
}

// Ignored reports whether a binding skips its column
func (b ColumnBinding) Ignored() bool {
	return b.TargetKey == "" || b.TargetKey == TargetIgnore
}

// TargetOf returns the bound target key for a source header
func (m *ColumnMapping) TargetOf(header string) (string, bool) {
	for _, c := range m.Columns {
		if c.SourceHeader == header && !c.Ignored() {
			return c.TargetKey, true
		}
	}
	return "", false
}

// BoundKeys returns the set of target keys with at least one
// non-ignored source column
func (m *ColumnMapping) BoundKeys() map[string]bool {
	keys := make(map[string]bool)
	for _, c := range m.Columns {
		if !c.Ignored() {
			keys[c.TargetKey] = true
		}
	}
	return keys
}

// Set rebinds a source header, keeping column order intact. Unknown
// headers are appended so operator edits can add columns the
// auto-mapper left out.
func (m *ColumnMapping) Set(header, targetKey string) {
	if targetKey == TargetIgnore {
		targetKey = ""
	}
	for i, c := range m.Columns {
		if c.SourceHeader == header {
			m.Columns[i].TargetKey = targetKey
			return
		}
	}
	m.Columns = append(m.Columns, ColumnBinding{SourceHeader: header, TargetKey: targetKey})
}
