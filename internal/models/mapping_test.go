package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnMapping_Set(t *testing.T) {
	m := &ColumnMapping{Columns: []ColumnBinding{
		{SourceHeader: "A", TargetKey: "name"},
		{SourceHeader: "B", TargetKey: ""},
	}}

	m.Set("B", "dailyRate")
	key, ok := m.TargetOf("B")
	require.True(t, ok)
	assert.Equal(t, "dailyRate", key)

	// the ignore sentinel clears a binding
	m.Set("A", TargetIgnore)
	_, ok = m.TargetOf("A")
	assert.False(t, ok)

	// unknown headers are appended, order preserved
	m.Set("C", "notes")
	assert.Equal(t, "C", m.Columns[2].SourceHeader)
}

func TestColumnMapping_BoundKeys(t *testing.T) {
	m := &ColumnMapping{Columns: []ColumnBinding{
		{SourceHeader: "A", TargetKey: "name"},
		{SourceHeader: "B", TargetKey: "ignore"},
		{SourceHeader: "C", TargetKey: ""},
		{SourceHeader: "D", TargetKey: "name"},
	}}

	assert.Equal(t, map[string]bool{"name": true}, m.BoundKeys())
}

func TestColumnMapping_JSONRoundTrip(t *testing.T) {
	m := &ColumnMapping{Columns: []ColumnBinding{
		{SourceHeader: "DESCRICAO", TargetKey: "name"},
		{SourceHeader: "XPTO", TargetKey: ""},
	}}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back ColumnMapping
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *m, back)
}
