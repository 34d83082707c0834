package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		header      []string
		records     [][]string
		wantColumns []string
		wantRows    []Row
	}{
		{
			name:        "pads short records",
			header:      []string{"a", "b", "c"},
			records:     [][]string{{"1"}, {"1", "2", "3"}},
			wantColumns: []string{"a", "b", "c"},
			wantRows:    []Row{{"1", "", ""}, {"1", "2", "3"}},
		},
		{
			name:        "truncates long records",
			header:      []string{"a"},
			records:     [][]string{{"1", "extra"}},
			wantColumns: []string{"a"},
			wantRows:    []Row{{"1"}},
		},
		{
			name:        "drops blank records",
			header:      []string{"a", "b"},
			records:     [][]string{{"", ""}, {}, {"x", ""}},
			wantColumns: []string{"a", "b"},
			wantRows:    []Row{{"x", ""}},
		},
		{
			name:        "renames duplicate and empty headers",
			header:      []string{"DCL", "DCL", "", "DCL"},
			records:     nil,
			wantColumns: []string{"DCL", "DCL.1", "Unnamed: 2", "DCL.2"},
			wantRows:    []Row{},
		},
		{
			name:        "keeps surrounding whitespace in header names",
			header:      []string{" DCL ", "DCL", "Compliance "},
			records:     nil,
			wantColumns: []string{" DCL ", "DCL", "Compliance "},
			wantRows:    []Row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.header, tt.records)
			assert.Equal(t, tt.wantColumns, got.Columns)
			assert.Equal(t, tt.wantRows, got.Rows)
		})
	}
}

func TestTableAccessors(t *testing.T) {
	tbl := New([]string{"x", "y"}, [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}})

	assert.True(t, tbl.HasColumn("x"))
	assert.False(t, tbl.HasColumn("X"))
	assert.Equal(t, 1, tbl.ColumnIndex("y"))
	assert.Equal(t, -1, tbl.ColumnIndex("z"))
	assert.Equal(t, "4", tbl.Value(tbl.Rows[1], "y"))
	assert.Equal(t, "", tbl.Value(tbl.Rows[1], "z"))
	assert.Equal(t, "", tbl.Value(Row{"only"}, "y"))
	assert.Equal(t, 3, tbl.Len())

	head := tbl.Head(2)
	require.Equal(t, 2, head.Len())
	assert.Equal(t, "3", head.Value(head.Rows[1], "x"))
	assert.Equal(t, 3, tbl.Head(10).Len())
	assert.Equal(t, 3, tbl.Head(-1).Len())
}

func TestClone(t *testing.T) {
	tbl := New([]string{"x"}, [][]string{{"1"}})
	c := tbl.Clone()
	c.Rows[0][0] = "changed"
	c.Columns[0] = "renamed"

	assert.Equal(t, "1", tbl.Rows[0][0])
	assert.Equal(t, "x", tbl.Columns[0])
	assert.Equal(t, 0, c.ColumnIndex("renamed"), "clone index is rebuilt from its own columns")
	assert.Equal(t, -1, c.ColumnIndex("x"))
	assert.Equal(t, 0, tbl.ColumnIndex("x"))
}

func TestColumnIndexFollowsHeaderEdits(t *testing.T) {
	tbl := New([]string{"a", "b"}, [][]string{{"1", "2"}})
	require.Equal(t, 1, tbl.ColumnIndex("b"))

	tbl.Columns[1] = "Compliance"
	assert.Equal(t, -1, tbl.ColumnIndex("b"))
	assert.Equal(t, 1, tbl.ColumnIndex("Compliance"))
	assert.Equal(t, "2", tbl.Value(tbl.Rows[0], "Compliance"))

	head := tbl.Head(1)
	head.Columns = []string{"x", "y"}
	assert.Equal(t, 0, head.ColumnIndex("x"))
	assert.Equal(t, -1, tbl.ColumnIndex("x"))
}
