package lineage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces become underscores", "Sales DB", "Sales_DB"},
		{"slash becomes dash", "ETL/Spark", "ETL-Spark"},
		{"sentinel", "N/A", "N-A"},
		{"surrounding whitespace trimmed", "  Tableau \n", "Tableau"},
		{"embedded newline becomes underscore", "line1\nline2", "line1_line2"},
		{"double quotes dropped", `Say "hi"`, "Say_hi"},
		{"single quotes dropped", "O'Brien", "OBrien"},
		{"punctuation dropped", "A.B (C)", "AB_C"},
		{"inner tab dropped", "a\tb", "ab"},
		{"repeated spaces kept as underscores", "a  b", "a__b"},
		{"digits kept", "2024", "2024"},
		{"unicode letters kept", "Café Ü", "Café_Ü"},
		{"subscript digits kept", "H₂O", "H₂O"},
		{"superscript digits kept", "Tier²", "Tier²"},
		{"roman numerals kept", "Ⅻ Ledger", "Ⅻ_Ledger"},
		{"fractions kept", "½ share", "½_share"},
		{"dash and underscore kept", "raw_zone-1", "raw_zone-1"},
		{"only punctuation yields empty", "!!!", ""},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLabel(tt.in))
		})
	}
}

func TestSanitizeLabelProperties(t *testing.T) {
	inputs := []string{
		"Sales DB", "ETL/Spark", " \"quoted\" / path ", "multi\nline\ncell",
		"N/A", "tabs\tand\rreturns", "Ünïcödé / data", "a/b/c d e", "''", "__--__",
	}
	for _, in := range inputs {
		got := SanitizeLabel(in)
		assert.Equal(t, got, SanitizeLabel(got), "sanitizing %q twice must be a no-op", in)
		assert.False(t, strings.ContainsAny(got, " \t\r\n\"'/"), "label %q from %q has forbidden characters", got, in)
	}
}
