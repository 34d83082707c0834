package lineage

import (
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
)

type lineageRow struct {
	source, aggregate, analyze, publish, compliance string
}

// newLineageTable builds a table with the default header.
func newLineageTable(rows ...lineageRow) *table.Table {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			"use case", "area", "dcl",
			r.source, r.aggregate, r.analyze, r.publish, r.compliance,
		})
	}
	return table.New(DefaultRequiredColumns(), records)
}
