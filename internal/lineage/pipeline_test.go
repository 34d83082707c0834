package lineage

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingColumns(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{
			name:   "all present",
			header: DefaultRequiredColumns(),
			want:   []string{},
		},
		{
			name:   "extra columns are fine",
			header: append(DefaultRequiredColumns(), "Owner"),
			want:   []string{},
		},
		{
			name:   "two missing, reported in required order",
			header: []string{ColumnUseCase, ColumnFunctionalArea, ColumnSource, ColumnAggregate, ColumnAnalyze, ColumnPublish},
			want:   []string{ColumnDCL, ColumnCompliance},
		},
		{
			name:   "case sensitive",
			header: []string{"dcl"},
			want:   DefaultRequiredColumns(),
		},
		{
			name: "surrounding whitespace does not match",
			header: []string{
				ColumnUseCase, ColumnFunctionalArea, "  DCL  ", ColumnSource,
				ColumnAggregate, ColumnAnalyze, ColumnPublish, "Compliance ",
			},
			want: []string{ColumnDCL, ColumnCompliance},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := table.New(tt.header, nil)
			assert.Equal(t, tt.want, MissingColumns(tbl, DefaultRequiredColumns()))
		})
	}
}

func TestMissingColumnsFromCSVHeader(t *testing.T) {
	header := "Use Case/Scenario,Functional Area,  DCL  ,Where data is sourced from," +
		"Platform used to aggregate data,Platform used to analyze data,Platform used to publish curated data,Compliance \n"
	tbl, err := table.Read(strings.NewReader(header+"a,b,c,d,e,f,g,h\n"), "inventory.csv", table.FormatCSV, table.ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{ColumnDCL, ColumnCompliance}, MissingColumns(tbl, DefaultRequiredColumns()))
	var missingErr *MissingColumnsError
	require.ErrorAs(t, Validate(tbl, DefaultRequiredColumns()), &missingErr)
	assert.Equal(t, []string{ColumnDCL, ColumnCompliance}, missingErr.Missing)
}

func TestNormalize(t *testing.T) {
	tbl := table.New([]string{"a", "b"}, [][]string{{"x", ""}, {"", "y"}, {"z"}})

	got := Normalize(tbl, Sentinel)

	assert.Equal(t, []table.Row{{"x", "N/A"}, {"N/A", "y"}, {"z", "N/A"}}, got.Rows)
	assert.Equal(t, "", tbl.Rows[0][1], "input must not be mutated")
	assert.Equal(t, got.Rows, Normalize(got, Sentinel).Rows, "normalize must be idempotent")
}

func TestProcessRoundTrip(t *testing.T) {
	row := lineageRow{"Sales DB", "ETL/Spark", "Tableau", "Data Portal", "SOX"}
	res, err := Process(DefaultOptions(), newLineageTable(row, row))
	require.NoError(t, err)

	want := "flowchart LR;\n" +
		"ETL-Spark --> Tableau;\n" +
		"Sales_DB --> ETL-Spark;\n" +
		"Tableau --> Data_Portal;"
	assert.Equal(t, want, res.Diagram)
	assert.Equal(t, 2, res.Stats.Rows)
}

func TestProcessMissingColumns(t *testing.T) {
	header := DefaultRequiredColumns()[:6]
	tbl := table.New(header, [][]string{{"a", "b", "c", "d", "e", "f"}})

	res, err := Process(DefaultOptions(), tbl)
	assert.Nil(t, res)

	var missingErr *MissingColumnsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{ColumnPublish, ColumnCompliance}, missingErr.Missing)
	assert.Contains(t, err.Error(), ColumnPublish)
}

func TestProcessMissingValueBecomesNode(t *testing.T) {
	tbl := newLineageTable(lineageRow{"Sales DB", "ETL/Spark", "", "Data Portal", ""})

	res, err := Process(DefaultOptions(), tbl)
	require.NoError(t, err)

	assert.Equal(t, Sentinel, res.Table.Value(res.Table.Rows[0], ColumnAnalyze))
	assert.Equal(t, []string{
		"ETL-Spark --> N-A;",
		"N-A --> Data_Portal;",
		"Sales_DB --> ETL-Spark;",
	}, res.Edges.Lines())
	assert.True(t, res.Graph.HasNode("N-A"))

	e, ok := res.Graph.Edge("Sales_DB", "ETL-Spark")
	require.True(t, ok)
	assert.Equal(t, Sentinel, e.Compliance)
}

func TestProcessIsInvariantUnderRowOrder(t *testing.T) {
	rows := []lineageRow{
		{"Sales DB", "ETL/Spark", "Tableau", "Data Portal", "SOX"},
		{"CRM", "Fivetran", "Looker", "Confluence", "GDPR"},
		{"ERP", "ETL/Spark", "Power BI", "SharePoint", ""},
		{"Sales DB", "Airflow", "Tableau", "Data Portal", "SOX"},
		{"Web Logs", "Kafka", "Spark", "Spark", ""},
		{"CRM", "Fivetran", "Looker", "Confluence", "HIPAA"},
	}
	base, err := Process(DefaultOptions(), newLineageTable(rows...))
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]lineageRow(nil), rows...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := Process(DefaultOptions(), newLineageTable(shuffled...))
		require.NoError(t, err)
		assert.Equal(t, base.Diagram, got.Diagram)
	}
}

func TestProcessSummary(t *testing.T) {
	tbl := newLineageTable(
		lineageRow{"A", "x", "x", "x", "A"},
		lineageRow{"B", "x", "x", "x", "B"},
		lineageRow{"A", "x", "x", "x", "A"},
		lineageRow{"", "x", "x", "x", "N/A"},
	)

	res, err := Process(DefaultOptions(), tbl)
	require.NoError(t, err)

	counts := SummaryCounts(res.Summary)
	assert.Equal(t, 3, counts[ColumnSource])
	assert.Equal(t, 3, counts[ColumnCompliance])
	assert.Equal(t, 1, counts[ColumnAggregate])
	assert.Equal(t, 1, counts[ColumnDCL])

	require.Len(t, res.Summary, len(DefaultRequiredColumns()))
	for i, col := range DefaultRequiredColumns() {
		assert.Equal(t, col, res.Summary[i].Column)
	}
}

func TestProcessOptions(t *testing.T) {
	tbl := newLineageTable(lineageRow{"a", "b", "c", "d", ""})

	t.Run("direction", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Direction = "td"
		res, err := Process(opts, tbl)
		require.NoError(t, err)
		assert.Equal(t, "flowchart TD;\na --> b;\nb --> c;\nc --> d;", res.Diagram)
		assert.Equal(t, "TD", res.Direction)
	})

	t.Run("empty sentinel and direction use defaults", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Sentinel = ""
		opts.Direction = ""
		require.NoError(t, opts.Validate())
		assert.Equal(t, Sentinel, opts.Sentinel)
		assert.Equal(t, DefaultDirection, opts.Direction)
	})

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"unknown direction", func(o *Options) { o.Direction = "diagonal" }},
		{"empty required list", func(o *Options) { o.RequiredColumns = nil }},
		{"stage not required", func(o *Options) { o.Stages.Publish = "Owner" }},
		{"stage unset", func(o *Options) { o.Stages.Compliance = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			_, err := Process(opts, tbl)
			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr), "got %v", err)
		})
	}

	_, err := Process(DefaultOptions(), nil)
	assert.Error(t, err)
}

func TestSerialize(t *testing.T) {
	edges := NewEdgeSet()
	assert.Equal(t, "flowchart LR;", Serialize(edges, ""))

	edges.AddEdge(Edge{From: "b", To: "c"})
	edges.AddEdge(Edge{From: "B", To: "c"})
	edges.AddEdge(Edge{From: "", To: "a"})
	edges.AddEdge(Edge{From: "a", To: "b"})

	assert.Equal(t, "flowchart RL;\n--> a;\nB --> c;\na --> b;\nb --> c;", Serialize(edges, "RL"))
}
