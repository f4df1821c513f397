package commands

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// resultSet is a fully read query result.
type resultSet struct {
	Columns []string
	Rows    [][]any
}

// records returns the rows as column-keyed maps for json and yaml output.
func (r *resultSet) records() []map[string]any {
	out := make([]map[string]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		rec := make(map[string]any, len(r.Columns))
		for i, col := range r.Columns {
			rec[col] = row[i]
		}
		out = append(out, rec)
	}
	return out
}

func readResults(rows *sql.Rows) (*resultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := &resultSet{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, values)
	}
	return rs, rows.Err()
}

func renderResults(w io.Writer, rows *sql.Rows, format string) error {
	rs, err := readResults(rows)
	if err != nil {
		return err
	}
	return renderResultSet(w, rs, format)
}

// renderResultSet writes rs in one of the output formats: table, json,
// csv, md or yaml.
func renderResultSet(w io.Writer, rs *resultSet, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rs.records())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rs.records()); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		newResultWriter(w, rs).RenderCSV()
		return nil
	case "md", "markdown":
		if len(rs.Rows) == 0 {
			_, _ = fmt.Fprintln(w, "(0 rows)")
			return nil
		}
		newResultWriter(w, rs).RenderMarkdown()
		return nil
	default:
		if len(rs.Rows) == 0 {
			_, _ = fmt.Fprintln(w, "(0 rows)")
			return nil
		}
		t := newResultWriter(w, rs)
		t.SetStyle(table.StyleLight)
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rs.Rows))
		return nil
	}
}

func newResultWriter(w io.Writer, rs *resultSet) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := make(table.Row, len(rs.Columns))
	for i, col := range rs.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, values := range rs.Rows {
		row := make(table.Row, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		t.AppendRow(row)
	}
	return t
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func listTablesFromDB(ctx context.Context, w io.Writer, db *sql.DB, format string) error {
	rows, err := db.QueryContext(ctx, `
		SELECT name, type
		FROM sqlite_master
		WHERE type IN ('table', 'view')
		AND name NOT LIKE 'sqlite_%'
		AND name NOT LIKE 'goose_%'
		ORDER BY type DESC, name
	`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	return renderResults(w, rows, format)
}

// columnInfo represents schema column information.
type columnInfo struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Nullable string `json:"nullable" yaml:"nullable"`
	Default  string `json:"default" yaml:"default"`
	PK       bool   `json:"pk" yaml:"pk"`
}

func showSchemaFromDB(ctx context.Context, w io.Writer, db *sql.DB, tableName, format string) error {
	var objType string
	err := db.QueryRowContext(ctx, `
		SELECT type FROM sqlite_master
		WHERE name = ? AND type IN ('table', 'view')
	`, tableName).Scan(&objType)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("table or view '%s' not found", tableName)
	}
	if err != nil {
		return err
	}

	// Identifier is checked against sqlite_master above.
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", tableName))
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	var columns []columnInfo
	for rows.Next() {
		var cid, notNull, pk int
		var name, colType string
		var dflt sql.NullString

		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return err
		}

		col := columnInfo{Name: name, Type: colType, Nullable: "YES", PK: pk == 1}
		if notNull == 1 {
			col.Nullable = "NO"
		}
		if dflt.Valid {
			col.Default = dflt.String
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"name": tableName, "type": objType, "columns": columns})
	}

	title := "Table"
	if objType == "view" {
		title = "View"
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", title, tableName)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Type", "Nullable", "Default", "PK"})
	for _, col := range columns {
		pk := ""
		if col.PK {
			pk = "yes"
		}
		t.AppendRow(table.Row{col.Name, col.Type, col.Nullable, col.Default, pk})
	}
	t.Render()
	return nil
}
