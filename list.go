package main

import (
	"io"
	"os"
	"strconv"

	"github.com/Limetric/ddlplan/migration"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// minSQLWidth keeps the SQL column readable on narrow terminals.
const minSQLWidth = 30

// writePlanTable writes one row per item: version, op, table and rendered SQL.
// sqlWidth > 0 caps cell width and wraps longer SQL.
func writePlanTable(w io.Writer, items []migration.Item, sqlWidth int) error {
	opts := []tablewriter.Option{
		tablewriter.WithHeader([]string{"VERSION", "OP", "TABLE", "SQL"}),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Symbols: tw.NewSymbols(tw.StyleNone),
			Settings: tw.Settings{
				Lines:      tw.Lines{ShowHeaderLine: tw.Off},
				Separators: tw.Separators{BetweenRows: tw.Off, BetweenColumns: tw.On},
			},
		})),
	}
	if sqlWidth > 0 {
		opts = append(opts,
			tablewriter.WithRowAutoWrap(tw.WrapNormal),
			tablewriter.WithRowMaxWidth(sqlWidth),
		)
	}
	table := tablewriter.NewTable(w, opts...)

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.Version),
			migration.Op(it.Statement),
			it.Statement.TableName(),
			it.Statement.Render(),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// terminalSQLWidth returns the SQL column width for stdout, or 0 when
// stdout is not a terminal.
func terminalSQLWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	// Version, Op and Table columns plus separators take roughly half.
	if w := width / 2; w > minSQLWidth {
		return w
	}
	return minSQLWidth
}
