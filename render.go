package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Velocidex/ordereddict"
)

// printTables - print tables as aligned text, one block per table
func printTables(w io.Writer, tables []*Table) error {

	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "## %s\n", t.Name())

		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
		for _, row := range t.Rows {
			cells := make([]string, len(t.Columns))
			copy(cells, row)
			for j, c := range cells {
				if c == "" {
					cells[j] = "-"
				}
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

//
// tableDict - a table as an ordered dictionary, with each row keyed by
// column name in column order.
//
func tableDict(t *Table) *ordereddict.Dict {

	rows := make([]*ordereddict.Dict, 0, len(t.Rows))
	for _, row := range t.Rows {
		d := ordereddict.NewDict()
		for i, col := range t.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			d.Set(col, value)
		}
		rows = append(rows, d)
	}

	return ordereddict.NewDict().
		Set("zone", hostName(t.Zone)).
		Set("title", t.Title).
		Set("rows", rows)
}

// printTablesJSON - print tables as a json array
func printTablesJSON(w io.Writer, tables []*Table) error {

	out := make([]*ordereddict.Dict, 0, len(tables))
	for _, t := range tables {
		out = append(out, tableDict(t))
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
