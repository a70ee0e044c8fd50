package main

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/shuque/dnstablesort/tablesort"
)

//
// TableAdapter - what the sorter needs from a rendered table: pull out the
// key columns of each row, and put the rows back in a new order.
//
type TableAdapter interface {
	Name() string
	Parse(fields []string) ([]tablesort.Row, error)
	Refresh(ordered []tablesort.Row) error
}

//
// Table - one titled table of string cells. Zone is empty for tables that
// are not about a single zone.
//
type Table struct {
	Zone    string
	Title   string
	Columns []string
	Rows    [][]string
}

var _ TableAdapter = (*Table)(nil)

func newTable(zone, title string, columns ...string) *Table {
	return &Table{Zone: zone, Title: title, Columns: columns}
}

func (t *Table) addRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Name - table title, qualified by zone
func (t *Table) Name() string {
	if t.Zone == "" {
		return t.Title
	}
	return hostName(t.Zone) + ": " + t.Title
}

func (t *Table) column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

//
// Parse - one row record per table row, with the row index as its ID and
// the cells of the named columns as fields. A short row simply lacks the
// cells past its end.
//
func (t *Table) Parse(fields []string) ([]tablesort.Row, error) {

	indexes := make(map[string]int, len(fields))
	for _, f := range fields {
		i := t.column(f)
		if i < 0 {
			return nil, errors.Errorf("%s: column %q not found", t.Name(), f)
		}
		indexes[f] = i
	}

	rows := make([]tablesort.Row, len(t.Rows))
	for r, cells := range t.Rows {
		values := make(map[string]string, len(fields))
		for f, i := range indexes {
			if i < len(cells) {
				values[f] = cells[i]
			}
		}
		rows[r] = tablesort.Row{ID: r, Fields: values}
	}
	return rows, nil
}

// Refresh - reorder the table rows to match ordered, which must be a
// permutation of the rows handed out by Parse.
func (t *Table) Refresh(ordered []tablesort.Row) error {

	if len(ordered) != len(t.Rows) {
		return errors.Errorf("%s: %d rows in sort result, table has %d",
			t.Name(), len(ordered), len(t.Rows))
	}

	seen := make([]bool, len(t.Rows))
	newRows := make([][]string, len(t.Rows))
	for i, row := range ordered {
		if row.ID < 0 || row.ID >= len(t.Rows) || seen[row.ID] {
			return errors.Errorf("%s: bad row id %d in sort result", t.Name(), row.ID)
		}
		seen[row.ID] = true
		newRows[i] = t.Rows[row.ID]
	}
	t.Rows = newRows
	return nil
}

// SortTable - parse, sort, and refresh one table
func SortTable(a TableAdapter, spec tablesort.Spec) error {

	rows, err := a.Parse(spec.Fields())
	if err != nil {
		return err
	}
	ordered, err := tablesort.Sort(rows, spec)
	if err != nil {
		return errors.Wrapf(err, "sorting %s", a.Name())
	}
	return a.Refresh(ordered)
}

//
// sortTables - sort every table that has a specification. A table that
// fails to sort keeps its original order; all failures are returned
// together.
//
func sortTables(ctx context.Context, tables []*Table, specs tablesort.SpecSet) error {

	var errs *multierror.Error
	logger := zerolog.Ctx(ctx)

	for _, t := range tables {
		spec, ok := specs.Lookup(t.Title)
		if !ok {
			logger.Debug().Str("table", t.Name()).Msg("no sort specification, leaving order as is")
			continue
		}
		if err := SortTable(t, spec); err != nil {
			logger.Warn().Err(err).Str("table", t.Name()).Msg("table left unsorted")
			errs = multierror.Append(errs, err)
			continue
		}
		logger.Debug().Str("table", t.Name()).Int("rows", len(t.Rows)).Msg("table sorted")
	}

	return errs.ErrorOrNil()
}
