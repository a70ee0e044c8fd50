package tablesort

import (
	"fmt"
	"sort"
)

//
// Row - one table row to be ordered: an identifier chosen by the caller
// (typically the row's position in the table) and the raw cell values,
// keyed by column name.
//
type Row struct {
	ID     int
	Fields map[string]string
}

// Key - one column of a sort specification and the comparator ordering it.
type Key struct {
	Field   string
	Compare Comparator
}

//
// Spec - a sort specification. The first key is the primary key, later
// keys break ties in order.
//
type Spec struct {
	Title string
	Keys  []Key
}

// Fields returns the column names of the specification's keys, in order.
func (s Spec) Fields() []string {
	fields := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		fields[i] = k.Field
	}
	return fields
}

// Validate checks that the specification can order anything at all.
func (s Spec) Validate() error {
	if len(s.Keys) == 0 {
		return ErrEmptySpec
	}
	for _, k := range s.Keys {
		if k.Compare == nil {
			return fmt.Errorf("%w: %q", ErrNilComparator, k.Field)
		}
	}
	return nil
}

//
// Sort returns the rows ordered by spec. The sort is stable: rows that
// compare equal on every key keep their input order. The input slice is
// not modified.
//
// Every row must carry every key field, and every value must be acceptable
// to its key's comparator; otherwise Sort returns a *MissingFieldError or
// the comparator's error (usually a *MalformedValueError) and no rows.
//
func Sort(rows []Row, spec Spec) ([]Row, error) {

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := checkRows(rows, spec); err != nil {
		return nil, err
	}

	ordered := make([]Row, len(rows))
	copy(ordered, rows)

	var sortErr error
	sort.SliceStable(ordered, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		r, err := compareRows(ordered[i], ordered[j], spec.Keys)
		if err != nil {
			sortErr = err
			return false
		}
		return r < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}

	return ordered, nil
}

// compareRows compares 2 rows key by key; the first non-equal key decides.
func compareRows(a, b Row, keys []Key) (int, error) {
	for _, k := range keys {
		r, err := k.Compare(a.Fields[k.Field], b.Fields[k.Field])
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", k.Field, err)
		}
		if r != 0 {
			return r, nil
		}
	}
	return 0, nil
}

//
// checkRows makes sure every row has every key field, and that each value
// is accepted by its comparator, by comparing it with itself. Failures are
// reported up front instead of partway through the sort.
//
func checkRows(rows []Row, spec Spec) error {
	for _, row := range rows {
		for _, k := range spec.Keys {
			v, ok := row.Fields[k.Field]
			if !ok {
				return &MissingFieldError{RowID: row.ID, Field: k.Field}
			}
			if _, err := k.Compare(v, v); err != nil {
				return fmt.Errorf("row %d: field %q: %w", row.ID, k.Field, err)
			}
		}
	}
	return nil
}
