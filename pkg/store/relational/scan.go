package relational

import (
	"database/sql"
	"strings"

	"github.com/darthunder/bases/pkg/types"
)

// materialize reads every remaining row of rows into a Table. Declared
// column lengths up to maxHint become width hints.
func materialize(rows *sql.Rows, maxHint int) (*types.Table, error) {
	cts, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	t := &types.Table{Columns: make([]types.Column, len(cts))}
	for i, ct := range cts {
		col := types.Column{Name: strings.ToUpper(ct.Name())}
		if n, ok := ct.Length(); ok && n > 0 && int(n) <= maxHint {
			col.WidthHint = int(n)
		}
		t.Columns[i] = col
	}

	for rows.Next() {
		cells := make([]interface{}, len(cts))
		ptrs := make([]interface{}, len(cts))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(types.Row, len(cts))
		for i, c := range cells {
			row[i] = types.FromAny(c)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
