package fdw

import "fmt"

// Options is a set of wrapper options declared on a foreign server or table.
type Options map[string]string

// CatalogKind identifies which catalog object a set of options belongs to.
type CatalogKind int

const (
	// CatalogUnknown is used when the host does not say which object is validated.
	CatalogUnknown CatalogKind = iota
	// CatalogServer marks server-level options (connection parameters).
	CatalogServer
	// CatalogTable marks table-level options (remote object addressing).
	CatalogTable
)

func (k CatalogKind) String() string {
	switch k {
	case CatalogServer:
		return "server"
	case CatalogTable:
		return "table"
	default:
		return "unknown"
	}
}

// Qual is a single filter condition offered for pushdown, e.g. `id = 42`.
type Qual struct {
	Field    string
	Operator string
	Value    any
	// UseOr is set for `field op ANY(array)` style conditions.
	UseOr bool
}

func (q Qual) String() string {
	return fmt.Sprintf("%s %s %v", q.Field, q.Operator, q.Value)
}

// Column is a column the host needs from the scan.
type Column struct {
	Name string
	// Num is the 1-based attribute position in the foreign table.
	Num int
	// Type is the host's type name for the column, e.g. "text".
	Type string
}

// Sort is a requested ordering on one column.
type Sort struct {
	Field      string
	Reversed   bool
	NullsFirst bool
}

// Limit is a requested `LIMIT count OFFSET offset`.
type Limit struct {
	Count  int64
	Offset int64
}

// ScanHints groups the advisory pushdown inputs of a scan.
type ScanHints struct {
	Quals   []Qual
	Columns []Column
	Sorts   []Sort
	Limit   *Limit
}

// Row is one output row: column names paired with their cell values.
type Row struct {
	Cols  []string
	Cells []any
}

// Push appends one column value.
func (r *Row) Push(col string, cell any) {
	r.Cols = append(r.Cols, col)
	r.Cells = append(r.Cells, cell)
}

// Clear empties the row so it can be reused for the next fetch.
func (r *Row) Clear() {
	r.Cols = r.Cols[:0]
	r.Cells = r.Cells[:0]
}

// Len returns the number of cells in the row.
func (r *Row) Len() int {
	return len(r.Cells)
}

// Get returns the cell for col and whether it is present.
func (r *Row) Get(col string) (any, bool) {
	for i, c := range r.Cols {
		if c == col {
			return r.Cells[i], true
		}
	}
	return nil, false
}
