package hostsql

import (
	"io"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/qdrantfdw"
	"github.com/dolthub/go-mysql-server/sql"
)

// rowIter turns IterScan results into rows laid out by schema.
type rowIter struct {
	wrapper *qdrantfdw.Wrapper
	schema  sql.Schema
	closed  bool
}

var _ sql.RowIter = (*rowIter)(nil)

func (r *rowIter) Next(ctx *sql.Context) (sql.Row, error) {
	if r.closed {
		return nil, io.EOF
	}

	row, err := r.wrapper.IterScan(ctx)
	if err != nil {
		return nil, fdw.ToReport(err)
	}
	if row == nil {
		return nil, io.EOF
	}
	return toSQLRow(r.schema, row), nil
}

// Close ends the scan and releases the wrapper. Only the first call has an effect.
func (r *rowIter) Close(*sql.Context) error {
	if r.closed {
		return nil
	}
	r.closed = true

	_ = r.wrapper.EndScan()
	if err := r.wrapper.Close(); err != nil {
		return fdw.ToReport(err)
	}
	return nil
}

// toSQLRow places each cell under its schema column. Columns the wrapper did
// not produce are NULL.
func toSQLRow(schema sql.Schema, row *fdw.Row) sql.Row {
	out := make(sql.Row, len(schema))
	for i, col := range schema {
		if v, ok := row.Get(col.Name); ok {
			out[i] = v
		}
	}
	return out
}
