package hostsql

import (
	"context"
	"io"
	"strings"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/qdrantfdw"
	"github.com/dolthub/go-mysql-server/sql"
)

// ForeignTable is a read-only table whose rows come from one scan of a
// Qdrant collection. It has exactly one partition.
type ForeignTable struct {
	name          string
	schema        sql.Schema
	projections   []string
	serverOptions fdw.Options
	options       fdw.Options
	factory       *qdrantfdw.Factory
}

var _ sql.Table = (*ForeignTable)(nil)
var _ sql.ProjectedTable = (*ForeignTable)(nil)

func newForeignTable(name string, schema sql.Schema, serverOptions, options fdw.Options, factory *qdrantfdw.Factory) *ForeignTable {
	sch := make(sql.Schema, len(schema))
	for i, col := range schema {
		c := *col
		c.Source = name
		sch[i] = &c
	}
	return &ForeignTable{
		name:          name,
		schema:        sch,
		serverOptions: serverOptions,
		options:       options,
		factory:       factory,
	}
}

func (t *ForeignTable) Name() string               { return t.name }
func (t *ForeignTable) String() string             { return t.name }
func (t *ForeignTable) Schema() sql.Schema         { return t.schema }
func (t *ForeignTable) Collation() sql.CollationID { return sql.Collation_Default }

func (t *ForeignTable) Partitions(*sql.Context) (sql.PartitionIter, error) {
	return &partitionIter{}, nil
}

// PartitionRows starts a scan on a fresh wrapper. The returned iterator owns
// the wrapper and releases it on Close.
func (t *ForeignTable) PartitionRows(ctx *sql.Context, _ sql.Partition) (sql.RowIter, error) {
	w, err := t.factory.New(t.serverOptions)
	if err != nil {
		return nil, fdw.ToReport(err)
	}

	if err := w.BeginScan(ctx, nil, t.columns(), nil, nil, t.options); err != nil {
		_ = w.Close()
		return nil, fdw.ToReport(err)
	}

	return &rowIter{wrapper: w, schema: t.schema}, nil
}

func (t *ForeignTable) WithProjections(colNames []string) sql.Table {
	projected := make(sql.Schema, 0, len(colNames))
	for _, name := range colNames {
		if i := t.schema.IndexOfColName(name); i >= 0 {
			projected = append(projected, t.schema[i])
		}
	}

	nt := *t
	nt.schema = projected
	nt.projections = colNames
	return &nt
}

func (t *ForeignTable) Projections() []string {
	return t.projections
}

// columns describes the schema to the wrapper. Num is the 1-based position.
func (t *ForeignTable) columns() []fdw.Column {
	cols := make([]fdw.Column, len(t.schema))
	for i, col := range t.schema {
		cols[i] = fdw.Column{
			Name: col.Name,
			Num:  i + 1,
			Type: strings.ToLower(col.Type.String()),
		}
	}
	return cols
}

func (t *ForeignTable) probe(ctx context.Context) error {
	w, err := t.factory.New(t.serverOptions)
	if err != nil {
		return fdw.ToReport(err)
	}
	defer func() { _ = w.Close() }()

	if err := w.BeginScan(ctx, nil, t.columns(), nil, nil, t.options); err != nil {
		return fdw.ToReport(err)
	}
	return w.EndScan()
}

type partition struct{}

func (partition) Key() []byte { return []byte("single") }

// partitionIter yields a single partition.
type partitionIter struct {
	done bool
}

func (p *partitionIter) Next(*sql.Context) (sql.Partition, error) {
	if p.done {
		return nil, io.EOF
	}
	p.done = true
	return partition{}, nil
}

func (p *partitionIter) Close(*sql.Context) error {
	return nil
}
