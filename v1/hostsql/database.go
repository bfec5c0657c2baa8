package hostsql

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/logger"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/qdrantfdw"
	"github.com/dolthub/go-mysql-server/sql"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrServerExists is returned when a foreign server name is already taken.
	ErrServerExists = errors.New("foreign server already exists")

	// ErrServerNotFound is returned when a foreign table names an unknown server.
	ErrServerNotFound = errors.New("foreign server not found")

	// ErrTableExists is returned when a foreign table name is already taken.
	ErrTableExists = errors.New("foreign table already exists")
)

// Database exposes foreign tables backed by Qdrant collections as a
// read-only go-mysql-server database.
//
// Foreign servers and tables are declared programmatically and validated the
// way a host validates DDL options. Database is safe for concurrent use.
type Database struct {
	name        string
	factory     *qdrantfdw.Factory
	logger      logger.Logger
	concurrency int

	mu      sync.RWMutex
	servers map[string]fdw.Options
	tables  map[string]*ForeignTable
}

var _ sql.Database = (*Database)(nil)

// NewDatabase creates an empty database whose tables scan through factory.
func NewDatabase(name string, factory *qdrantfdw.Factory) *Database {
	return &Database{
		name:        name,
		factory:     factory,
		logger:      logger.NewNop(),
		concurrency: DefaultVerifyConcurrency,
		servers:     make(map[string]fdw.Options),
		tables:      make(map[string]*ForeignTable),
	}
}

// WithLogger sets the logger used for DDL and verification events.
func (d *Database) WithLogger(l logger.Logger) *Database {
	if l != nil {
		d.logger = l
	}
	return d
}

// WithVerifyConcurrency sets the number of tables Verify probes at once.
func (d *Database) WithVerifyConcurrency(n int) *Database {
	if n > 0 {
		d.concurrency = n
	}
	return d
}

func (d *Database) Name() string {
	return d.name
}

func (d *Database) IsReadOnly() bool {
	return true
}

// CreateServer declares a foreign server. The options are validated as
// server options; a rejected set is returned as an fdw.ErrorReport.
func (d *Database) CreateServer(name string, options fdw.Options) error {
	if err := d.factory.Validate(fdw.OptionList(options), fdw.CatalogServer); err != nil {
		return fdw.ToReport(err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := d.servers[key]; ok {
		return fmt.Errorf("%w: %s", ErrServerExists, name)
	}
	d.servers[key] = maps.Clone(options)

	d.logger.Info("[HostSQL] Foreign server created", nil, map[string]interface{}{
		"server":   name,
		"endpoint": options[qdrantfdw.OptionEndpoint],
	})
	return nil
}

// CreateForeignTable declares a foreign table on an existing server.
// The options are validated as table options; a rejected set is returned as
// an fdw.ErrorReport.
func (d *Database) CreateForeignTable(name, server string, schema sql.Schema, options fdw.Options) error {
	if err := d.factory.Validate(fdw.OptionList(options), fdw.CatalogTable); err != nil {
		return fdw.ToReport(err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	serverOptions, ok := d.servers[strings.ToLower(server)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrServerNotFound, server)
	}
	key := strings.ToLower(name)
	if _, ok := d.tables[key]; ok {
		return fmt.Errorf("%w: %s", ErrTableExists, name)
	}

	d.tables[key] = newForeignTable(name, schema, serverOptions, maps.Clone(options), d.factory)

	d.logger.Info("[HostSQL] Foreign table created", nil, map[string]interface{}{
		"table":      name,
		"server":     server,
		"collection": options[qdrantfdw.OptionCollectionName],
		"columns":    len(schema),
	})
	return nil
}

func (d *Database) GetTableInsensitive(_ *sql.Context, tblName string) (sql.Table, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.tables[strings.ToLower(tblName)]
	if !ok {
		return nil, false, nil
	}
	return t, true, nil
}

func (d *Database) GetTableNames(_ *sql.Context) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.tables))
	for _, t := range d.tables {
		names = append(names, t.name)
	}
	sort.Strings(names)
	return names, nil
}

// Verify probes every foreign table by starting and ending one scan on a
// fresh wrapper. Probes run concurrently, at most WithVerifyConcurrency at a
// time, and every failure is reported in the joined error.
func (d *Database) Verify(ctx context.Context) error {
	d.mu.RLock()
	tables := make([]*ForeignTable, 0, len(d.tables))
	for _, t := range d.tables {
		tables = append(tables, t)
	}
	d.mu.RUnlock()

	sort.Slice(tables, func(i, j int) bool { return tables[i].name < tables[j].name })

	errs := make([]error, len(tables))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for i, t := range tables {
		g.Go(func() error {
			if err := t.probe(ctx); err != nil {
				d.logger.Warn("[HostSQL] Foreign table probe failed", err, map[string]interface{}{
					"table": t.name,
				})
				errs[i] = fmt.Errorf("foreign table %s: %w", t.name, err)
			}
			// a failed probe must not cancel the others
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
