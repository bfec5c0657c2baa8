/*
Package hostsql binds the Qdrant scan adapter to go-mysql-server.

Foreign servers and foreign tables are declared on a Database, which checks
their options with the adapter's validator exactly like a host checks DDL:

	db := hostsql.NewDatabase("qdrant", qdrantfdw.NewFactory(qdrantfdw.FactoryParams{}))

	err := db.CreateServer("cloud", fdw.Options{
	    "endpoint":   "https://xyz.cloud.qdrant.io",
	    "credential": apiKey,
	})

	err = db.CreateForeignTable("docs", "cloud", sql.Schema{
	    {Name: "id", Type: types.Int64},
	}, fdw.Options{"collection_name": "docs"})

Rejected options come back as an fdw.ErrorReport carrying the SQLSTATE.

Each foreign table is a read-only sql.Table with one partition. Reading the
partition creates a wrapper from the server options, begins a scan with the
projected columns and the table options, and ends the scan and closes the
wrapper when the row iterator is closed.

Verify probes every table with bounded concurrency, which is useful as a
readiness check after the catalog has been declared.
*/
package hostsql
