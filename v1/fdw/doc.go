// Package fdw defines the contract between a host query engine and an
// external-data-source connector (a foreign data wrapper).
//
// The host drives every wrapper through the same lifecycle:
//
//	validate options (DDL time, static)
//	construct(server options)
//	begin scan(quals, columns, sorts, limit, table options)
//	iterate rows until exhausted
//	end scan
//
// This package holds the shapes that cross that boundary: option mappings,
// pushdown hints, rows, catalog kinds and the ErrorReport every failure is
// rendered into. It contains no network code.
//
// # Options
//
// Construction and scans read required keys with RequireOption:
//
//	endpoint, err := fdw.RequireOption("endpoint", opts)
//	if err != nil {
//	    return err // *fdw.OptionsError
//	}
//
// DDL validation receives the raw "key=value" strings the host collected and
// uses CheckOptionsContain instead:
//
//	err := fdw.CheckOptionsContain(list, "collection_name")
//
// # Error reports
//
// Any error implementing Reporter is rendered by ToReport; anything else is
// reported as a generic wrapper error (SQLSTATE HV000).
package fdw
