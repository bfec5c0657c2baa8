/*
Package qdrantfdw implements the scan adapter of the Qdrant foreign data wrapper.

A host engine exposes a Qdrant collection as a read-only foreign table. For every
scan it creates a Wrapper from the server options, then drives it through

	BeginScan -> IterScan ... -> EndScan

and finally Close. BeginScan resolves the collection named by the
`collection_name` table option; a collection that does not exist, a rejected
credential or an unreachable endpoint make the scan fail before any row is
requested. IterScan does not materialize points yet and reports the end of the
scan on its first call.

Options:

	server: endpoint (URL, https enables TLS, default port 6334)
	        credential (API key)
	        timeout (optional Go duration, default 5s)
	        check_compatibility (optional bool, default false)
	table:  collection_name

Validator checks the same keys at DDL time, before the host stores them.

# Errors

Every failure is an *Error whose Kind is KindOptions, KindRemote or KindState.
Report converts it into the host's fdw.ErrorReport:

	err := w.BeginScan(ctx, nil, nil, nil, nil, fdw.Options{"collection_name": "docs"})
	if err != nil {
	    report := fdw.ToReport(err) // e.g. HV00R for a missing collection
	}

# Dependency injection

FXModule provides a *Factory that picks up the optional logger, metrics and
tracer modules and closes leftover wrappers on shutdown.
*/
package qdrantfdw
