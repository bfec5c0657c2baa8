// Package qdrant implements the remote client of the Qdrant foreign data
// wrapper on top of the official Qdrant Go client.
//
// The client owns one lazily-dialed gRPC connection built from an endpoint URL
// and an API key, and implements vectordb.CollectionResolver:
//
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{
//	    Config: qdrant.FromEndpoint("https://xyz.cloud.qdrant.io").
//	        WithApiKey(os.Getenv("QDRANT_API_KEY")),
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	collection, err := client.FetchCollection(ctx, "docs")
//	if vectordb.IsNotFound(err) {
//	    // ...
//	}
//
// # Endpoints
//
// "https://host" enables TLS, "http://host" and a bare "host" do not. The port
// defaults to 6334 (gRPC).
//
// # Errors
//
// Every failure is a *vectordb.RemoteError. TranslateError derives the kind
// from the gRPC status code first and falls back to the message text, so
// callers can use vectordb.IsNotFound, vectordb.IsUnauthorized and
// vectordb.IsConnectionError without importing gRPC.
//
// # Construction
//
// Construction does not contact the service unless CheckCompatibility is set.
// Use HealthCheck for an explicit readiness probe.
package qdrant
