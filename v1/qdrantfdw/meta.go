package qdrantfdw

// Wrapper metadata reported to the host.
const (
	Name    = "QdrantFdw"
	Version = "0.1.0"
	Author  = "Aleph Alpha"
	Website = "https://github.com/Aleph-Alpha/qdrant-fdw"
)

// Metadata describes the wrapper to the host.
type Metadata struct {
	Name    string
	Version string
	Author  string
	Website string
}

// Meta returns the wrapper metadata.
func Meta() Metadata {
	return Metadata{
		Name:    Name,
		Version: Version,
		Author:  Author,
		Website: Website,
	}
}
