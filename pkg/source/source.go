package source

import "github.com/Yunsang-Jeong/hclparse/pkg/filesystem"

// Source represents different sources of HCL configuration
type Source interface {
	// Fetch retrieves the configuration root and returns a filesystem reader
	Fetch() (filesystem.FileReader, string, error) // fs, rootPath, error
	// Cleanup removes any temporary resources
	Cleanup() error
}

// SourceConfig holds common configuration for all sources
type SourceConfig struct {
	// Branch, tag, or commit to use (for git sources)
	Ref string
	// Subdirectory within the source
	SubDir string
}
