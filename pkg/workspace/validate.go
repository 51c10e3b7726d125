package workspace

import "github.com/Yunsang-Jeong/hclparse/pkg/hclsyntax"

// FileIssues pairs a file path with whatever issues hclsyntax.Validate found
// in it. Empty Issues means the file is structurally sound.
type FileIssues struct {
	File   string            `json:"file"`
	Issues []hclsyntax.Issue `json:"issues,omitempty"`
}

// Validate runs the structural validator over every file and reports issues
// per file, never stopping at the first file that has any.
func (w *Workspace) Validate() []FileIssues {
	results := make([]FileIssues, 0, len(w.Files))
	for _, f := range w.Files {
		_, issues := hclsyntax.Validate(f.Config)
		results = append(results, FileIssues{File: f.Path, Issues: issues})
	}
	return results
}
