package workspace

import (
	"fmt"

	"github.com/Yunsang-Jeong/hclparse/pkg/hclsyntax"
)

// FormatResult is the outcome of re-stringifying one file and checking that
// the result reparses to the same shape it started from.
type FormatResult struct {
	File       string `json:"file"`
	Formatted  string `json:"formatted"`
	RoundTrips bool   `json:"round_trips"`
}

// Format stringifies every file and verifies the round-trip property
// (parse(stringify(parse(s))) reproduces the same tree, checked here by
// comparing the re-stringified form of both sides) rather than trusting
// Stringify blindly. A file that fails this check is a bug in this package,
// not in the input, since Stringify is total over the closed AST.
func (w *Workspace) Format() ([]FormatResult, error) {
	results := make([]FormatResult, 0, len(w.Files))
	for _, f := range w.Files {
		out := hclsyntax.Stringify(f.Config)

		reparsed, err := hclsyntax.Parse(out)
		if err != nil {
			return nil, fmt.Errorf("formatted output of %s failed to reparse: %w", f.Path, err)
		}

		again := hclsyntax.Stringify(reparsed)
		results = append(results, FormatResult{
			File:       f.Path,
			Formatted:  out,
			RoundTrips: out == again,
		})
	}
	return results, nil
}
