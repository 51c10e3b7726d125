package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Yunsang-Jeong/hclparse/pkg/source"
	"github.com/Yunsang-Jeong/hclparse/pkg/workspace"
)

const (
	modeSummary  = "summary"
	modeAST      = "ast"
	modeFmt      = "fmt"
	modeValidate = "validate"
)

// runWorkspace is the common entry point used by both the local and git
// commands: fetch the source, load every HCL file underneath it, and print
// the requested view.
func runWorkspace(src source.Source, mode string) error {
	fs, rootPath, err := src.Fetch()
	if err != nil {
		return fmt.Errorf("failed to fetch source: %w", err)
	}
	defer src.Cleanup()

	ws, err := workspace.Load(fs, rootPath)
	if err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}

	switch mode {
	case modeSummary, "":
		summary, err := ws.Summarize().JSON(true)
		if err != nil {
			return fmt.Errorf("failed to generate summary: %w", err)
		}
		fmt.Println(string(summary))
	case modeAST:
		out, err := marshalIndent(ws)
		if err != nil {
			return fmt.Errorf("failed to marshal AST: %w", err)
		}
		fmt.Println(out)
	case modeFmt:
		results, err := ws.Format()
		if err != nil {
			return fmt.Errorf("failed to format workspace: %w", err)
		}
		mismatched := 0
		for _, r := range results {
			if !r.RoundTrips {
				mismatched++
				fmt.Printf("%s: does not round-trip\n", r.File)
				continue
			}
			fmt.Print(r.Formatted)
		}
		if mismatched > 0 {
			return fmt.Errorf("%d file(s) failed to round-trip through the formatter", mismatched)
		}
	case modeValidate:
		results := ws.Validate()
		total := 0
		for _, r := range results {
			for _, issue := range r.Issues {
				total++
				fmt.Printf("%s: %s\n", r.File, issue.String())
			}
		}
		if total == 0 {
			fmt.Println("no issues found")
		}
	default:
		return fmt.Errorf("unknown mode %q: expected one of summary, ast, fmt, validate", mode)
	}

	return nil
}

func marshalIndent(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
