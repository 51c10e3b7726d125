package cmd

import (
	"log"

	"github.com/Yunsang-Jeong/hclparse/pkg/source"

	"github.com/spf13/cobra"
)

var (
	localSubDir string
	localMode   string
)

var localCmd = &cobra.Command{
	Use:   "local <path>",
	Short: "Parse HCL configuration from the local filesystem",
	Long: `Parse HCL native-syntax configuration from a local directory.
You can specify a subdirectory within the target path.`,
	Example: `  # Summarize the current directory
  hclparse local .

  # Summarize a specific directory
  hclparse local /path/to/terraform

  # Summarize a subdirectory
  hclparse local ./terraform --subdir modules/vpc

  # Print the parsed AST instead of a summary
  hclparse local . --mode ast

  # Check that every file round-trips through the formatter
  hclparse local . --mode fmt

  # Run the structural validator
  hclparse local . --mode validate`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		src := source.NewLocalSource(path, source.SourceConfig{
			SubDir: localSubDir,
		})

		if err := runWorkspace(src, localMode); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(localCmd)

	localCmd.Flags().StringVar(&localSubDir, "subdir", "", "Subdirectory within the target path")
	localCmd.Flags().StringVar(&localMode, "mode", modeSummary, "Output mode: summary, ast, fmt, validate")
}
