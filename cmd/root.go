package cmd

import (
	"context"

	"github.com/Yunsang-Jeong/hclparse/pkg/logger"
	"github.com/Yunsang-Jeong/hclparse/version"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:     "hclparse",
	Short:   "Parse and inspect HCL native-syntax configuration from various sources",
	Version: version.GetVersion(),
	Long: `A CLI tool to parse, summarize, validate, and format HCL native-syntax
configuration from a local filesystem or a remote Git repository (GitHub/GitLab).`,
	Example: `  # Summarize a local directory
  hclparse local ./terraform

  # Summarize a Git repository
  hclparse git https://github.com/owner/repo

  # Parse a specific branch and subdirectory
  hclparse git https://github.com/owner/repo --branch main --subdir modules/vpc

  # Print the parsed AST instead of a summary
  hclparse local . --mode ast

  # Check that every file round-trips through the formatter
  hclparse local . --mode fmt

  # Enable debug logging
  hclparse local . --log-level debug`,
}

func Execute(ctx context.Context) error {
	// Initialize logger
	if err := logger.Init(logLevel); err != nil {
		return err
	}
	defer logger.Sync()

	// Remove help for root command
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Remove shell completion
	rootCmd.CompletionOptions = cobra.CompletionOptions{
		DisableDefaultCmd:   true,
		DisableNoDescFlag:   true,
		DisableDescriptions: true,
		HiddenDefaultCmd:    true,
	}

	return fang.Execute(ctx, rootCmd)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.InfoLevel, "Log level (debug, info, error)")

	// Set custom version template for --version flag
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
