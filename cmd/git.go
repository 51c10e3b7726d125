package cmd

import (
	"log"

	"github.com/Yunsang-Jeong/hclparse/pkg/source"

	"github.com/spf13/cobra"
)

var (
	gitBranch string
	gitSubDir string
	gitMode   string
)

var gitCmd = &cobra.Command{
	Use:   "git <url>",
	Short: "Parse HCL configuration from a Git repository",
	Long: `Parse HCL native-syntax configuration from a remote Git repository.
Supports both GitHub and GitLab repositories with HTTPS and SSH URLs.
Uses your system's Git configuration for authentication (SSH keys, credential helpers, etc.).`,
	Example: `  # Summarize the default branch
  hclparse git https://github.com/owner/repo

  # Parse a specific branch
  hclparse git https://github.com/owner/repo --branch develop

  # Parse a subdirectory in a specific branch
  hclparse git https://github.com/owner/repo --branch main --subdir modules/vpc

  # SSH URL support (uses your SSH keys automatically)
  hclparse git git@github.com:owner/repo.git

  # Print the parsed AST instead of a summary
  hclparse git https://github.com/owner/repo --mode ast`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]

		// Create git source (uses system Git configuration)
		src := source.NewGitSource(url, source.SourceConfig{
			Ref:    gitBranch,
			SubDir: gitSubDir,
		})

		if err := runWorkspace(src, gitMode); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(gitCmd)

	gitCmd.Flags().StringVarP(&gitBranch, "branch", "b", "", "Git branch, tag, or commit to use (default: repository default branch)")
	gitCmd.Flags().StringVar(&gitSubDir, "subdir", "", "Subdirectory within the repository")
	gitCmd.Flags().StringVar(&gitMode, "mode", modeSummary, "Output mode: summary, ast, fmt, validate")
}
