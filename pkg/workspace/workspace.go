// Package workspace aggregates the HCL configuration files under a
// directory, parsing each one with pkg/hclsyntax. Unlike the Terraform
// schema modeling this replaces, it carries no opinion about what a block
// type or label means — it only reports the shape it actually parsed.
package workspace

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/Yunsang-Jeong/hclparse/pkg/filesystem"
	"github.com/Yunsang-Jeong/hclparse/pkg/hclsyntax"
	"github.com/Yunsang-Jeong/hclparse/pkg/logger"

	"go.uber.org/zap"
)

// configExtensions lists the file extensions walked when aggregating a
// directory. ".tf" is kept alongside ".hcl" since the teacher's source
// material and test fixtures are Terraform configuration, which is native
// HCL syntax under a different extension.
var configExtensions = map[string]bool{
	".hcl": true,
	".tf":  true,
}

// File pairs a parsed configuration with the path it was read from.
type File struct {
	Path   string
	Config *hclsyntax.ConfigFile
}

// Workspace is every HCL file found under one root directory, parsed.
type Workspace struct {
	Root  string
	Files []File
}

// Load reads every *.hcl/*.tf file directly under dir (non-recursive, matching
// the teacher's single-directory scan) and parses each one. The first parse
// error aborts the whole load: there is no partial workspace, mirroring
// hclsyntax.Parse's own all-or-nothing contract.
func Load(fs filesystem.FileReader, dir string) (*Workspace, error) {
	logger.Info("Starting workspace load", zap.String("directory", dir))

	exist, err := fs.DirExists(dir)
	if err != nil {
		logger.Error("Failed to check workspace directory", zap.String("directory", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to check workspace directory: %w", err)
	}
	if !exist {
		logger.Error("Workspace directory not found", zap.String("directory", dir))
		return nil, fmt.Errorf("workspace directory not found: %s", dir)
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		logger.Error("Failed to read workspace directory", zap.String("directory", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to read workspace directory %s: %w", dir, err)
	}

	logger.Debug("Found files in directory", zap.String("directory", dir), zap.Int("file_count", len(entries)))

	ws := &Workspace{Root: dir}
	for _, entry := range entries {
		if entry.IsDir() || !configExtensions[filepath.Ext(entry.Name())] {
			logger.Debug("Skipping non-HCL file", zap.String("file", entry.Name()))
			continue
		}

		path := filepath.Join(dir, entry.Name())
		logger.Debug("Processing HCL file", zap.String("file", entry.Name()))

		content, err := fs.ReadFile(path)
		if err != nil {
			logger.Error("Failed to read HCL file", zap.String("file", path), zap.Error(err))
			return nil, fmt.Errorf("failed to read HCL file %s: %w", path, err)
		}

		cf, err := hclsyntax.Parse(string(content))
		if err != nil {
			logger.Error("Failed to parse HCL file", zap.String("file", path), zap.Error(err))
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, err)
		}

		ws.Files = append(ws.Files, File{Path: path, Config: cf})
	}

	sort.Slice(ws.Files, func(i, j int) bool { return ws.Files[i].Path < ws.Files[j].Path })

	logger.Info("Successfully loaded workspace", zap.String("directory", dir), zap.Int("files", len(ws.Files)))
	return ws, nil
}
