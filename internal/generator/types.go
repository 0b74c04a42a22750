package generator

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/scaffoldhq/scaffold/internal/config"
)

// Layout decides where each artifact lands relative to the output root
type Layout struct {
	PlanDir string
	PageDir string
	TestDir string
	DataDir string
}

// DefaultLayout returns the conventional artifact layout
func DefaultLayout() Layout {
	return Layout{
		PlanDir: "docs/test-plans",
		PageDir: "pages",
		TestDir: "tests",
		DataDir: "test-data",
	}
}

// LayoutFromOutput builds a layout from output configuration
func LayoutFromOutput(cfg config.OutputConfig) Layout {
	layout := DefaultLayout()
	if cfg.PlanDir != "" {
		layout.PlanDir = cfg.PlanDir
	}
	if cfg.PageDir != "" {
		layout.PageDir = cfg.PageDir
	}
	if cfg.TestDir != "" {
		layout.TestDir = cfg.TestDir
	}
	if cfg.DataDir != "" {
		layout.DataDir = cfg.DataDir
	}
	return layout
}

// ArtifactSet is the full output of one generation run: every artifact keyed
// by its path relative to the output root
type ArtifactSet struct {
	RunID       uuid.UUID         `json:"run_id"`
	PageName    string            `json:"page_name"`
	FileName    string            `json:"file_name"`
	GeneratedAt time.Time         `json:"generated_at"`
	Files       map[string]string `json:"files"`
}

// Paths returns the relative artifact paths in no particular order
func (s *ArtifactSet) Paths() []string {
	paths := make([]string, 0, len(s.Files))
	for path := range s.Files {
		paths = append(paths, path)
	}
	return paths
}

// WriteFiles writes every artifact under baseDir, creating directories as
// needed
func (s *ArtifactSet) WriteFiles(baseDir string) error {
	for relPath, content := range s.Files {
		fullPath := filepath.Join(baseDir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
