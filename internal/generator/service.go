// Package generator turns an analyzed page into its test scaffolding: a
// markdown test plan, a Python page object, a pytest suite and a JSON test
// data file.
package generator

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scaffoldhq/scaffold/internal/domain"
	"github.com/scaffoldhq/scaffold/internal/naming"
)

// Service orchestrates the four artifact generators
type Service struct {
	layout     Layout
	logger     *zap.Logger
	plan       *TestPlanGenerator
	pageObject *PageObjectGenerator
	testCode   *TestCaseGenerator
	testData   *TestDataGenerator
	now        func() time.Time
}

// NewService creates a generation service
func NewService(layout Layout, logger *zap.Logger) *Service {
	data := NewTestDataGenerator()
	pageObject := NewPageObjectGenerator()
	now := time.Now

	return &Service{
		layout:     layout,
		logger:     logger,
		plan:       NewTestPlanGenerator(data, pageObject, now),
		pageObject: pageObject,
		testCode:   NewTestCaseGenerator(),
		testData:   data,
		now:        now,
	}
}

// WithClock replaces the service clock; generated timestamps become
// reproducible in tests
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.plan.now = now
	return s
}

// GenerateAll produces the full artifact set for an analyzed page
func (s *Service) GenerateAll(info *domain.PageInfo) (*ArtifactSet, error) {
	if info == nil {
		return nil, domain.ValidationError("page_info", "page info is required")
	}
	if info.URL == "" {
		return nil, domain.ValidationError("url", "page info has no url")
	}

	name := naming.FileNameFromURL(info.URL)

	dataJSON, err := s.testData.Generate(info).Render()
	if err != nil {
		return nil, domain.GenerationError("test data", err)
	}

	files := map[string]string{}
	files[filepath.Join(s.layout.PlanDir, name+".md")] = s.plan.Generate(info)
	files[filepath.Join(s.layout.PageDir, name+"_page.py")] = s.pageObject.Generate(info)
	files[filepath.Join(s.layout.TestDir, "test_"+name+".py")] = s.testCode.Generate(info)
	files[filepath.Join(s.layout.DataDir, name+"_data.json")] = dataJSON

	set := &ArtifactSet{
		RunID:       uuid.New(),
		PageName:    naming.PageNameFromURL(info.URL),
		FileName:    name,
		GeneratedAt: s.now(),
		Files:       files,
	}

	s.logger.Info("artifacts generated",
		zap.String("run_id", set.RunID.String()),
		zap.String("page", set.PageName),
		zap.String("page_type", string(info.PageType)),
		zap.Int("files", len(set.Files)))

	return set, nil
}

// PlanPath returns the relative path the plan artifact would take for a URL
func (s *Service) PlanPath(url string) string {
	return fmt.Sprintf("%s/%s.md", s.layout.PlanDir, naming.FileNameFromURL(url))
}
