package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shared-city/backend/internal/domain"
	"github.com/shared-city/backend/internal/repository"
)

// ProjectFilter holds the raw, optional query tokens of a project listing.
type ProjectFilter struct {
	Keyword  string
	Category string
	Status   string
}

// ProjectInput carries the mutable fields of a project.
type ProjectInput struct {
	Name        string
	Description string
	Status      string
	StartDate   *domain.Date
	EndDate     *domain.Date
	Category    *domain.Category
	CenterLng   *float64
	CenterLat   *float64
}

type projectService struct {
	projectRepository repository.Projects
}

func newProjectService(projectRepository repository.Projects) *projectService {
	return &projectService{
		projectRepository: projectRepository,
	}
}

// List resolves the filter with fixed precedence: keyword, then category with status,
// then category alone. An unparseable category drops to the next broader query, and
// with a status present that is the full list. Only the keyword is trimmed; category
// and status tokens are matched as sent.
func (s *projectService) List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error) {
	keyword := strings.TrimSpace(filter.Keyword)
	hasCategory := strings.TrimSpace(filter.Category) != ""
	hasStatus := strings.TrimSpace(filter.Status) != ""

	category, categoryValid := domain.ParseCategory(filter.Category)

	switch {
	case keyword != "":
		if categoryValid {
			return s.projectRepository.GetByKeywordAndCategory(ctx, keyword, category)
		}
		return s.projectRepository.GetByKeyword(ctx, keyword)
	case hasCategory && hasStatus:
		if categoryValid {
			return s.projectRepository.GetByCategoryAndStatus(ctx, category, filter.Status)
		}
		return s.projectRepository.GetAll(ctx)
	case hasCategory:
		if categoryValid {
			return s.projectRepository.GetByCategory(ctx, category)
		}
		return s.projectRepository.GetAll(ctx)
	default:
		return s.projectRepository.GetAll(ctx)
	}
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.projectRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project by id failed: %w", err)
	}

	return project, nil
}

func (s *projectService) Create(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	today := domain.Today()
	project := input.apply(&domain.Project{CreatedAt: &today})

	if err := s.projectRepository.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project failed: %w", err)
	}

	return project, nil
}

func (s *projectService) Update(ctx context.Context, id int64, input ProjectInput) (*domain.Project, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project = input.apply(project)
	if err := s.projectRepository.Update(ctx, project); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project failed: %w", err)
	}

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if err := s.projectRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("delete project failed: %w", err)
	}

	return nil
}

func (s *projectService) Stats(ctx context.Context) (*domain.ProjectStats, error) {
	stats, err := s.projectRepository.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get project stats failed: %w", err)
	}

	return stats, nil
}

// SeedDefaults inserts the demo projects into an empty store and reports how many were added.
func (s *projectService) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.projectRepository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count projects failed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	seeded := 0
	for _, project := range demoProjects() {
		project := project
		if err := s.projectRepository.Create(ctx, &project); err != nil {
			return seeded, fmt.Errorf("seed project %q failed: %w", project.Name, err)
		}
		seeded++
	}

	return seeded, nil
}

func (in ProjectInput) apply(project *domain.Project) *domain.Project {
	project.Name = in.Name
	project.Description = in.Description
	project.Status = in.Status
	project.StartDate = in.StartDate
	project.EndDate = in.EndDate
	project.Category = in.Category
	project.CenterLng = in.CenterLng
	project.CenterLat = in.CenterLat
	return project
}
