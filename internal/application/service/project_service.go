package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/apperror"
	"github.com/newgenpools/site-api/pkg/pagination"
	"github.com/newgenpools/site-api/pkg/utils"
)

// ProjectService handles completed project showcases
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Title            string
	ShortDescription string
	Description      string
	FeaturedImageID  *uuid.UUID
	ImageIDs         []uuid.UUID
	Status           string
	ShowInPortfolio  bool
	SEOTitle         string
	SEODescription   string
	SEOKeywords      []string
	SEOCanonicalURL  string
	SEOIndex         *bool
}

func (in *ProjectInput) apply(p *entity.Project) {
	p.Title = strings.TrimSpace(in.Title)
	p.Slug = utils.Slugify(p.Title)
	p.ShortDescription = strings.TrimSpace(in.ShortDescription)
	p.Description = strings.TrimSpace(in.Description)
	p.FeaturedImageID = in.FeaturedImageID
	p.Status = enum.ParsePublishStatus(in.Status)
	p.ShowInPortfolio = in.ShowInPortfolio

	p.SEO.Title = strings.TrimSpace(in.SEOTitle)
	p.SEO.Description = strings.TrimSpace(in.SEODescription)
	p.SEO.Keywords = in.SEOKeywords
	p.SEO.CanonicalURL = strings.TrimSpace(in.SEOCanonicalURL)
	if in.SEOIndex != nil {
		p.SEO.Index = *in.SEOIndex
	}
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(ctx context.Context, input *ProjectInput) (*entity.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperror.NewBadRequestError("Title is required")
	}

	project := &entity.Project{ShowInPortfolio: true}
	project.SEO.Index = true
	input.apply(project)

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	if len(input.ImageIDs) > 0 {
		if err := s.projectRepo.ReplaceImages(ctx, project, input.ImageIDs); err != nil {
			return nil, err
		}
	}
	return project, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}
	return project, nil
}

// GetProjectBySlug retrieves a project by its slug
func (s *ProjectService) GetProjectBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	project, err := s.projectRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}
	return project, nil
}

// ListProjects lists all projects for the admin screen
func (s *ProjectService) ListProjects(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Project], error) {
	projects, total, err := s.projectRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(projects, pag), nil
}

// ListPortfolio lists published projects flagged for the public portfolio
func (s *ProjectService) ListPortfolio(ctx context.Context) ([]entity.Project, error) {
	return s.projectRepo.ListPortfolio(ctx)
}

// UpdateProject updates an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, input *ProjectInput) (*entity.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, apperror.NewBadRequestError("Title is required")
	}

	input.apply(project)
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	if input.ImageIDs != nil {
		if err := s.projectRepo.ReplaceImages(ctx, project, input.ImageIDs); err != nil {
			return nil, err
		}
	}
	return project, nil
}

// DeleteProject removes a project
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return apperror.NewNotFoundError("Project")
	}
	return s.projectRepo.Delete(ctx, id)
}
