package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	domainRepo "github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/pagination"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) domainRepo.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).
		Preload("Images", imageMetaColumns).
		First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &project, err
}

func (r *projectRepository) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).
		Preload("Images", imageMetaColumns).
		First(&project, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &project, err
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Omit("Images").Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Project{}, "id = ?", id).Error
}

func (r *projectRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Project, int64, error) {
	var projects []entity.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Project{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&projects).Error
	return projects, total, err
}

func (r *projectRepository) ListPortfolio(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	err := r.db.WithContext(ctx).
		Where("status = ? AND show_in_portfolio = ?", enum.PublishStatusPublished, true).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) ReplaceImages(ctx context.Context, project *entity.Project, imageIDs []uuid.UUID) error {
	images := make([]entity.Image, len(imageIDs))
	for i, id := range imageIDs {
		images[i] = entity.Image{ID: id}
	}
	return r.db.WithContext(ctx).Model(project).Association("Images").Replace(images)
}
