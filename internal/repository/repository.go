package repository

import (
	"context"

	"github.com/shared-city/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users    Users
	Projects Projects
	Comments Comments
	Features Features
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:    newUserRepository(db),
		Projects: newProjectRepository(db),
		Comments: newCommentRepository(db),
		Features: newFeatureRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Projects interface {
	GetAll(ctx context.Context) ([]domain.Project, error)
	GetByCategory(ctx context.Context, category domain.Category) ([]domain.Project, error)
	GetByCategoryAndStatus(ctx context.Context, category domain.Category, status string) ([]domain.Project, error)
	GetByKeyword(ctx context.Context, keyword string) ([]domain.Project, error)
	GetByKeywordAndCategory(ctx context.Context, keyword string, category domain.Category) ([]domain.Project, error)
	GetOneByID(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	GetStats(ctx context.Context) (*domain.ProjectStats, error)
}

type Comments interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByProjectID(ctx context.Context, projectID int64) ([]domain.Comment, error)
}

type Features interface {
	GetByProjectID(ctx context.Context, projectID int64) (*domain.FeatureDocument, error)
	Upsert(ctx context.Context, doc *domain.FeatureDocument) error
}
