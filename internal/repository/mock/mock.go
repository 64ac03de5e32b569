package mock_repository

import (
	"context"

	"github.com/shared-city/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Users struct {
	mock.Mock
}

func (m *Users) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *Users) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Users) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type Projects struct {
	mock.Mock
}

func projectsResult(args mock.Arguments) ([]domain.Project, error) {
	if p, _ := args.Get(0).([]domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Projects) GetAll(ctx context.Context) ([]domain.Project, error) {
	return projectsResult(m.Called(ctx))
}

func (m *Projects) GetByCategory(ctx context.Context, category domain.Category) ([]domain.Project, error) {
	return projectsResult(m.Called(ctx, category))
}

func (m *Projects) GetByCategoryAndStatus(ctx context.Context, category domain.Category, status string) ([]domain.Project, error) {
	return projectsResult(m.Called(ctx, category, status))
}

func (m *Projects) GetByKeyword(ctx context.Context, keyword string) ([]domain.Project, error) {
	return projectsResult(m.Called(ctx, keyword))
}

func (m *Projects) GetByKeywordAndCategory(ctx context.Context, keyword string, category domain.Category) ([]domain.Project, error) {
	return projectsResult(m.Called(ctx, keyword, category))
}

func (m *Projects) GetOneByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if p, _ := args.Get(0).(*domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Projects) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *Projects) Update(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *Projects) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *Projects) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Projects) GetStats(ctx context.Context) (*domain.ProjectStats, error) {
	args := m.Called(ctx)
	if s, _ := args.Get(0).(*domain.ProjectStats); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type Comments struct {
	mock.Mock
}

func (m *Comments) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *Comments) GetByProjectID(ctx context.Context, projectID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, projectID)
	if c, _ := args.Get(0).([]domain.Comment); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type Features struct {
	mock.Mock
}

func (m *Features) GetByProjectID(ctx context.Context, projectID int64) (*domain.FeatureDocument, error) {
	args := m.Called(ctx, projectID)
	if d, _ := args.Get(0).(*domain.FeatureDocument); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Features) Upsert(ctx context.Context, doc *domain.FeatureDocument) error {
	return m.Called(ctx, doc).Error(0)
}
