package service

import (
	"context"

	"github.com/shared-city/backend/internal/cache"
	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/domain"
	"github.com/shared-city/backend/internal/repository"
	"github.com/shared-city/backend/pkg/auth"
	"github.com/shared-city/backend/pkg/hash"
	"github.com/shared-city/backend/pkg/otp"

	"github.com/google/uuid"
)

type Services struct {
	Users      Users
	Projects   Projects
	Comments   Comments
	Features   Features
	Categories Categories
	Assistant  Assistant
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.Hasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Repos        *repository.Repositories
	Store        cache.Store
	History      cache.History
	CodeSender   CodeSender
	ChatClient   ChatClient
}

func NewServices(deps Deps) *Services {
	return &Services{
		Users: newUserService(deps.Repos.Users,
			deps.Store,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			deps.CodeSender,
			deps.Config.Auth,
		),
		Projects:   newProjectService(deps.Repos.Projects),
		Comments:   newCommentService(deps.Repos.Comments, deps.Repos.Projects),
		Features:   newFeatureService(deps.Repos.Features, deps.Repos.Projects),
		Categories: newCategoryService(),
		Assistant:  newAssistantService(deps.ChatClient, deps.History, deps.Config.Assistant),
	}
}

// CodeSender delivers an issued verification code to the phone owner.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, phone string, code string) error
}

type Users interface {
	IssueCode(ctx context.Context, phone string) error
	Login(ctx context.Context, phone string, code string) (*domain.User, error)
	CreateSession(ctx context.Context, user *domain.User) (*Tokens, error)
	Logout(ctx context.Context, accessToken string) error
	IsRevoked(ctx context.Context, accessToken string) (bool, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Projects interface {
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, input ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int64, input ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.ProjectStats, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type Comments interface {
	ListByProject(ctx context.Context, projectID int64) ([]domain.Comment, error)
	Create(ctx context.Context, projectID int64, input CommentInput) (*domain.Comment, error)
}

type Features interface {
	Get(ctx context.Context, projectID int64) (string, error)
	Save(ctx context.Context, projectID int64, content string) (string, error)
}

type Categories interface {
	GetAll() []domain.CategoryInfo
	Names() []string
}

type Assistant interface {
	Enabled() bool
	Chat(ctx context.Context, conversationID string, message string) (string, error)
}
