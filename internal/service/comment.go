package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shared-city/backend/internal/domain"
	"github.com/shared-city/backend/internal/repository"

	"github.com/google/uuid"
)

type CommentInput struct {
	Content    string
	AuthorName string
}

type commentService struct {
	commentRepository repository.Comments
	projectRepository repository.Projects
}

func newCommentService(commentRepository repository.Comments, projectRepository repository.Projects) *commentService {
	return &commentService{
		commentRepository: commentRepository,
		projectRepository: projectRepository,
	}
}

// ListByProject returns the comments of a project, newest first.
func (s *commentService) ListByProject(ctx context.Context, projectID int64) ([]domain.Comment, error) {
	if err := ensureProjectExists(ctx, s.projectRepository, projectID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepository.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get comments failed: %w", err)
	}

	return comments, nil
}

func (s *commentService) Create(ctx context.Context, projectID int64, input CommentInput) (*domain.Comment, error) {
	if err := ensureProjectExists(ctx, s.projectRepository, projectID); err != nil {
		return nil, err
	}

	commentID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate comment id failed: %w", err)
	}

	comment := &domain.Comment{
		ID:         commentID,
		ProjectID:  projectID,
		Content:    input.Content,
		AuthorName: input.AuthorName,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.commentRepository.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment failed: %w", err)
	}

	return comment, nil
}

func ensureProjectExists(ctx context.Context, projectRepository repository.Projects, projectID int64) error {
	if _, err := projectRepository.GetOneByID(ctx, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("get project by id failed: %w", err)
	}
	return nil
}
