package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shared-city/backend/internal/domain"
	"github.com/shared-city/backend/internal/repository"

	"github.com/paulmach/orb/geojson"
)

type featureService struct {
	featureRepository repository.Features
	projectRepository repository.Projects
}

func newFeatureService(featureRepository repository.Features, projectRepository repository.Projects) *featureService {
	return &featureService{
		featureRepository: featureRepository,
		projectRepository: projectRepository,
	}
}

// Get returns the stored FeatureCollection of a project, or an empty collection.
func (s *featureService) Get(ctx context.Context, projectID int64) (string, error) {
	if err := ensureProjectExists(ctx, s.projectRepository, projectID); err != nil {
		return "", err
	}

	doc, err := s.featureRepository.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.EmptyFeatureCollection, nil
		}
		return "", fmt.Errorf("get feature document failed: %w", err)
	}

	return doc.Content, nil
}

// Save replaces the FeatureCollection of a project after checking it parses as GeoJSON.
func (s *featureService) Save(ctx context.Context, projectID int64, content string) (string, error) {
	if _, err := geojson.UnmarshalFeatureCollection([]byte(content)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidGeoJSON, err)
	}

	if err := ensureProjectExists(ctx, s.projectRepository, projectID); err != nil {
		return "", err
	}

	doc := &domain.FeatureDocument{
		ProjectID: projectID,
		Content:   content,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.featureRepository.Upsert(ctx, doc); err != nil {
		return "", fmt.Errorf("save feature document failed: %w", err)
	}

	return doc.Content, nil
}
