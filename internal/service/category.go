package service

import "github.com/shared-city/backend/internal/domain"

type categoryService struct{}

func newCategoryService() *categoryService {
	return &categoryService{}
}

func (s *categoryService) GetAll() []domain.CategoryInfo {
	return domain.Categories()
}

func (s *categoryService) Names() []string {
	categories := domain.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Label)
	}
	return names
}
