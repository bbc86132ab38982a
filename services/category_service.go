package services

import (
	"errors"

	"glossary-cms/models"
	"glossary-cms/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(caller models.Caller, req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(caller models.Caller, req models.CreateCategoryRequest) (*models.Category, error) {
	if !caller.IsAdmin() {
		return nil, models.ErrUnauthorized.WithMessage("administrator role required")
	}

	_, err := s.categoryRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.ErrConflict.WithMessage("category already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, models.ErrConflict.Wrapf(err, "could not create category")
	}

	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound.WithMessage("category not found")
		}
		return nil, err
	}
	return category, nil
}
