package services

import (
	"errors"

	"glossary-cms/models"
	"glossary-cms/repositories"

	"gorm.io/gorm"
)

type LabelService interface {
	CreateLabel(caller models.Caller, req models.CreateLabelRequest) (*models.Label, error)
	GetLabels() ([]models.Label, error)
	GetLabel(id uint) (*models.Label, error)
}

type labelService struct {
	labelRepo repositories.LabelRepository
}

func NewLabelService(labelRepo repositories.LabelRepository) LabelService {
	return &labelService{labelRepo: labelRepo}
}

func (s *labelService) CreateLabel(caller models.Caller, req models.CreateLabelRequest) (*models.Label, error) {
	if !caller.IsAdmin() {
		return nil, models.ErrUnauthorized.WithMessage("administrator role required")
	}

	_, err := s.labelRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.ErrConflict.WithMessage("label already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	label := &models.Label{Name: req.Name}
	if err := s.labelRepo.Create(label); err != nil {
		return nil, models.ErrConflict.Wrapf(err, "could not create label")
	}

	return label, nil
}

func (s *labelService) GetLabels() ([]models.Label, error) {
	return s.labelRepo.GetAll()
}

func (s *labelService) GetLabel(id uint) (*models.Label, error) {
	label, err := s.labelRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound.WithMessage("label not found")
		}
		return nil, err
	}
	return label, nil
}
