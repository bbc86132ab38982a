package repositories

import (
	"glossary-cms/models"

	"gorm.io/gorm"
)

type LabelRepository interface {
	Create(label *models.Label) error
	GetByID(id uint) (*models.Label, error)
	GetByIDs(ids []uint) ([]models.Label, error)
	GetByName(name string) (*models.Label, error)
	GetAll() ([]models.Label, error)
}

type labelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) Create(label *models.Label) error {
	return r.db.Create(label).Error
}

func (r *labelRepository) GetByID(id uint) (*models.Label, error) {
	var label models.Label
	err := r.db.First(&label, id).Error
	return &label, err
}

func (r *labelRepository) GetByIDs(ids []uint) ([]models.Label, error) {
	var labels []models.Label
	err := r.db.Where("id IN ?", ids).Find(&labels).Error
	return labels, err
}

func (r *labelRepository) GetByName(name string) (*models.Label, error) {
	var label models.Label
	err := r.db.Where("name = ?", name).First(&label).Error
	return &label, err
}

func (r *labelRepository) GetAll() ([]models.Label, error) {
	var labels []models.Label
	err := r.db.Order("name asc").Find(&labels).Error
	return labels, err
}
