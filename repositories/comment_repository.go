package repositories

import (
	"glossary-cms/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByTermID(termID uint) ([]models.Comment, error)
	DeleteByTermID(termID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByTermID(termID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("term_id = ?", termID).
		Preload("Author").
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) DeleteByTermID(termID uint) error {
	return r.db.Where("term_id = ?", termID).Delete(&models.Comment{}).Error
}
