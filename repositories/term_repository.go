package repositories

import (
	"time"

	"glossary-cms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TermRepository covers term and version writes. The lifecycle service
// constructs one over the transaction handle, so every method call inside an
// operation shares the same atomic scope.
type TermRepository interface {
	Create(term *models.Term) error
	GetByID(id uint) (*models.Term, error)
	GetByIdentifier(identifier string) (*models.Term, error)
	UpdateActiveVersion(termID uint, versionID *uint) error
	Delete(id uint) error
	DeleteLabelLinks(termID uint) error
	CreateLabelLinks(termID uint, labelIDs []uint) error

	CreateVersion(version *models.TermVersion) error
	GetVersionByID(versionID uint) (*models.TermVersion, error)
	GetVersions(termID uint) ([]models.TermVersion, error)
	Siblings(termID, exceptVersionID uint) ([]models.TermVersion, error)
	MaxVersionNumber(termID uint) (int, error)
	CountVersions(termID uint) (int64, error)
	Publish(versionID uint, now time.Time) error
	Archive(versionID uint, now time.Time) error
	ArchiveOthers(termID, exceptVersionID uint, now time.Time) error
	DeleteVersion(versionID uint) error
	DeleteTranslations(versionID uint) error
	UpsertTranslation(translation *models.TermVersionTranslation) error
}

type termRepository struct {
	db *gorm.DB
}

func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

func (r *termRepository) Create(term *models.Term) error {
	return r.db.Create(term).Error
}

func (r *termRepository) GetByID(id uint) (*models.Term, error) {
	var term models.Term
	err := r.db.Preload("Category").First(&term, id).Error
	return &term, err
}

func (r *termRepository) GetByIdentifier(identifier string) (*models.Term, error) {
	var term models.Term
	err := r.db.Preload("Category").
		Preload("Labels").
		Where("identifier = ?", identifier).
		First(&term).Error
	return &term, err
}

func (r *termRepository) UpdateActiveVersion(termID uint, versionID *uint) error {
	return r.db.Model(&models.Term{}).
		Where("id = ?", termID).
		Update("active_version_id", versionID).Error
}

func (r *termRepository) Delete(id uint) error {
	return r.db.Delete(&models.Term{}, id).Error
}

func (r *termRepository) DeleteLabelLinks(termID uint) error {
	return r.db.Where("term_id = ?", termID).Delete(&models.TermLabel{}).Error
}

func (r *termRepository) CreateLabelLinks(termID uint, labelIDs []uint) error {
	for _, labelID := range labelIDs {
		link := models.TermLabel{TermID: termID, LabelID: labelID}
		if err := r.db.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *termRepository) CreateVersion(version *models.TermVersion) error {
	return r.db.Create(version).Error
}

func (r *termRepository) GetVersionByID(versionID uint) (*models.TermVersion, error) {
	var version models.TermVersion
	err := r.db.Preload("Translations").First(&version, versionID).Error
	return &version, err
}

func (r *termRepository) GetVersions(termID uint) ([]models.TermVersion, error) {
	var versions []models.TermVersion
	err := r.db.Where("term_id = ?", termID).
		Preload("Translations").
		Order("version_number desc").
		Find(&versions).Error
	return versions, err
}

func (r *termRepository) Siblings(termID, exceptVersionID uint) ([]models.TermVersion, error) {
	var versions []models.TermVersion
	err := r.db.Where("term_id = ? AND id <> ?", termID, exceptVersionID).
		Find(&versions).Error
	return versions, err
}

func (r *termRepository) MaxVersionNumber(termID uint) (int, error) {
	var max int
	err := r.db.Model(&models.TermVersion{}).
		Where("term_id = ?", termID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&max).Error
	return max, err
}

func (r *termRepository) CountVersions(termID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.TermVersion{}).
		Where("term_id = ?", termID).
		Count(&count).Error
	return count, err
}

func (r *termRepository) Publish(versionID uint, now time.Time) error {
	return r.db.Model(&models.TermVersion{}).
		Where("id = ?", versionID).
		Updates(map[string]interface{}{
			"status":           models.StatusPublished,
			"ready_to_publish": true,
			"published_at":     now,
			"archived_at":      nil,
		}).Error
}

func (r *termRepository) Archive(versionID uint, now time.Time) error {
	return r.db.Model(&models.TermVersion{}).
		Where("id = ?", versionID).
		Updates(map[string]interface{}{
			"status":           models.StatusArchived,
			"ready_to_publish": false,
			"published_at":     nil,
			"archived_at":      now,
		}).Error
}

func (r *termRepository) ArchiveOthers(termID, exceptVersionID uint, now time.Time) error {
	return r.db.Model(&models.TermVersion{}).
		Where("term_id = ? AND id <> ?", termID, exceptVersionID).
		Updates(map[string]interface{}{
			"status":           models.StatusArchived,
			"ready_to_publish": false,
			"published_at":     nil,
			"archived_at":      now,
		}).Error
}

func (r *termRepository) DeleteVersion(versionID uint) error {
	return r.db.Delete(&models.TermVersion{}, versionID).Error
}

func (r *termRepository) DeleteTranslations(versionID uint) error {
	return r.db.Where("term_version_id = ?", versionID).
		Delete(&models.TermVersionTranslation{}).Error
}

func (r *termRepository) UpsertTranslation(translation *models.TermVersionTranslation) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "term_version_id"}, {Name: "language_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":        translation.Name,
			"description": translation.Description,
			"updated_at":  time.Now(),
		}),
	}).Create(translation).Error
}
