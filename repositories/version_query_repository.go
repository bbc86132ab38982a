package repositories

import (
	"glossary-cms/models"

	"gorm.io/gorm"
)

// VersionQueryRepository is the read side: paginated review listings,
// single-version detail, term history and the public published-term views.
// No mutations live here.
type VersionQueryRepository interface {
	List(params models.VersionListParams) ([]models.TermVersion, int64, error)
	GetDetail(versionID uint) (*models.TermVersion, error)
	History(identifier string) (*models.Term, []models.TermVersion, error)
	PublishedTerms(params models.GlossaryListParams) ([]models.Term, int64, error)
	PublishedTermByIdentifier(identifier string) (*models.Term, error)
}

type versionQueryRepository struct {
	db        *gorm.DB
	languages []string
}

// NewVersionQueryRepository builds the read layer. languages are the
// required language ids free-text search is matched against.
func NewVersionQueryRepository(db *gorm.DB, languages []string) VersionQueryRepository {
	return &versionQueryRepository{db: db, languages: languages}
}

func (r *versionQueryRepository) List(params models.VersionListParams) ([]models.TermVersion, int64, error) {
	var versions []models.TermVersion
	var total int64

	query := r.db.Model(&models.TermVersion{}).
		Joins("JOIN terms ON terms.id = term_versions.term_id")

	if params.Status != "" {
		query = query.Where("term_versions.status = ?", params.Status)
	}

	if params.CategoryID > 0 {
		query = query.Where("terms.category_id = ?", params.CategoryID)
	}

	if params.Search != "" {
		// Case-sensitive substring match over the required languages only.
		pattern := "%" + params.Search + "%"
		matching := r.db.Model(&models.TermVersionTranslation{}).
			Select("term_version_id").
			Where("language_id IN ?", r.languages).
			Where("name LIKE ? OR description LIKE ?", pattern, pattern)
		query = query.Where("term_versions.id IN (?)", matching)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.
		Preload("Translations").
		Preload("Term.Category").
		Preload("Term.Labels").
		Order("term_versions.created_at desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&versions).Error

	return versions, total, err
}

func (r *versionQueryRepository) GetDetail(versionID uint) (*models.TermVersion, error) {
	var version models.TermVersion
	err := r.db.
		Preload("Translations").
		Preload("Term.Category").
		Preload("Term.Labels").
		First(&version, versionID).Error
	return &version, err
}

func (r *versionQueryRepository) History(identifier string) (*models.Term, []models.TermVersion, error) {
	var term models.Term
	if err := r.db.Preload("Category").Preload("Labels").
		Where("identifier = ?", identifier).
		First(&term).Error; err != nil {
		return nil, nil, err
	}

	var versions []models.TermVersion
	err := r.db.Where("term_id = ?", term.ID).
		Preload("Translations").
		Order("version_number desc").
		Find(&versions).Error
	return &term, versions, err
}

func (r *versionQueryRepository) PublishedTerms(params models.GlossaryListParams) ([]models.Term, int64, error) {
	var terms []models.Term
	var total int64

	query := r.db.Model(&models.Term{}).
		Joins("JOIN term_versions ON terms.active_version_id = term_versions.id").
		Where("term_versions.status = ?", models.StatusPublished)

	if params.CategoryID > 0 {
		query = query.Where("terms.category_id = ?", params.CategoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.
		Preload("ActiveVersion.Translations").
		Preload("Category").
		Preload("Labels").
		Order("terms.created_at desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&terms).Error

	return terms, total, err
}

func (r *versionQueryRepository) PublishedTermByIdentifier(identifier string) (*models.Term, error) {
	var term models.Term
	err := r.db.
		Joins("JOIN term_versions ON terms.active_version_id = term_versions.id").
		Where("terms.identifier = ? AND term_versions.status = ?", identifier, models.StatusPublished).
		Preload("ActiveVersion.Translations").
		Preload("Category").
		Preload("Labels").
		First(&term).Error
	return &term, err
}
