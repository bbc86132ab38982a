package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"glossary-cms/models"
	"glossary-cms/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TermService is the lifecycle engine: every state transition a term version
// can make runs through here, each inside a single transaction. Callers must
// hold the admin role; nothing touches the store before that check passes.
type TermService interface {
	CreateDraft(caller models.Caller, req models.CreateDraftRequest) (*models.CreateDraftResult, error)
	ApproveDraft(caller models.Caller, versionID uint) (*models.VersionResult, error)
	RejectDraft(caller models.Caller, versionID uint) (*models.DeleteVersionResult, error)
	DeleteVersion(caller models.Caller, versionID uint) (*models.DeleteVersionResult, error)
	RestoreVersion(caller models.Caller, versionID uint) (*models.VersionResult, error)
	CreateVersionFromSource(caller models.Caller, termID uint, req models.CreateVersionRequest) (*models.VersionResult, error)
	UpdateDraft(caller models.Caller, versionID uint, req models.UpdateDraftRequest) (*models.VersionResult, error)
	GetHistory(caller models.Caller, identifier string) (*models.Term, []models.TermVersion, error)
	ListVersions(caller models.Caller, params models.VersionListParams) ([]models.TermVersion, int64, error)
	GetVersion(caller models.Caller, versionID uint) (*models.TermVersion, error)
}

type termService struct {
	db        *gorm.DB
	queryRepo repositories.VersionQueryRepository
	languages []string
	logger    *zap.Logger
}

// NewTermService wires the engine. languages are the required language ids a
// version must carry content for before it can exist as a draft.
func NewTermService(db *gorm.DB, queryRepo repositories.VersionQueryRepository, languages []string, logger *zap.Logger) TermService {
	return &termService{
		db:        db,
		queryRepo: queryRepo,
		languages: languages,
		logger:    logger,
	}
}

func (s *termService) authorize(caller models.Caller) error {
	if !caller.IsAdmin() {
		return models.ErrUnauthorized.WithMessage("administrator role required")
	}
	return nil
}

// validateTranslations enforces the required-language precondition shared by
// draft creation and draft edits.
func (s *termService) validateTranslations(translations map[string]models.TranslationInput) error {
	for _, lang := range s.languages {
		t, ok := translations[lang]
		if !ok || strings.TrimSpace(t.Name) == "" {
			return models.ErrValidation.WithMessage("missing required translation: " + lang)
		}
	}
	return nil
}

// storeErr translates a store-layer failure into a typed error. Missing rows
// become NotFound; anything else inside a transaction is a Conflict.
func storeErr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound.WithMessage(message + " not found")
	}
	return models.ErrConflict.Wrapf(err, "%s: storage conflict", message)
}

func (s *termService) CreateDraft(caller models.Caller, req models.CreateDraftRequest) (*models.CreateDraftResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}
	if err := s.validateTranslations(req.Translations); err != nil {
		return nil, err
	}
	if req.CategoryID == 0 {
		return nil, models.ErrValidation.WithMessage("category is required")
	}

	result := &models.CreateDraftResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		terms := repositories.NewTermRepository(tx)

		if _, err := repositories.NewCategoryRepository(tx).GetByID(req.CategoryID); err != nil {
			return storeErr(err, "category")
		}
		if len(req.LabelIDs) > 0 {
			labels, err := repositories.NewLabelRepository(tx).GetByIDs(req.LabelIDs)
			if err != nil {
				return storeErr(err, "labels")
			}
			if len(labels) != len(req.LabelIDs) {
				return models.ErrNotFound.WithMessage("label not found")
			}
		}

		term := &models.Term{
			Identifier: uuid.NewString(),
			CategoryID: req.CategoryID,
		}
		if err := terms.Create(term); err != nil {
			return storeErr(err, "term")
		}

		version := &models.TermVersion{
			TermID:         term.ID,
			VersionNumber:  1,
			Status:         models.StatusDraft,
			ReadyToPublish: true,
		}
		if err := terms.CreateVersion(version); err != nil {
			return storeErr(err, "term version")
		}
		if err := s.writeTranslations(terms, version.ID, req.Translations); err != nil {
			return err
		}

		if err := terms.UpdateActiveVersion(term.ID, &version.ID); err != nil {
			return storeErr(err, "term")
		}
		if err := terms.CreateLabelLinks(term.ID, req.LabelIDs); err != nil {
			return storeErr(err, "label links")
		}

		result.Success = true
		result.TermID = term.ID
		result.VersionID = version.ID
		return nil
	})
	if err != nil {
		s.logger.Warn("create draft failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("term draft created",
		zap.Uint("term_id", result.TermID),
		zap.Uint("version_id", result.VersionID))
	return result, nil
}

func (s *termService) ApproveDraft(caller models.Caller, versionID uint) (*models.VersionResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		terms := repositories.NewTermRepository(tx)

		version, err := terms.GetVersionByID(versionID)
		if err != nil {
			return storeErr(err, "term version")
		}
		if _, err := terms.GetByID(version.TermID); err != nil {
			return storeErr(err, "term")
		}

		// Supersession: every sibling, including a currently published one,
		// goes to ARCHIVED before the target is published.
		now := time.Now()
		if err := terms.ArchiveOthers(version.TermID, version.ID, now); err != nil {
			return storeErr(err, "term versions")
		}
		if err := terms.Publish(version.ID, now); err != nil {
			return storeErr(err, "term version")
		}
		if err := terms.UpdateActiveVersion(version.TermID, &version.ID); err != nil {
			return storeErr(err, "term")
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("approve draft failed", zap.Uint("version_id", versionID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("version published", zap.Uint("version_id", versionID))
	return &models.VersionResult{Success: true, VersionID: versionID}, nil
}

func (s *termService) RejectDraft(caller models.Caller, versionID uint) (*models.DeleteVersionResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}
	// Rejection is a policy wrapper over the generic delete: it only ever
	// applies to drafts.
	return s.deleteVersion(versionID, true)
}

func (s *termService) DeleteVersion(caller models.Caller, versionID uint) (*models.DeleteVersionResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}
	return s.deleteVersion(versionID, false)
}

func (s *termService) deleteVersion(versionID uint, draftOnly bool) (*models.DeleteVersionResult, error) {
	result := &models.DeleteVersionResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		terms := repositories.NewTermRepository(tx)

		version, err := terms.GetVersionByID(versionID)
		if err != nil {
			return storeErr(err, "term version")
		}
		if draftOnly && version.Status != models.StatusDraft {
			return models.ErrInvalidState.WithMessage("only drafts can be rejected")
		}

		siblings, err := terms.Siblings(version.TermID, version.ID)
		if err != nil {
			return storeErr(err, "term versions")
		}

		// Children before parents: translations, then the version row.
		if err := terms.DeleteTranslations(version.ID); err != nil {
			return storeErr(err, "translations")
		}
		if err := terms.DeleteVersion(version.ID); err != nil {
			return storeErr(err, "term version")
		}

		if len(siblings) == 0 {
			// Last version gone: the term must not survive empty. Comments
			// and label links go with it.
			comments := repositories.NewCommentRepository(tx)
			if err := comments.DeleteByTermID(version.TermID); err != nil {
				return storeErr(err, "comments")
			}
			if err := terms.DeleteLabelLinks(version.TermID); err != nil {
				return storeErr(err, "label links")
			}
			if err := terms.Delete(version.TermID); err != nil {
				return storeErr(err, "term")
			}
			result.Success = true
			result.TermDeleted = true
			return nil
		}

		term, err := terms.GetByID(version.TermID)
		if err != nil {
			return storeErr(err, "term")
		}
		if term.ActiveVersionID == nil || *term.ActiveVersionID == version.ID {
			replacement := pickReplacement(siblings)
			if err := terms.UpdateActiveVersion(term.ID, &replacement.ID); err != nil {
				return storeErr(err, "term")
			}
			result.ActiveVersionID = &replacement.ID
		} else {
			result.ActiveVersionID = term.ActiveVersionID
		}
		result.Success = true
		return nil
	})
	if err != nil {
		s.logger.Warn("delete version failed", zap.Uint("version_id", versionID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("version deleted",
		zap.Uint("version_id", versionID),
		zap.Bool("term_deleted", result.TermDeleted))
	return result, nil
}

// pickReplacement chooses the new active version after a delete: published
// first, then the most recently created.
func pickReplacement(siblings []models.TermVersion) *models.TermVersion {
	sort.Slice(siblings, func(i, j int) bool {
		pi, pj := siblings[i].Status.Priority(), siblings[j].Status.Priority()
		if pi != pj {
			return pi < pj
		}
		if !siblings[i].CreatedAt.Equal(siblings[j].CreatedAt) {
			return siblings[i].CreatedAt.After(siblings[j].CreatedAt)
		}
		return siblings[i].ID > siblings[j].ID
	})
	return &siblings[0]
}

func (s *termService) RestoreVersion(caller models.Caller, versionID uint) (*models.VersionResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		terms := repositories.NewTermRepository(tx)

		version, err := terms.GetVersionByID(versionID)
		if err != nil {
			return storeErr(err, "term version")
		}
		if version.Status != models.StatusArchived {
			return models.ErrInvalidState.WithMessage("only archived versions can be restored")
		}

		now := time.Now()
		siblings, err := terms.Siblings(version.TermID, version.ID)
		if err != nil {
			return storeErr(err, "term versions")
		}
		for _, sibling := range siblings {
			if sibling.Status == models.StatusPublished {
				if err := terms.Archive(sibling.ID, now); err != nil {
					return storeErr(err, "term version")
				}
			}
		}

		if err := terms.Publish(version.ID, now); err != nil {
			return storeErr(err, "term version")
		}
		if err := terms.UpdateActiveVersion(version.TermID, &version.ID); err != nil {
			return storeErr(err, "term")
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("restore version failed", zap.Uint("version_id", versionID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("version restored", zap.Uint("version_id", versionID))
	return &models.VersionResult{Success: true, VersionID: versionID}, nil
}

func (s *termService) CreateVersionFromSource(caller models.Caller, termID uint, req models.CreateVersionRequest) (*models.VersionResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}
	if err := s.validateTranslations(req.Translations); err != nil {
		return nil, err
	}

	result := &models.VersionResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		terms := repositories.NewTermRepository(tx)

		if _, err := terms.GetByID(termID); err != nil {
			return storeErr(err, "term")
		}

		// Numbering is read-max-then-insert inside this transaction so two
		// writers cannot hand out the same number.
		max, err := terms.MaxVersionNumber(termID)
		if err != nil {
			return storeErr(err, "term versions")
		}

		version := &models.TermVersion{
			TermID:         termID,
			VersionNumber:  max + 1,
			Status:         models.StatusDraft,
			ReadyToPublish: true,
		}
		if err := terms.CreateVersion(version); err != nil {
			return storeErr(err, "term version")
		}
		if err := s.writeTranslations(terms, version.ID, req.Translations); err != nil {
			return err
		}

		result.Success = true
		result.VersionID = version.ID
		return nil
	})
	if err != nil {
		s.logger.Warn("create version failed", zap.Uint("term_id", termID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("new draft version created",
		zap.Uint("term_id", termID),
		zap.Uint("version_id", result.VersionID))
	return result, nil
}

func (s *termService) UpdateDraft(caller models.Caller, versionID uint, req models.UpdateDraftRequest) (*models.VersionResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}
	if err := s.validateTranslations(req.Translations); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		terms := repositories.NewTermRepository(tx)

		version, err := terms.GetVersionByID(versionID)
		if err != nil {
			return storeErr(err, "term version")
		}
		if version.Status != models.StatusDraft {
			return models.ErrInvalidState.WithMessage("only drafts are editable")
		}

		return s.writeTranslations(terms, version.ID, req.Translations)
	})
	if err != nil {
		s.logger.Warn("update draft failed", zap.Uint("version_id", versionID), zap.Error(err))
		return nil, err
	}

	return &models.VersionResult{Success: true, VersionID: versionID}, nil
}

func (s *termService) writeTranslations(terms repositories.TermRepository, versionID uint, translations map[string]models.TranslationInput) error {
	for lang, input := range translations {
		row := &models.TermVersionTranslation{
			TermVersionID: versionID,
			LanguageID:    lang,
			Name:          strings.TrimSpace(input.Name),
			Description:   input.Description,
		}
		if err := terms.UpsertTranslation(row); err != nil {
			return storeErr(err, "translation")
		}
	}
	return nil
}

func (s *termService) GetHistory(caller models.Caller, identifier string) (*models.Term, []models.TermVersion, error) {
	if err := s.authorize(caller); err != nil {
		return nil, nil, err
	}

	term, versions, err := s.queryRepo.History(identifier)
	if err != nil {
		return nil, nil, storeErr(err, "term")
	}
	return term, versions, nil
}

func (s *termService) ListVersions(caller models.Caller, params models.VersionListParams) ([]models.TermVersion, int64, error) {
	if err := s.authorize(caller); err != nil {
		return nil, 0, err
	}

	versions, total, err := s.queryRepo.List(params)
	if err != nil {
		return nil, 0, storeErr(err, "term versions")
	}
	return versions, total, err
}

func (s *termService) GetVersion(caller models.Caller, versionID uint) (*models.TermVersion, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}

	version, err := s.queryRepo.GetDetail(versionID)
	if err != nil {
		return nil, storeErr(err, "term version")
	}
	return version, nil
}
