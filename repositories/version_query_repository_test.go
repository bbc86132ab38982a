package repositories

import (
	"fmt"
	"testing"
	"time"

	"glossary-cms/config"
	"glossary-cms/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testLanguages = []string{"lv", "en"}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return db
}

type seededTerm struct {
	term    *models.Term
	version *models.TermVersion
}

// seedTerm inserts a term with a single version directly through the write
// repository, bypassing the service layer.
func seedTerm(t *testing.T, db *gorm.DB, categoryID uint, status models.VersionStatus, name string) seededTerm {
	t.Helper()

	repo := NewTermRepository(db)

	term := &models.Term{Identifier: uuid.NewString(), CategoryID: categoryID}
	require.NoError(t, repo.Create(term))

	version := &models.TermVersion{
		TermID:         term.ID,
		VersionNumber:  1,
		Status:         status,
		ReadyToPublish: true,
	}
	if status == models.StatusPublished {
		now := time.Now()
		version.PublishedAt = &now
	}
	require.NoError(t, repo.CreateVersion(version))

	for _, lang := range testLanguages {
		require.NoError(t, repo.UpsertTranslation(&models.TermVersionTranslation{
			TermVersionID: version.ID,
			LanguageID:    lang,
			Name:          name + " (" + lang + ")",
			Description:   "about " + name,
		}))
	}

	require.NoError(t, repo.UpdateActiveVersion(term.ID, &version.ID))
	return seededTerm{term: term, version: version}
}

func seedQueryFixtures(t *testing.T, db *gorm.DB) (anatomy, botany *models.Category) {
	t.Helper()

	anatomy = &models.Category{Name: "Anatomy"}
	botany = &models.Category{Name: "Botany"}
	require.NoError(t, db.Create(anatomy).Error)
	require.NoError(t, db.Create(botany).Error)
	return anatomy, botany
}

func TestListFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	anatomy, _ := seedQueryFixtures(t, db)

	seedTerm(t, db, anatomy.ID, models.StatusDraft, "tooth")
	seedTerm(t, db, anatomy.ID, models.StatusPublished, "bone")
	seedTerm(t, db, anatomy.ID, models.StatusArchived, "skin")

	repo := NewVersionQueryRepository(db, testLanguages)

	versions, total, err := repo.List(models.VersionListParams{Status: "DRAFT", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, versions, 1)
	require.Equal(t, models.StatusDraft, versions[0].Status)

	_, total, err = repo.List(models.VersionListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
}

func TestListFiltersByCategory(t *testing.T) {
	db := newTestDB(t)
	anatomy, botany := seedQueryFixtures(t, db)

	seedTerm(t, db, anatomy.ID, models.StatusDraft, "tooth")
	seedTerm(t, db, botany.ID, models.StatusDraft, "oak")

	repo := NewVersionQueryRepository(db, testLanguages)

	versions, total, err := repo.List(models.VersionListParams{CategoryID: botany.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, botany.ID, versions[0].Term.CategoryID)
}

func TestListSearchMatchesNameAndDescription(t *testing.T) {
	db := newTestDB(t)
	anatomy, _ := seedQueryFixtures(t, db)

	seedTerm(t, db, anatomy.ID, models.StatusDraft, "tooth")
	seedTerm(t, db, anatomy.ID, models.StatusDraft, "bone")

	repo := NewVersionQueryRepository(db, testLanguages)

	// Substring of the name.
	_, total, err := repo.List(models.VersionListParams{Search: "toot", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	// Substring of the description.
	_, total, err = repo.List(models.VersionListParams{Search: "about bone", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	_, total, err = repo.List(models.VersionListParams{Search: "zzz", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	anatomy, _ := seedQueryFixtures(t, db)

	for i := 0; i < 5; i++ {
		seedTerm(t, db, anatomy.ID, models.StatusDraft, fmt.Sprintf("term-%d", i))
	}

	repo := NewVersionQueryRepository(db, testLanguages)

	versions, total, err := repo.List(models.VersionListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, versions, 2)

	versions, _, err = repo.List(models.VersionListParams{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Len(t, versions, 1)
}

func TestHistoryOrdersByVersionNumberDesc(t *testing.T) {
	db := newTestDB(t)
	anatomy, _ := seedQueryFixtures(t, db)

	seeded := seedTerm(t, db, anatomy.ID, models.StatusPublished, "tooth")

	repo := NewTermRepository(db)
	for n := 2; n <= 3; n++ {
		require.NoError(t, repo.CreateVersion(&models.TermVersion{
			TermID:        seeded.term.ID,
			VersionNumber: n,
			Status:        models.StatusDraft,
		}))
	}

	queries := NewVersionQueryRepository(db, testLanguages)
	term, versions, err := queries.History(seeded.term.Identifier)
	require.NoError(t, err)
	require.Equal(t, seeded.term.ID, term.ID)
	require.Len(t, versions, 3)
	require.Equal(t, 3, versions[0].VersionNumber)
	require.Equal(t, 1, versions[2].VersionNumber)
}

func TestHistoryUnknownIdentifier(t *testing.T) {
	db := newTestDB(t)

	repo := NewVersionQueryRepository(db, testLanguages)
	_, _, err := repo.History("no-such-term")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPublishedTermsSkipsDraftsAndArchived(t *testing.T) {
	db := newTestDB(t)
	anatomy, _ := seedQueryFixtures(t, db)

	published := seedTerm(t, db, anatomy.ID, models.StatusPublished, "bone")
	seedTerm(t, db, anatomy.ID, models.StatusDraft, "tooth")
	seedTerm(t, db, anatomy.ID, models.StatusArchived, "skin")

	repo := NewVersionQueryRepository(db, testLanguages)

	terms, total, err := repo.PublishedTerms(models.GlossaryListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, published.term.ID, terms[0].ID)

	_, err = repo.PublishedTermByIdentifier(published.term.Identifier)
	require.NoError(t, err)

	draft := seedTerm(t, db, anatomy.ID, models.StatusDraft, "nail")
	_, err = repo.PublishedTermByIdentifier(draft.term.Identifier)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMaxVersionNumber(t *testing.T) {
	db := newTestDB(t)
	anatomy, _ := seedQueryFixtures(t, db)

	repo := NewTermRepository(db)

	term := &models.Term{Identifier: uuid.NewString(), CategoryID: anatomy.ID}
	require.NoError(t, repo.Create(term))

	max, err := repo.MaxVersionNumber(term.ID)
	require.NoError(t, err)
	require.Zero(t, max)

	require.NoError(t, repo.CreateVersion(&models.TermVersion{TermID: term.ID, VersionNumber: 7, Status: models.StatusDraft}))

	max, err = repo.MaxVersionNumber(term.ID)
	require.NoError(t, err)
	require.Equal(t, 7, max)
}
