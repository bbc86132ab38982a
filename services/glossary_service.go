package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"glossary-cms/models"
	"glossary-cms/repositories"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const termCacheTTL = 60 * time.Second

// GlossaryService serves the public read side: published terms through their
// active version, and the comment threads attached to terms. Detail lookups
// go through a short-lived Redis cache when a client is configured; the TTL
// is short enough that lifecycle transitions become visible without explicit
// invalidation.
type GlossaryService interface {
	ListPublished(params models.GlossaryListParams) ([]models.Term, int64, error)
	GetPublished(ctx context.Context, identifier string) (*models.Term, error)
	ListComments(identifier string) ([]models.Comment, error)
	AddComment(caller models.Caller, identifier string, req models.CreateCommentRequest) (*models.Comment, error)
}

type glossaryService struct {
	queryRepo   repositories.VersionQueryRepository
	termRepo    repositories.TermRepository
	commentRepo repositories.CommentRepository
	cache       *redis.Client
	logger      *zap.Logger
}

func NewGlossaryService(
	queryRepo repositories.VersionQueryRepository,
	termRepo repositories.TermRepository,
	commentRepo repositories.CommentRepository,
	cache *redis.Client,
	logger *zap.Logger,
) GlossaryService {
	return &glossaryService{
		queryRepo:   queryRepo,
		termRepo:    termRepo,
		commentRepo: commentRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *glossaryService) ListPublished(params models.GlossaryListParams) ([]models.Term, int64, error) {
	return s.queryRepo.PublishedTerms(params)
}

func (s *glossaryService) GetPublished(ctx context.Context, identifier string) (*models.Term, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, termCacheKey(identifier)).Bytes(); err == nil {
			var term models.Term
			if err := json.Unmarshal(cached, &term); err == nil {
				return &term, nil
			}
		}
	}

	term, err := s.queryRepo.PublishedTermByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound.WithMessage("term not found")
		}
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(term); err == nil {
			if err := s.cache.Set(ctx, termCacheKey(identifier), payload, termCacheTTL).Err(); err != nil {
				s.logger.Warn("term cache write failed", zap.String("identifier", identifier), zap.Error(err))
			}
		}
	}

	return term, nil
}

func termCacheKey(identifier string) string {
	return "glossary:term:" + identifier
}

func (s *glossaryService) ListComments(identifier string) ([]models.Comment, error) {
	term, err := s.termRepo.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound.WithMessage("term not found")
		}
		return nil, err
	}
	return s.commentRepo.GetByTermID(term.ID)
}

func (s *glossaryService) AddComment(caller models.Caller, identifier string, req models.CreateCommentRequest) (*models.Comment, error) {
	if caller.UserID == 0 {
		return nil, models.ErrUnauthorized.WithMessage("authentication required")
	}

	term, err := s.termRepo.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound.WithMessage("term not found")
		}
		return nil, err
	}

	comment := &models.Comment{
		TermID:   term.ID,
		AuthorID: caller.UserID,
		ParentID: req.ParentID,
		Body:     req.Body,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, models.ErrConflict.Wrapf(err, "could not store comment")
	}
	return comment, nil
}
