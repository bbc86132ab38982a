package handlers

import (
	"glossary-cms/helper"
	"glossary-cms/middleware"
	"glossary-cms/models"
	"glossary-cms/services"

	"github.com/gin-gonic/gin"
)

// GlossaryHandler serves the public read side: published terms and their
// comment threads.
type GlossaryHandler struct {
	glossaryService services.GlossaryService
	Helper          *helper.HTTPHelper
}

func NewGlossaryHandler(glossaryService services.GlossaryService) *GlossaryHandler {
	return &GlossaryHandler{glossaryService: glossaryService, Helper: &helper.HTTPHelper{}}
}

func (h *GlossaryHandler) ListTerms(c *gin.Context) {
	var params models.GlossaryListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 20
	}

	terms, total, err := h.glossaryService.ListPublished(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"terms":      terms,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *GlossaryHandler) GetTerm(c *gin.Context) {
	term, err := h.glossaryService.GetPublished(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", term)
}

func (h *GlossaryHandler) ListComments(c *gin.Context) {
	comments, err := h.glossaryService.ListComments(c.Param("identifier"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", comments)
}

func (h *GlossaryHandler) AddComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	comment, err := h.glossaryService.AddComment(middleware.CallerFromContext(c), c.Param("identifier"), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment added", comment)
}
