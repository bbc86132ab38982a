package handlers

import (
	"strconv"

	"glossary-cms/helper"
	"glossary-cms/middleware"
	"glossary-cms/models"
	"glossary-cms/services"

	"github.com/gin-gonic/gin"
)

// TermHandler exposes the lifecycle engine to the admin UI.
type TermHandler struct {
	termService services.TermService
	Helper      *helper.HTTPHelper
}

func NewTermHandler(termService services.TermService) *TermHandler {
	return &TermHandler{termService: termService, Helper: &helper.HTTPHelper{}}
}

func (h *TermHandler) CreateDraft(c *gin.Context) {
	var req models.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	result, err := h.termService.CreateDraft(middleware.CallerFromContext(c), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Draft created", result)
}

func (h *TermHandler) ListVersions(c *gin.Context) {
	var params models.VersionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	versions, total, err := h.termService.ListVersions(middleware.CallerFromContext(c), params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"versions":   versions,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *TermHandler) GetVersion(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}

	version, err := h.termService.GetVersion(middleware.CallerFromContext(c), versionID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", version)
}

func (h *TermHandler) ApproveDraft(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}

	result, err := h.termService.ApproveDraft(middleware.CallerFromContext(c), versionID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Version published", result)
}

func (h *TermHandler) RejectDraft(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}

	result, err := h.termService.RejectDraft(middleware.CallerFromContext(c), versionID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Draft rejected", result)
}

func (h *TermHandler) DeleteVersion(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}

	result, err := h.termService.DeleteVersion(middleware.CallerFromContext(c), versionID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Version deleted", result)
}

func (h *TermHandler) RestoreVersion(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}

	result, err := h.termService.RestoreVersion(middleware.CallerFromContext(c), versionID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Version restored", result)
}

func (h *TermHandler) CreateVersion(c *gin.Context) {
	termID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid term ID")
		return
	}

	var req models.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	result, err := h.termService.CreateVersionFromSource(middleware.CallerFromContext(c), uint(termID), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Draft version created", result)
}

func (h *TermHandler) UpdateDraft(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}

	var req models.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	result, err := h.termService.UpdateDraft(middleware.CallerFromContext(c), versionID, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Draft updated", result)
}

func (h *TermHandler) GetHistory(c *gin.Context) {
	identifier := c.Param("identifier")

	term, versions, err := h.termService.GetHistory(middleware.CallerFromContext(c), identifier)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"term":     term,
		"versions": versions,
	})
}

func (h *TermHandler) versionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid version ID")
		return 0, false
	}
	return uint(id), true
}
