package handlers

import (
	"strconv"

	"glossary-cms/helper"
	"glossary-cms/middleware"
	"glossary-cms/models"
	"glossary-cms/services"

	"github.com/gin-gonic/gin"
)

type LabelHandler struct {
	labelService services.LabelService
	Helper       *helper.HTTPHelper
}

func NewLabelHandler(labelService services.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService, Helper: &helper.HTTPHelper{}}
}

func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var req models.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	label, err := h.labelService.CreateLabel(middleware.CallerFromContext(c), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Label created", label)
}

func (h *LabelHandler) GetLabels(c *gin.Context) {
	labels, err := h.labelService.GetLabels()
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", labels)
}

func (h *LabelHandler) GetLabel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid label ID")
		return
	}

	label, err := h.labelService.GetLabel(uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", label)
}
