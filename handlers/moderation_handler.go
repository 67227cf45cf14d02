package handlers

import (
	"github.com/gin-gonic/gin"

	"skibidi-db/helper"
	"skibidi-db/middleware"
	"skibidi-db/models"
	"skibidi-db/services"
)

type ModerationHandler struct {
	moderationService services.ModerationService
	Helper            *helper.HTTPHelper
}

func NewModerationHandler(moderationService services.ModerationService, httpHelper *helper.HTTPHelper) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService, Helper: httpHelper}
}

func (h *ModerationHandler) List(c *gin.Context) {
	contributions, err := h.moderationService.List(c.Request.Context())
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Contributions loaded", contributions)
}

func (h *ModerationHandler) Approve(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}
	req, ok := h.bindNote(c)
	if !ok {
		return
	}

	contribution, term, err := h.moderationService.Approve(c.Request.Context(), id, middleware.CurrentIdentity(c).ProfileID, req.Note)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Contribution approved", map[string]interface{}{
		"contribution": contribution,
		"term":         term,
	})
}

func (h *ModerationHandler) Reject(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}
	req, ok := h.bindNote(c)
	if !ok {
		return
	}

	contribution, err := h.moderationService.Reject(c.Request.Context(), id, middleware.CurrentIdentity(c).ProfileID, req.Note)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Contribution rejected", contribution)
}

func (h *ModerationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.moderationService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Contribution deleted", h.Helper.EmptyJsonMap())
}

// bindNote accepts an empty body as "no note".
func (h *ModerationHandler) bindNote(c *gin.Context) (models.ModerationRequest, bool) {
	var req models.ModerationRequest
	return req, h.Helper.BindOptionalJSON(c, &req)
}
