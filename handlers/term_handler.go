package handlers

import (
	"github.com/gin-gonic/gin"

	"skibidi-db/helper"
	"skibidi-db/middleware"
	"skibidi-db/models"
	"skibidi-db/services"
)

type TermHandler struct {
	termService   services.TermService
	reportService services.ReportService
	Helper        *helper.HTTPHelper
}

func NewTermHandler(termService services.TermService, reportService services.ReportService, httpHelper *helper.HTTPHelper) *TermHandler {
	return &TermHandler{termService: termService, reportService: reportService, Helper: httpHelper}
}

func (h *TermHandler) List(c *gin.Context) {
	var params models.TermListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters", h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()

	terms, total, err := h.termService.ListPublished(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Terms loaded", map[string]interface{}{
		"terms":      terms,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

func (h *TermHandler) Suggest(c *gin.Context) {
	terms, err := h.termService.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Suggestions loaded", terms)
}

func (h *TermHandler) GetBySlug(c *gin.Context) {
	term, err := h.termService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Term loaded", term)
}

func (h *TermHandler) Report(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}
	var req models.CreateReportRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), id, middleware.CurrentIdentity(c).ProfileID, req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Report submitted", report)
}
