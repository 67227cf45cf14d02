package handlers

import (
	"github.com/gin-gonic/gin"

	"skibidi-db/helper"
	"skibidi-db/middleware"
	"skibidi-db/models"
	"skibidi-db/services"
)

// AdminHandler serves the admin dashboard: users, terms, reports and statistics.
// Submission moderation is served by ModerationHandler.
type AdminHandler struct {
	adminService  services.AdminService
	termService   services.TermService
	reportService services.ReportService
	Helper        *helper.HTTPHelper
}

func NewAdminHandler(adminService services.AdminService, termService services.TermService, reportService services.ReportService, httpHelper *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		termService:   termService,
		reportService: reportService,
		Helper:        httpHelper,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Users loaded", users)
}

func (h *AdminHandler) SetSuspended(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}
	var req models.SuspendUserRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	user, err := h.adminService.SetSuspended(c.Request.Context(), middleware.CurrentIdentity(c).ProfileID, id, req.Suspended)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User updated", user)
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}
	var req models.SetRoleRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	user, err := h.adminService.SetRole(c.Request.Context(), middleware.CurrentIdentity(c).ProfileID, id, req.Role)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User updated", user)
}

func (h *AdminHandler) ResetUserPassword(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.adminService.ResetUserPassword(c.Request.Context(), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Password reset email sent", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), middleware.CurrentIdentity(c).ProfileID, id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User deleted", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) ListTerms(c *gin.Context) {
	var filter models.AdminTermFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters", h.Helper.EmptyJsonMap())
		return
	}

	terms, err := h.termService.AdminList(c.Request.Context(), filter)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Terms loaded", terms)
}

func (h *AdminHandler) UpdateTerm(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}
	var req models.UpdateTermRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	term, err := h.termService.Update(c.Request.Context(), id, req, middleware.CurrentIdentity(c).ProfileID)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Term updated", term)
}

func (h *AdminHandler) DeleteTerm(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.termService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Term deleted", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) TermVersions(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	versions, err := h.termService.Versions(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Versions loaded", versions)
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	var params models.ReportListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters", h.Helper.EmptyJsonMap())
		return
	}

	reports, err := h.reportService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Reports loaded", reports)
}

func (h *AdminHandler) ResolveReport(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Resolve(c.Request.Context(), id, middleware.CurrentIdentity(c).ProfileID)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Report resolved", report)
}

func (h *AdminHandler) DeleteReportedContent(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.reportService.DeleteContent(c.Request.Context(), id, middleware.CurrentIdentity(c).ProfileID); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Reported content deleted", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.adminService.Statistics(c.Request.Context())
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Statistics loaded", stats)
}
