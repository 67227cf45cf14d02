package handlers

import (
	"github.com/gin-gonic/gin"

	"skibidi-db/helper"
	"skibidi-db/middleware"
	"skibidi-db/models"
	"skibidi-db/services"
)

type ContributionHandler struct {
	contributionService services.ContributionService
	Helper              *helper.HTTPHelper
}

func NewContributionHandler(contributionService services.ContributionService, httpHelper *helper.HTTPHelper) *ContributionHandler {
	return &ContributionHandler{contributionService: contributionService, Helper: httpHelper}
}

// Submit is routed behind OptionalAuth so that anonymous callers get the
// sign-in prompt from the service instead of a bare 401.
func (h *ContributionHandler) Submit(c *gin.Context) {
	var req models.CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", h.Helper.EmptyJsonMap())
		return
	}

	contribution, err := h.contributionService.Submit(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Contribution submitted for review", contribution)
}
