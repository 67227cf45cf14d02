package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skibidi-db/helper"
)

// parseID reads a uuid path parameter, answering 400 when it is malformed.
func parseID(c *gin.Context, h *helper.HTTPHelper, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.SendBadRequest(c, "Invalid "+name, h.EmptyJsonMap())
		return uuid.Nil, false
	}
	return id, true
}
