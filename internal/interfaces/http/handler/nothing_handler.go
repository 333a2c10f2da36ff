package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aixtrade/nothing/internal/domain/nothing"
)

type NothingHandler struct{}

func NewNothingHandler() *NothingHandler {
	return &NothingHandler{}
}

// Respond answers every request the same way. The request is never read.
func (h *NothingHandler) Respond(c *gin.Context) {
	c.JSON(http.StatusOK, nothing.NewPayload())
}
