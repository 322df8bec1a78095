package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httpresp"
	"github.com/BruksfildServices01/cutcorp-booking/internal/middleware"
	ucSystem "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/system"
)

type SystemHandler struct {
	wipe *ucSystem.Wipe
}

func NewSystemHandler(wipe *ucSystem.Wipe) *SystemHandler {
	return &SystemHandler{wipe: wipe}
}

type WipeRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}

// Wipe answers with the per-table counts even when a chunk failed, so the
// operator can see how far it got.
func (h *SystemHandler) Wipe(c *gin.Context) {
	var req WipeRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.wipe.Execute(c.Request.Context(), middleware.UserID(c), req.Password, req.Confirmation)
	if err != nil {
		if res != nil {
			c.JSON(500, gin.H{
				"error_code": httperr.CodePersistence,
				"message":    "Falha durante a limpeza. Parte dos dados já foi removida.",
				"deleted":    res.Deleted,
			})
			return
		}
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}
