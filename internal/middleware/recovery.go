package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/logger"
)

type recoveryBody struct {
	httperr.HTTPError
	Support string `json:"support_url"`
}

// Recovery is the last-resort handler: panics become a 500 that tells the
// client to retry or reach the shop on WhatsApp.
func Recovery(log *logger.Logger, supportURL string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)

		c.AbortWithStatusJSON(http.StatusInternalServerError, recoveryBody{
			HTTPError: httperr.HTTPError{
				Code:    "internal_error",
				Message: "Algo deu errado. Tente novamente ou fale com a gente no WhatsApp.",
			},
			Support: supportURL,
		})
	})
}
