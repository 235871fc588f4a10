package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	statssvc "rakumane/internal/service/stats"
)

func statsHandler(svc *statssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summarize(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
