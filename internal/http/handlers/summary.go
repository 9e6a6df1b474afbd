package handlers

import (
	"net/http"

	"kts-backend/internal/http/middleware"
	"kts-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBusinessSummary recomputes the cross-ledger rollup from scratch on every
// call; this is the refresh-totals trigger.
func GetBusinessSummary(c *gin.Context) {
	svc := services.SummaryService{RequestID: middleware.GetRequestID(c)}
	out, err := svc.Refresh()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
