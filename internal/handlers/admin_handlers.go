package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fullnessapp/fullness-server/internal/database"
)

// AdminDashboard serves usage aggregates to administrators. The role check
// happens in middleware before this handler runs.
func AdminDashboard(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := database.AdminStats(c.Request.Context(), q)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
