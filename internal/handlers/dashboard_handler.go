package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/middleware"
	"github.com/joshua-takyi/skillswap/internal/services"
)

// DashboardData assembles a user's dashboard: own skills and interests,
// upcoming sessions, recent messages and skill recommendations. Only the
// named user may fetch it.
func DashboardData(d *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.Param("username"))
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required."})
			return
		}

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		if caller != username {
			accessDenied(c)
			return
		}

		data, err := d.Load(c.Request.Context(), username)
		if err != nil {
			respondError(c, err, "User not found", "Error fetching dashboard data")
			return
		}
		c.JSON(http.StatusOK, data)
	}
}
