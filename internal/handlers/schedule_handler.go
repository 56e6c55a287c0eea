package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/middleware"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

// CreateSchedule books a teaching session. The caller must be the teacher or
// the learner, and the stored status is always "pending" regardless of the
// request body.
func CreateSchedule(s *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var schedule models.Schedule
		if err := c.ShouldBindJSON(&schedule); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload.", "error": err.Error()})
			return
		}

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		if strings.TrimSpace(schedule.Teacher) != caller && strings.TrimSpace(schedule.Learner) != caller {
			accessDenied(c)
			return
		}

		created, err := s.Create(c.Request.Context(), &schedule)
		if err != nil {
			respondError(c, err, "User not found", "Error creating schedule")
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Schedule created successfully",
			"schedule": created,
		})
	}
}

// GetSchedules returns the user's sessions as teacher or learner, ascending
// by start time. Only the named user may call it.
func GetSchedules(s *services.ScheduleService) gin.HandlerFunc {
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

		schedules, err := s.ForUser(c.Request.Context(), username)
		if err != nil {
			respondError(c, err, "User not found", "Error fetching schedules")
			return
		}
		c.JSON(http.StatusOK, schedules)
	}
}
