package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/middleware"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

// CreateReview records a rating. The reviewer must be the authenticated
// caller; out-of-range ratings are rejected with 400 before any write.
func CreateReview(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload.", "error": err.Error()})
			return
		}

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		if strings.TrimSpace(review.Reviewer) != caller {
			accessDenied(c)
			return
		}

		if _, err := r.Create(c.Request.Context(), &review); err != nil {
			respondError(c, err, "User not found", "Error creating review")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully"})
	}
}

// GetReviews returns the reviews about a user, newest first.
func GetReviews(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewedUser := strings.TrimSpace(c.Param("reviewedUser"))
		if reviewedUser == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Reviewed user is required."})
			return
		}

		reviews, err := r.ForUser(c.Request.Context(), reviewedUser)
		if err != nil {
			respondError(c, err, "User not found", "Error fetching reviews")
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
