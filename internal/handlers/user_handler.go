package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/middleware"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

// ListUsers returns every username, sorted ascending.
func ListUsers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usernames, err := u.ListUsernames(c.Request.Context())
		if err != nil {
			respondError(c, err, "User not found", "Error fetching users")
			return
		}
		c.JSON(http.StatusOK, usernames)
	}
}

// GetProfile returns the full profile minus the password hash.
func GetProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.Param("username"))
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required."})
			return
		}

		user, err := u.GetProfile(c.Request.Context(), username)
		if err != nil {
			respondError(c, err, "User not found", "Error fetching user profile")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile replaces location, bio, skills and interests wholesale. Only
// the profile owner may call it.
func UpdateProfile(u *services.UserService) gin.HandlerFunc {
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

		var update models.ProfileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload.", "error": err.Error()})
			return
		}

		if err := u.UpdateProfile(c.Request.Context(), username, update); err != nil {
			respondError(c, err, "User not found", "Error updating profile")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
	}
}

// SkillCatalogue returns one (username, skill) pair per skill a user teaches.
func SkillCatalogue(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pairs, err := u.SkillCatalogue(c.Request.Context())
		if err != nil {
			respondError(c, err, "User not found", "Error fetching skills")
			return
		}
		c.JSON(http.StatusOK, pairs)
	}
}

// SkillDetails returns who teaches an exactly-matching skill name.
func SkillDetails(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skillName := strings.TrimSpace(c.Param("skillName"))
		if skillName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Skill name is required."})
			return
		}

		details, err := u.SkillDetails(c.Request.Context(), skillName)
		if err != nil {
			respondError(c, err, "No users found with that skill", "Error fetching skill details")
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

// Search runs a case-insensitive substring match over usernames and skills.
// Zero matches returns empty arrays, never an error.
func Search(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := u.Search(c.Request.Context(), c.Query("query"))
		if err != nil {
			respondError(c, err, "User not found", "Error searching")
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
