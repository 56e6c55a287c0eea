package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/models"
)

// respondError maps a service error onto the wire contract: bodies are
// {"message": ...} with an optional "error" debug detail on server failures.
func respondError(c *gin.Context, err error, notFoundMsg, serverErrMsg string) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
	case errors.Is(err, models.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"message": "Username already taken."})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": serverErrMsg, "error": err.Error()})
	}
}

func accessDenied(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "Access denied."})
}
