package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/services"
)

// Register creates a new account. Username, password, skills and interests are
// all required; the username is claimed atomically through the unique index.
func Register(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload.", "error": err.Error()})
			return
		}

		if _, err := u.Register(c.Request.Context(), req); err != nil {
			respondError(c, err, "User not found", "Server error during registration")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// Login checks the password against the stored bcrypt hash and issues a
// session token as an access_token cookie. The token is also returned in the
// body for non-browser callers.
func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload.", "error": err.Error()})
			return
		}

		token, err := u.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err, "User not found", "Server error during login")
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie(
			"access_token",
			token,
			int(u.TokenTTL().Seconds()),
			"/",
			"", // let Gin pick current domain
			isProduction,
			true,
		)

		c.JSON(http.StatusOK, gin.H{
			"message":  "Login successful",
			"username": req.Username,
			"token":    token,
		})
	}
}

// Logout clears the session cookie.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}
