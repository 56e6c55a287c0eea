package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/middleware"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
)

// SendMessage creates an immutable message. The sender must be the
// authenticated caller.
func SendMessage(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var message models.Message
		if err := c.ShouldBindJSON(&message); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload.", "error": err.Error()})
			return
		}

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		if strings.TrimSpace(message.Sender) != caller {
			accessDenied(c)
			return
		}

		if _, err := m.Send(c.Request.Context(), &message); err != nil {
			respondError(c, err, "User not found", "Error sending message")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
	}
}

// GetConversation returns all messages between two users in either direction,
// oldest first. Only a participant may read the conversation.
func GetConversation(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userA := strings.TrimSpace(c.Param("userA"))
		userB := strings.TrimSpace(c.Param("userB"))
		if userA == "" || userB == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Both usernames are required."})
			return
		}

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		if caller != userA && caller != userB {
			accessDenied(c)
			return
		}

		messages, err := m.Conversation(c.Request.Context(), userA, userB)
		if err != nil {
			respondError(c, err, "User not found", "Error fetching messages")
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}
