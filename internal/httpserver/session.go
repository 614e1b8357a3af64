package httpserver

import (
	"net/http"
	"strings"

	"vastrabazaar/internal/session"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Name string `json:"name" binding:"required"`
}

func openSessionHandler(hub *session.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, s, err := hub.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open session"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"sessionId": s.ID,
			"token":     token,
			"expiresIn": hub.TTLSeconds(),
		})
	}
}

func loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	s := currentSession(c)
	s.SignIn(strings.TrimSpace(req.Name))
	signedIn, name := s.SignedIn()
	c.JSON(http.StatusOK, gin.H{"signedIn": signedIn, "name": name})
}

func logoutHandler(c *gin.Context) {
	s := currentSession(c)
	s.SignOut()
	c.JSON(http.StatusOK, gin.H{"signedIn": false})
}
