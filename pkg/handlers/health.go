package handlers

import (
	"net/http"
	"time"

	"js-portal/pkg/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"service":   config.Site.Title,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
