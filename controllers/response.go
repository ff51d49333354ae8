package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Every handler answers with the same envelope: {status, message, data} on
// success, {status, message, timestamp} on failure.

func respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":    "error",
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
