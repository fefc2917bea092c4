package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink-dev/mentorlink/db"
)

func HealthCheck(c *gin.Context) {
	status := "ok"

	if db.DB != nil {
		if sqlDB, err := db.DB.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
		}
	}

	c.JSON(200, gin.H{
		"status":    status,
		"message":   "MentorLink is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
