package controllers

import (
	"net/http"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/config"

	"github.com/gin-gonic/gin"
)

// Health reports service liveness and database connectivity.
func Health(c *gin.Context) {
	dbStatus := "ok"
	if config.DB == nil {
		dbStatus = "down"
	} else if sqlDB, err := config.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	status := http.StatusOK
	if dbStatus != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": "ok", "database": dbStatus})
}
