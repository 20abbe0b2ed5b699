package controllers

import (
	"net/http"
	"strconv"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps an error to its stable HTTP status. Internal faults
// are logged but reported generically.
func respondError(c *gin.Context, err error) {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseQueryInt(c *gin.Context, key string) (int, error) {
	return strconv.Atoi(c.Query(key))
}
