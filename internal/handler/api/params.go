package api

import (
	"net/http"
	"time"

	"gear-rental/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses the :id segment and aborts with 400 when it is not a UUID.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// parseInstant accepts RFC 3339 timestamps with an explicit offset.
func parseInstant(c *gin.Context, name, value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+": expected RFC 3339 timestamp", nil)
		return time.Time{}, false
	}
	return t, true
}
