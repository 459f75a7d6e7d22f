package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crud_testbench/internal/service"
)

// ListOperationLogs serves the most recent operation log entries.
// limit defaults to defaultLimit and is clamped to maxLimit.
func ListOperationLogs(svc *service.Records, defaultLimit, maxLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultLimit
		if limitStr := c.Query("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = parsed
		}
		if maxLimit > 0 && limit > maxLimit {
			limit = maxLimit
		}

		logs, err := svc.RecentOperations(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch operation logs"})
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}
